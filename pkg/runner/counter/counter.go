// Package counter shows and edits the crew counter.
package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
)

func writer(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}

type output struct {
	Counter *int `json:"counter"`
}

// Counter prints the stored counter or sets it when Set is true. An empty
// Value clears it.
type Counter struct {
	Service *app.Service
	Set     bool
	Value   string
	JSON    bool
	Out     io.Writer
}

func (c *Counter) Do(_ context.Context) error {
	cur, err := c.Service.Counter()
	if err != nil {
		return err
	}
	if c.Set {
		if cur, err = c.Service.SetCounter(c.Value); err != nil {
			return err
		}
	}

	if c.JSON {
		var o output
		if !cur.Empty {
			v := cur.Value
			o.Counter = &v
		}
		return json.NewEncoder(writer(c.Out)).Encode(o)
	}
	if cur.Empty {
		_, _ = fmt.Fprintln(writer(c.Out), color.New(color.Faint).Sprint("counter not set"))
		return nil
	}
	_, _ = fmt.Fprintln(writer(c.Out), cur.Value)
	return nil
}
