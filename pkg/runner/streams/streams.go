// Package streams shows and edits the remembered stream names.
package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/printers"
)

func writer(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}

type Show struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (s *Show) Do(_ context.Context) error {
	items, err := s.Service.Streams()
	if err != nil {
		return err
	}
	if s.JSON {
		return json.NewEncoder(writer(s.Out)).Encode(items)
	}
	pp := printers.PrettyPrint{Out: writer(s.Out)}
	pp.TitleWithCount("Стріми", len(items), "stream")
	pp.Items(items...)
	return nil
}

type Add struct {
	Service *app.Service
	Value   string
	Out     io.Writer
}

func (a *Add) Do(_ context.Context) error {
	if err := a.Service.AddStream(a.Value); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(writer(a.Out), "Saved.")
	return nil
}

// Set replaces the remembered streams; no values clears them.
type Set struct {
	Service *app.Service
	Values  []string
	Out     io.Writer
}

func (s *Set) Do(_ context.Context) error {
	if err := s.Service.SetStreams(s.Values); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(writer(s.Out), "Saved.")
	return nil
}
