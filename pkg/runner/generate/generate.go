// Package generate composes a report from flags, stores it and copies it.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/printers"
)

type Generate struct {
	Service *app.Service
	Source  lists.Source
	Crew    string
	// Apply fills the form from the command line after defaults are set.
	Apply func(f *app.Form) error
	JSON  bool
	Out   io.Writer
}

type output struct {
	ID      string `json:"id"`
	TS      string `json:"ts"`
	Text    string `json:"text"`
	Counter int    `json:"counter,omitempty"`
	Status  string `json:"status"`
}

func (g *Generate) Do(ctx context.Context) error {
	out := g.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	cfg, err := g.Service.EffectiveLists(ctx, g.Source)
	if err != nil && !g.JSON {
		pp.Status(app.StatusConfigError, true)
	}
	counter, err := g.Service.Counter()
	if err != nil {
		return err
	}
	form := app.NewForm(cfg, g.Crew, counter, g.Service.CurrentTime())
	if g.Apply != nil {
		if err := g.Apply(&form); err != nil {
			return err
		}
	}

	res, err := g.Service.Generate(ctx, &form)
	if err != nil {
		if status := app.ValidationStatus(err); status != "" {
			return fmt.Errorf("%s", status)
		}
		return err
	}

	if g.JSON {
		return json.NewEncoder(out).Encode(output{
			ID:      res.Report.ID,
			TS:      res.Report.Timestamp.String(),
			Text:    res.Report.Text,
			Counter: res.Counter,
			Status:  res.Status,
		})
	}

	pp.NewLine()
	pp.Report("", res.Report.Text)
	pp.NewLine()
	pp.Status(res.Status, res.DeliveryErr != nil)
	return nil
}
