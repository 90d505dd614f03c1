// Package journal lists stored reports for a period and can follow the store
// for new ones.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/journal"
	"github.com/irreligious86/Report-UAV/pkg/printers"
	"github.com/irreligious86/Report-UAV/pkg/report"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

type Journal struct {
	Service *app.Service
	Filter  journal.Filter
	Label   string
	ShowID  bool
	// CopyAll delivers every listed report as one text.
	CopyAll bool
	// Watch re-renders whenever the report history changes on disk.
	Watch bool
	JSON  bool
	Out   io.Writer
}

type entryOutput struct {
	ID     string        `json:"id,omitempty"`
	TS     string        `json:"ts"`
	When   string        `json:"when"`
	Header string        `json:"header"`
	Fields report.Fields `json:"fields"`
	Text   string        `json:"text"`
}

type output struct {
	Period  string         `json:"period"`
	Entries []entryOutput  `json:"entries"`
	Stats   journal.Result `json:"stats"`
	Rate    int            `json:"rate"`
}

func (j *Journal) out() io.Writer {
	if j.Out != nil {
		return j.Out
	}
	return color.Output
}

func (j *Journal) Do(ctx context.Context) error {
	if j.Service == nil {
		return errors.New("journal: no service")
	}
	if err := j.render(ctx); err != nil {
		return err
	}
	if !j.Watch {
		return nil
	}

	events, err := j.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventKeyChanged && ev.Key != store.KeyReports {
				continue
			}
			if err := j.render(ctx); err != nil {
				return err
			}
		}
	}
}

func (j *Journal) render(ctx context.Context) error {
	res, err := j.Service.Journal(ctx, j.Filter)
	if err != nil {
		return err
	}

	if j.CopyAll && res.Total > 0 {
		if err := j.Service.Deliver(ctx, res.CopyAll()); err != nil {
			return fmt.Errorf("%s: %w", app.StatusCopyFailed, err)
		}
	}

	if j.JSON {
		return json.NewEncoder(j.out()).Encode(toOutput(j.Label, res))
	}

	pp := printers.PrettyPrint{ShowID: j.ShowID, Out: j.out()}
	pp.NewLine()
	pp.TitleWithCount("Журнал "+j.Label, res.Total, "report")
	pp.NewLine()
	pp.Journal(res.Entries...)
	if res.Total > 0 {
		pp.KPI(res)
	}
	if j.CopyAll && res.Total > 0 {
		pp.Status(app.StatusCopied, false)
	}
	return nil
}

func toOutput(label string, res journal.Result) output {
	o := output{Period: label, Stats: res, Rate: res.Rate(), Entries: make([]entryOutput, 0, len(res.Entries))}
	for _, e := range res.Entries {
		o.Entries = append(o.Entries, entryOutput{
			ID:     e.Report.ID,
			TS:     e.Report.Timestamp.String(),
			When:   e.When.Format(time.RFC3339),
			Header: e.Header(),
			Fields: e.Fields,
			Text:   e.Report.Text,
		})
	}
	return o
}

// Copy delivers one stored report found by id prefix.
type Copy struct {
	Service *app.Service
	ID      string
	Out     io.Writer
}

func (c *Copy) Do(ctx context.Context) error {
	r, err := c.Service.FindReport(ctx, c.ID)
	if err != nil {
		return err
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.Report(r.ShortID(), r.Text)
	if err := c.Service.Deliver(ctx, r.Text); err != nil {
		pp.Status(app.StatusCopyFailed, true)
		return err
	}
	pp.Status(app.StatusCopied, false)
	return nil
}

// Reset drops the whole report history.
type Reset struct {
	Service *app.Service
	Out     io.Writer
}

func (r *Reset) Do(ctx context.Context) error {
	all, err := r.Service.Reports(ctx)
	if err != nil {
		return err
	}
	if err := r.Service.ResetReports(); err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "Removed %d reports.\n", len(all))
	return nil
}
