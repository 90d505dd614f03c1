// Package stats prints the sortie statistics for a period.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/journal"
	"github.com/irreligious86/Report-UAV/pkg/printers"
)

type Stats struct {
	Service *app.Service
	Filter  journal.Filter
	Label   string
	// Text prints the plain summary that Copy would deliver.
	Text bool
	// Copy delivers the plain summary.
	Copy bool
	// Calendar prints a month calendar per month of the period.
	Calendar bool
	JSON     bool
	Out      io.Writer
}

type output struct {
	Period  string         `json:"period"`
	Stats   journal.Result `json:"stats"`
	Rate    int            `json:"rate"`
	Summary string         `json:"summary"`
}

func (s *Stats) Do(ctx context.Context) error {
	out := s.Out
	if out == nil {
		out = color.Output
	}

	res, err := s.Service.Journal(ctx, s.Filter)
	if err != nil {
		return err
	}
	summary := res.Summary(s.Label)

	if s.Copy {
		if err := s.Service.Deliver(ctx, summary); err != nil {
			return fmt.Errorf("%s: %w", app.StatusCopyFailed, err)
		}
	}

	switch {
	case s.JSON:
		return json.NewEncoder(out).Encode(output{Period: s.Label, Stats: res, Rate: res.Rate(), Summary: summary})
	case s.Text:
		_, _ = fmt.Fprintln(out, summary)
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Title("Статистика " + s.Label)
	pp.NewLine()
	pp.KPI(res)
	pp.NewLine()
	pp.Tallies(res)

	if s.Calendar {
		for _, month := range months(res.Entries, s.Service.Loc()) {
			pp.Calendar(month, res.Entries...)
		}
	}
	if s.Copy {
		pp.Status(app.StatusCopied, false)
	}
	return nil
}

// months lists the distinct months of the entries, oldest first.
func months(entries []journal.Entry, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)
	var out []time.Time
	for i := len(entries) - 1; i >= 0; i-- {
		w := entries[i].When.In(loc)
		m := time.Date(w.Year(), w.Month(), 1, 0, 0, 0, 0, loc)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
