package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/irreligious86/Report-UAV/pkg/journal"
	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

const labelLayout = "2006-01-02 15:04"

// PeriodOptions selects the journal window. Blank date and time flags take the
// current month defaults unless All is set.
type PeriodOptions struct {
	From     string
	To       string
	TimeFrom string
	TimeTo   string
	Last     string
	All      bool
	Search   string
}

func AddPeriodArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`First day of the period, example: --from="2024-05-01". Defaults to the first day of this month.`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Last day of the period, example: --to="2024-05-31". Defaults to the last day of this month.`)
	cmd.Flags().StringVar(&o.TimeFrom, "time-from", "",
		`Start time on the first day, example: --time-from="06:00". Defaults to 00:00.`)
	cmd.Flags().StringVar(&o.TimeTo, "time-to", "",
		`End time on the last day, example: --time-to="18:30". Defaults to 23:59.`)
	cmd.Flags().StringVar(&o.Last, "last", "",
		"Look-back window instead of dates (for example 12h, 3d, 1w, 2дн).")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Ignore the period and include every stored report.")
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Only reports containing this text (case-insensitive).")
}

// Resolve turns the flags into a journal filter and the period label used in
// summaries.
func (o *PeriodOptions) Resolve(now time.Time, loc *time.Location) (journal.Filter, string, error) {
	if o.All {
		return journal.Filter{Search: o.Search}, "… → …", nil
	}
	if o.Last != "" {
		d, _, err := timeutil.ParseWindow(o.Last)
		if err != nil {
			return journal.Filter{}, "", err
		}
		until := now.In(loc)
		since := until.Add(-d)
		label := since.Format(labelLayout) + " → " + until.Format(labelLayout)
		// The upper bound stays open so a watching journal keeps new reports.
		return journal.Filter{From: &since, Search: o.Search}, label, nil
	}

	w := o.Window(now.In(loc))
	f, err := w.Filter(o.Search, loc)
	if err != nil {
		return journal.Filter{}, "", err
	}
	return f, w.Label(), nil
}

// Window fills every blank flag from the current month window.
func (o *PeriodOptions) Window(now time.Time) journal.Window {
	w := journal.MonthWindow(now)
	if o.From != "" {
		w.FromDate = o.From
	}
	if o.To != "" {
		w.ToDate = o.To
	}
	if o.TimeFrom != "" {
		w.FromClock = o.TimeFrom
	}
	if o.TimeTo != "" {
		w.ToClock = o.TimeTo
	}
	return w
}
