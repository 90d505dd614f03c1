package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

const (
	dayStartClock = "00:00"
	dayEndClock   = "23:59"
)

// Window is the journal period as typed by the user: optional dates
// ("YYYY-MM-DD") with optional clock times ("HH:MM").
type Window struct {
	FromDate  string
	FromClock string
	ToDate    string
	ToClock   string
}

// MonthWindow is the default period: the first through the last day of now's
// month, from 00:00 to 23:59.
func MonthWindow(now time.Time) Window {
	first, last := timeutil.MonthBounds(now)
	return Window{
		FromDate:  first.Format(timeutil.LayoutISO),
		FromClock: dayStartClock,
		ToDate:    last.Format(timeutil.LayoutISO),
		ToClock:   dayEndClock,
	}
}

// Label renders the window for the summary, "from → to".
func (w Window) Label() string {
	return periodLabel(w.FromDate, w.FromClock) + " → " + periodLabel(w.ToDate, w.ToClock)
}

func periodLabel(date, clock string) string {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	switch {
	case date == "":
		return ""
	case clock == "":
		return date
	default:
		return date + " " + clock
	}
}

// Filter resolves the window into inclusive instants in loc.
func (w Window) Filter(search string, loc *time.Location) (Filter, error) {
	from, err := Boundary(w.FromDate, w.FromClock, true, loc)
	if err != nil {
		return Filter{}, fmt.Errorf("journal: from: %w", err)
	}
	to, err := Boundary(w.ToDate, w.ToClock, false, loc)
	if err != nil {
		return Filter{}, fmt.Errorf("journal: to: %w", err)
	}
	if from != nil && to != nil && from.After(*to) {
		from, to = to, from
	}
	return Filter{From: from, To: to, Search: search}, nil
}

// Boundary builds one inclusive bound. A blank date leaves the bound open. A
// start bound sits at second :00.000 of its minute and an end bound at
// :59.999; without a clock the bound is the start or end of the day.
func Boundary(date, clock string, start bool, loc *time.Location) (*time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(date) == "" {
		return nil, nil
	}
	day, err := timeutil.ParseDate(date, loc)
	if err != nil {
		return nil, err
	}

	var h, m int
	switch {
	case strings.TrimSpace(clock) != "":
		if h, m, err = timeutil.ParseClock(clock); err != nil {
			return nil, err
		}
	case start:
		h, m = 0, 0
	default:
		h, m = 23, 59
	}

	var t time.Time
	if start {
		t = timeutil.At(day, h, m, 0, 0, loc)
	} else {
		t = timeutil.At(day, h, m, 59, int(999*time.Millisecond), loc)
	}
	return &t, nil
}
