package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/journal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month of then with every day that has a sortie in bold.
func (pp *PrettyPrint) Calendar(then time.Time, entries ...journal.Entry) {
	pp.PrintMonthCount(then, DayCounts(then, entries...))
}

// DayCounts buckets entries by day of then's month using their effective time
// in then's location.
func DayCounts(then time.Time, entries ...journal.Entry) []int {
	count := make([]int, DaysIn(then))
	for _, e := range entries {
		when := e.When.In(then.Location())
		if when.Year() == then.Year() && when.Month() == then.Month() {
			count[when.Day()-1]++
		}
	}
	return count
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", max(0, mid)), m)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
