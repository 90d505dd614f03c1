// Package timeutil parses the dates, clock times and look-back windows used by
// the report form and the journal.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutISO is the date layout of form and filter inputs.
	LayoutISO = "2006-01-02"
	// LayoutClock is the 24h clock layout of takeoff and impact times.
	LayoutClock = "15:04"
)

var (
	clockPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	dottedPattern  = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseClock parses "H:MM" or "HH:MM" in 24h form into hour and minute.
func ParseClock(s string) (int, int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("clock time out of range %q", s)
	}
	return hour, minute, nil
}

// ParseDate parses "YYYY-MM-DD" as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, strings.TrimSpace(s), loc)
}

// NormalizeReportDate turns a report date ("DD.MM.YYYY", "D.M.YYYY" or
// "YYYY-MM-DD") into "YYYY-MM-DD". It returns "" when s is none of those.
func NormalizeReportDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isoDatePattern.MatchString(s) {
		return s
	}
	m := dottedPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	d, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%s-%02d-%02d", m[3], mo, d)
}

// At combines a calendar date with a clock time in loc.
func At(date time.Time, hour, minute, sec, nsec int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, sec, nsec, loc)
}

// Clock renders t as "HH:MM".
func Clock(t time.Time) string {
	return t.Format(LayoutClock)
}

// Today returns local midnight of now.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// MonthBounds returns the first and last calendar day of now's month.
func MonthBounds(now time.Time) (time.Time, time.Time) {
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}
