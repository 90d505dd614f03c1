// Package field holds the validators and sanitizers for raw report form input.
package field

import (
	"strconv"
	"strings"
)

const (
	// CounterMin and CounterMax bound the crew numbering counter.
	CounterMin = 1
	CounterMax = 25

	// CoordinateDigits is the length of a single easting or northing group.
	CoordinateDigits = 5

	counterInputLen = 2
)

// Counter is the result of parsing raw crew counter input.
type Counter struct {
	Valid bool
	Empty bool
	Value int
}

// ParseCounter parses the crew counter. Blank input is valid and empty; a run of
// digits in [CounterMin, CounterMax] is valid; anything else is invalid and is
// never clamped into range.
func ParseCounter(raw string) Counter {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Counter{Valid: true, Empty: true}
	}
	if !allDigits(s) {
		return Counter{}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < CounterMin || n > CounterMax {
		return Counter{}
	}
	return Counter{Valid: true, Value: n}
}

// Err returns ErrCounter for an invalid counter and nil otherwise.
func (c Counter) Err() error {
	if c.Valid {
		return nil
	}
	return ErrCounter
}

// Next returns the counter value advanced by one, capped at CounterMax.
func (c Counter) Next() int {
	return min(CounterMax, c.Value+1)
}

// String renders the counter the way it is shown in the form.
func (c Counter) String() string {
	if !c.Valid || c.Empty {
		return ""
	}
	return strconv.Itoa(c.Value)
}

// SanitizeCounterInput keeps digits only and truncates to two characters.
func SanitizeCounterInput(raw string) string {
	return truncate(digitsOnly(raw), counterInputLen)
}

// ValidCoordinate reports whether s is exactly five ASCII digits.
func ValidCoordinate(s string) bool {
	return len(s) == CoordinateDigits && allDigits(s)
}

// NormalizeFiveDigits strips every non-digit and keeps at most five digits. It
// never rejects input.
func NormalizeFiveDigits(s string) string {
	return truncate(digitsOnly(s), CoordinateDigits)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
