package report

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses an ISO-8601 instant such as "2024-01-05T10:15:00.000Z".
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is the creation instant of a report. A value that does not parse
// is kept as the zero time so one bad entry cannot spoil the whole history.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTime renders v the way browsers render Date.toISOString.
func FormatTime(v time.Time) string {
	return v.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
