// Package report renders the canonical sortie report and reads it back.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Report is a generated report as kept in the journal. It is never modified
// after it is stored.
type Report struct {
	ID        string    `json:"id,omitempty"`
	Timestamp Timestamp `json:"ts"`
	Text      string    `json:"text"`
}

// New stamps text with a fresh id and the creation instant.
func New(text string, created time.Time) Report {
	return Report{
		ID:        uuid.NewString(),
		Timestamp: Timestamp{Time: created},
		Text:      text,
	}
}

// ShortID is the id prefix shown in listings.
func (r Report) ShortID() string {
	if len(r.ID) > 8 {
		return r.ID[:8]
	}
	return r.ID
}
