package stats

import (
	"testing"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/journal"
)

func TestMonthsOldestFirst(t *testing.T) {
	entries := []journal.Entry{
		{When: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{When: time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)},
		{When: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)},
	}
	got := months(entries, time.UTC)
	if len(got) != 2 {
		t.Fatalf("expected 2 months, got %v", got)
	}
	if got[0].Month() != time.February || got[1].Month() != time.March {
		t.Fatalf("unexpected order %v", got)
	}
}
