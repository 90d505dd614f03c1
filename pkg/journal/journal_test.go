package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irreligious86/Report-UAV/pkg/report"
)

func composed(t *testing.T, date time.Time, impact, drone, result string) string {
	t.Helper()
	text, err := report.Compose(report.Snapshot{
		Crew:        "Дакар",
		Date:        date,
		Takeoff:     "10:00",
		Impact:      impact,
		Drone:       drone,
		MissionType: "Розвідка",
		Easting:     "12345",
		Northing:    "67890",
		MgrsPrefix:  "37U",
		Ammo:        "Граната",
		Result:      result,
	})
	require.NoError(t, err)
	return text
}

func rep(text string, ts time.Time) report.Report {
	return report.Report{Timestamp: report.Timestamp{Time: ts}, Text: text}
}

func TestRenderHitsLossesRate(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	reports := []report.Report{
		rep(composed(t, day, "10:15", "X", "Ціль уражено"), day),
		rep(composed(t, day, "11:15", "X", "Втрата боєприпасу"), day),
	}

	res := Render(reports, Filter{}, time.UTC)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 1, res.Losses)
	assert.Equal(t, 50, res.Rate())
}

func TestRenderCountsBothStems(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	reports := []report.Report{
		rep(composed(t, day, "10:15", "X", "Уражено, втрата борта"), day),
		rep(composed(t, day, "10:20", "X", "Без змін"), day),
	}
	res := Render(reports, Filter{}, time.UTC)
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 1, res.Losses)
	assert.Equal(t, 50, res.Rate())
}

func TestRenderOrdersNewestFirstAndFilters(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	early := rep(composed(t, day, "08:00", "A", "Уражено"), day)
	late := rep(composed(t, day, "21:30", "B", "Уражено"), day)
	other := rep(composed(t, day.AddDate(0, 1, 0), "09:00", "C", "Уражено"), day)

	w := Window{FromDate: "2024-05-01", ToDate: "2024-05-31"}
	f, err := w.Filter("", time.UTC)
	require.NoError(t, err)

	res := Render([]report.Report{early, late, other}, f, time.UTC)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "B", res.Entries[0].Fields.Drone)
	assert.Equal(t, "A", res.Entries[1].Fields.Drone)

	f.Search = "борт: b"
	res = Render([]report.Report{early, late, other}, f, time.UTC)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "B", res.Entries[0].Fields.Drone)
}

func TestEffectiveTimeFallsBackToTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 3, 7, 0, 0, 0, time.UTC)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	r := rep(composed(t, day, "25:99", "X", "Уражено"), ts)
	when, ok := EffectiveTime(r, report.Parse(r.Text), time.UTC)
	require.True(t, ok)
	assert.True(t, when.Equal(ts))

	r = rep(composed(t, day, "10:15", "X", "Уражено"), ts)
	when, ok = EffectiveTime(r, report.Parse(r.Text), time.UTC)
	require.True(t, ok)
	assert.True(t, when.Equal(time.Date(2024, 5, 10, 10, 15, 0, 0, time.UTC)))

	r = rep("garbage", time.Time{})
	_, ok = EffectiveTime(r, report.Parse(r.Text), time.UTC)
	assert.False(t, ok)
}

func TestBoundaryInclusive(t *testing.T) {
	from, err := Boundary("2024-05-01", "", true, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *from)

	to, err := Boundary("2024-05-31", "", false, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), *to)

	to, err = Boundary("2024-05-31", "10:15", false, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 10, 15, 59, int(999*time.Millisecond), time.UTC), *to)

	open, err := Boundary("", "10:00", true, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, open)

	_, err = Boundary("31.05.2024", "", true, time.UTC)
	assert.Error(t, err)
	_, err = Boundary("2024-05-31", "7pm", true, time.UTC)
	assert.Error(t, err)
}

func TestReportAtEndBoundaryIsKept(t *testing.T) {
	day := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	r := rep(composed(t, day, "23:59", "X", "Уражено"), day)

	f, err := MonthWindow(time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)).Filter("", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, Render([]report.Report{r}, f, time.UTC).Total)
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, Window{FromDate: "2024-02-01", FromClock: "00:00", ToDate: "2024-02-29", ToClock: "23:59"}, w)
	assert.Equal(t, "2024-02-01 00:00 → 2024-02-29 23:59", w.Label())
}

func TestSummary(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	reports := []report.Report{
		rep(composed(t, day, "10:00", "A", "Уражено"), day),
		rep(composed(t, day, "11:00", "B", "Уражено"), day),
		rep(composed(t, day, "12:00", "B", "Втрата"), day),
	}
	res := Render(reports, Filter{}, time.UTC)

	want := strings.Join([]string{
		"Період: 2024-05-01 → 2024-05-31",
		"",
		"Кількість вильотів: 3",
		"Бортів:\n- B: 2\n- A: 1",
		"Боєприпасів:\n- Граната: 3",
		"Типів місій:\n- Розвідка: 3",
		"Результатів:\n- Уражено: 2\n- Втрата: 1",
	}, "\n\n")
	if diff := cmp.Diff(want, res.Summary("2024-05-01 → 2024-05-31")); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, EmptyMessage, Render(nil, Filter{}, time.UTC).Summary("x"))
}

func TestTallyTiesKeepFirstSeenOrder(t *testing.T) {
	var b tallyBuilder
	for _, v := range []string{"z", "a", "", "a", "m", "z"} {
		b.inc(v)
	}
	b.inc("m")
	b.inc("q")
	assert.Equal(t, Tally{{"z", 2}, {"a", 2}, {"m", 2}, {"q", 1}}, b.build())
}

func TestCopyAllAndHeader(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	a := rep(composed(t, day, "10:00", "A", "Уражено"), day)
	b := rep(composed(t, day, "11:00", "B", "Уражено"), day)
	res := Render([]report.Report{a, b}, Filter{}, time.UTC)

	assert.Equal(t, b.Text+"\n\n---\n\n"+a.Text, res.CopyAll())
	assert.Equal(t, "2024-05-10 — Дакар", res.Entries[0].Header())

	legacy := Entry{
		Report: rep("Екіпаж\nnot a date", time.Date(2024, 4, 2, 3, 0, 0, 0, time.UTC)),
		Fields: report.Fields{Crew: "Екіпаж", Date: "not a date"},
	}
	assert.Equal(t, "2024-04-02 — Екіпаж", legacy.Header())
}
