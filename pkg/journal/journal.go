// Package journal filters the stored report history by time window and text,
// and aggregates the kept reports into frequency tables and hit/loss KPIs.
package journal

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/report"
	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

const (
	hitStem  = "уражен"
	lossStem = "втрата"

	// EmptyMessage is the summary of a window without reports.
	EmptyMessage = "За обраний період звітів не знайдено."

	copyAllSeparator = "\n\n---\n\n"
)

// Filter selects reports by effective time and text. Nil bounds are open and
// both bounds are inclusive.
type Filter struct {
	From   *time.Time
	To     *time.Time
	Search string
}

func (f Filter) keep(when time.Time, text string, search string) bool {
	if f.From != nil && when.Before(*f.From) {
		return false
	}
	if f.To != nil && when.After(*f.To) {
		return false
	}
	if search != "" && !strings.Contains(strings.ToLower(text), search) {
		return false
	}
	return true
}

// Entry is a kept report with its parsed fields and effective time.
type Entry struct {
	Report report.Report
	Fields report.Fields
	When   time.Time
}

// Header renders the journal card title, "YYYY-MM-DD — crew".
func (e Entry) Header() string {
	date := timeutil.NormalizeReportDate(e.Fields.Date)
	if date == "" && !e.Report.Timestamp.IsZero() {
		date = report.FormatTime(e.Report.Timestamp.Time)[:10]
	}
	if date == "" {
		date = e.Fields.Date
	}
	return strings.TrimSpace(date + " — " + e.Fields.Crew)
}

// Count is one row of a frequency table.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tally is a frequency table ordered by descending count. Equal counts keep
// the order in which the values were first seen.
type Tally []Count

type tallyBuilder struct {
	index map[string]int
	rows  Tally
}

func (b *tallyBuilder) inc(name string) {
	if name == "" {
		return
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.rows[i].Count++
		return
	}
	b.index[name] = len(b.rows)
	b.rows = append(b.rows, Count{Name: name, Count: 1})
}

func (b *tallyBuilder) build() Tally {
	out := make(Tally, len(b.rows))
	copy(out, b.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Result is the rendered journal for one filter.
type Result struct {
	Entries      []Entry `json:"-"`
	Drones       Tally   `json:"drones"`
	Ammo         Tally   `json:"ammo"`
	MissionTypes Tally   `json:"missionTypes"`
	Results      Tally   `json:"results"`
	Total        int     `json:"total"`
	Hits         int     `json:"hits"`
	Losses       int     `json:"losses"`
}

// Rate is hits as a rounded percentage of the total, 0 for an empty result.
func (r Result) Rate() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Hits) / float64(r.Total) * 100))
}

// Block is a labelled frequency table of the summary.
type Block struct {
	Label string
	Tally Tally
}

// Blocks returns the frequency tables in summary order.
func (r Result) Blocks() []Block {
	return []Block{
		{Label: "Бортів", Tally: r.Drones},
		{Label: "Боєприпасів", Tally: r.Ammo},
		{Label: "Типів місій", Tally: r.MissionTypes},
		{Label: "Результатів", Tally: r.Results},
	}
}

// Summary renders the plain text summary for period, a label such as
// "2024-05-01 00:00 → 2024-05-31 23:59". Empty tables are left out.
func (r Result) Summary(period string) string {
	if r.Total == 0 {
		return EmptyMessage
	}
	parts := []string{
		"Період: " + period,
		"",
		"Кількість вильотів: " + strconv.Itoa(r.Total),
	}
	for _, b := range r.Blocks() {
		if len(b.Tally) == 0 {
			continue
		}
		lines := make([]string, 0, len(b.Tally))
		for _, c := range b.Tally {
			lines = append(lines, "- "+c.Name+": "+strconv.Itoa(c.Count))
		}
		parts = append(parts, b.Label+":\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// CopyAll joins the texts of the kept reports, newest first.
func (r Result) CopyAll() string {
	texts := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		texts = append(texts, e.Report.Text)
	}
	return strings.Join(texts, copyAllSeparator)
}

// EffectiveTime is the event time of r: the report's own date and impact time
// in loc when both parse, else its creation timestamp. ok is false when
// neither is usable.
func EffectiveTime(r report.Report, f report.Fields, loc *time.Location) (time.Time, bool) {
	if date := timeutil.NormalizeReportDate(f.Date); date != "" {
		if day, err := timeutil.ParseDate(date, loc); err == nil {
			if h, m, err := timeutil.ParseClock(f.ImpactTime); err == nil {
				return timeutil.At(day, h, m, 0, 0, loc), true
			}
		}
	}
	if r.Timestamp.IsZero() {
		return time.Time{}, false
	}
	return r.Timestamp.Time, true
}

// Render filters reports, orders the kept ones newest first and aggregates
// them. Report times without a zone are read in loc.
func Render(reports []report.Report, filter Filter, loc *time.Location) Result {
	if loc == nil {
		loc = time.Local
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	entries := make([]Entry, 0, len(reports))
	for _, r := range reports {
		fields := report.Parse(r.Text)
		when, ok := EffectiveTime(r, fields, loc)
		if !ok {
			continue
		}
		if !filter.keep(when, r.Text, search) {
			continue
		}
		entries = append(entries, Entry{Report: r, Fields: fields, When: when})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].When.After(entries[j].When)
	})

	var drones, ammo, missions, results tallyBuilder
	res := Result{Entries: entries, Total: len(entries)}
	for _, e := range entries {
		drones.inc(e.Fields.Drone)
		ammo.inc(e.Fields.Ammo)
		missions.inc(e.Fields.MissionType)
		if e.Fields.Result == "" {
			continue
		}
		results.inc(e.Fields.Result)

		lower := strings.ToLower(e.Fields.Result)
		if strings.Contains(lower, hitStem) {
			res.Hits++
		}
		if strings.Contains(lower, lossStem) {
			res.Losses++
		}
	}
	res.Drones = drones.build()
	res.Ammo = ammo.build()
	res.MissionTypes = missions.build()
	res.Results = results.build()
	return res
}
