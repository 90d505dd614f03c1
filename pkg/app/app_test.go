package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/deliver"
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/journal"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/report"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

type memoryPersistence struct {
	mu       sync.Mutex
	reports  []report.Report
	counter  int
	override lists.Override
	streams  []string
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{override: lists.Override{Lists: lists.Lists{}}}
}

func (m *memoryPersistence) LoadReports(context.Context) []report.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]report.Report(nil), m.reports...)
}

func (m *memoryPersistence) AppendReport(r report.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, r)
	if over := len(m.reports) - store.ReportsLimit; over > 0 {
		m.reports = m.reports[over:]
	}
	return nil
}

func (m *memoryPersistence) ResetReports() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = nil
	return nil
}

func (m *memoryPersistence) LoadCounter() field.Counter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counter == 0 {
		return field.Counter{Valid: true, Empty: true}
	}
	return field.Counter{Valid: true, Value: m.counter}
}

func (m *memoryPersistence) SaveCounter(value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter = value
	return nil
}

func (m *memoryPersistence) LoadOverride() lists.Override {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := lists.Override{Lists: lists.Lists{}, Defaults: m.override.Defaults}
	for c, v := range m.override.Lists {
		cp.Lists[c] = append([]string(nil), v...)
	}
	return cp
}

func (m *memoryPersistence) SaveOverride(ov lists.Override) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.override = ov
	return nil
}

func (m *memoryPersistence) ClearOverride() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.override = lists.Override{Lists: lists.Lists{}}
	return nil
}

func (m *memoryPersistence) LoadStreams() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.streams...)
}

func (m *memoryPersistence) SaveStreams(items []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append([]string(nil), items...)
	return nil
}

func (m *memoryPersistence) AddStream(value string) error {
	v := strings.TrimSpace(value)
	if v == "" || v == report.StreamPlaceholder {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.streams {
		if s == v {
			return nil
		}
	}
	m.streams = append(m.streams, v)
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

type recordingDeliverer struct {
	texts []string
	// stored is the history length seen at delivery time.
	stored []int
	mp     *memoryPersistence
	err    error
}

func (r *recordingDeliverer) Deliver(ctx context.Context, text string) error {
	r.texts = append(r.texts, text)
	if r.mp != nil {
		r.stored = append(r.stored, len(r.mp.LoadReports(ctx)))
	}
	return r.err
}

var fixedNow = time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)

func newService(mp *memoryPersistence, d deliver.Deliverer) *Service {
	return &Service{
		Persistence: mp,
		Deliverer:   d,
		Now:         func() time.Time { return fixedNow },
		Location:    time.UTC,
	}
}

func validForm(counter string) *Form {
	f := &Form{
		Counter:     counter,
		Date:        time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Takeoff:     "10:00",
		Impact:      "10:15",
		Drone:       "X",
		MissionType: "Розвідка",
		MgrsPrefix:  "37U",
		Ammo:        "Граната",
		Result:      "Уражено",
	}
	f.Coords.SetEasting("12345")
	f.Coords.SetNorthing("67890")
	return f
}

func TestGenerateAdvancesCounterAndPersistsBeforeDelivery(t *testing.T) {
	mp := newMemoryPersistence()
	d := &recordingDeliverer{mp: mp}
	svc := newService(mp, d)
	f := validForm("3")

	res, err := svc.Generate(context.Background(), f)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(res.Report.Text, "Дакар (3)\n03.01.2024\n") {
		t.Fatalf("unexpected report head: %q", res.Report.Text)
	}
	if res.Counter != 4 || f.Counter != "4" || mp.counter != 4 {
		t.Fatalf("expected counter 4, got result=%d form=%q stored=%d", res.Counter, f.Counter, mp.counter)
	}
	if !f.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date reset to today, got %v", f.Date)
	}
	if res.Status != StatusCopied {
		t.Fatalf("expected status %q, got %q", StatusCopied, res.Status)
	}
	if len(d.stored) != 1 || d.stored[0] != 1 {
		t.Fatalf("expected report stored before delivery, saw %v", d.stored)
	}
	if !res.Report.Timestamp.Equal(fixedNow) {
		t.Fatalf("expected timestamp %v, got %v", fixedNow, res.Report.Timestamp)
	}
}

func TestGenerateCounterCapsAndEmptyStaysEmpty(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp, deliver.Discard)

	f := validForm("25")
	if _, err := svc.Generate(context.Background(), f); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if f.Counter != "25" || mp.counter != 25 {
		t.Fatalf("expected counter capped at 25, got %q/%d", f.Counter, mp.counter)
	}

	mp.counter = 0
	f = validForm("")
	res, err := svc.Generate(context.Background(), f)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Counter != 0 || f.Counter != "" || mp.counter != 0 {
		t.Fatalf("expected empty counter untouched, got %d/%q/%d", res.Counter, f.Counter, mp.counter)
	}
	if !strings.HasPrefix(res.Report.Text, "Дакар\n") {
		t.Fatalf("expected bare crew line, got %q", res.Report.Text)
	}
}

func TestGenerateValidationMutatesNothing(t *testing.T) {
	mp := newMemoryPersistence()
	d := &recordingDeliverer{}
	svc := newService(mp, d)

	f := validForm("3")
	f.Coords.SetNorthing("678")
	before := *f

	_, err := svc.Generate(context.Background(), f)
	if !errors.Is(err, field.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ValidationStatus(err) != StatusCoordsError {
		t.Fatalf("unexpected status %q", ValidationStatus(err))
	}
	if len(mp.reports) != 0 || mp.counter != 0 || len(d.texts) != 0 {
		t.Fatalf("expected no side effects, got reports=%d counter=%d deliveries=%d", len(mp.reports), mp.counter, len(d.texts))
	}
	if f.Counter != before.Counter || !f.Date.Equal(before.Date) {
		t.Fatalf("form changed on validation failure")
	}

	f = validForm("26")
	_, err = svc.Generate(context.Background(), f)
	if err != field.ErrCounter {
		t.Fatalf("expected counter error, got %v", err)
	}
	if ValidationStatus(err) != field.ErrCounter.Msg {
		t.Fatalf("unexpected status %q", ValidationStatus(err))
	}
}

func TestGenerateDeliveryFailureStillPersists(t *testing.T) {
	mp := newMemoryPersistence()
	d := &recordingDeliverer{err: deliver.ErrDelivery}
	svc := newService(mp, d)

	res, err := svc.Generate(context.Background(), validForm("1"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Status != StatusCopyFailed || !errors.Is(res.DeliveryErr, deliver.ErrDelivery) {
		t.Fatalf("expected copy failure status, got %q / %v", res.Status, res.DeliveryErr)
	}
	if len(mp.reports) != 1 || mp.counter != 2 {
		t.Fatalf("expected report stored and counter advanced, got %d / %d", len(mp.reports), mp.counter)
	}
}

func TestGenerateRegistersStream(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp, deliver.Discard)

	for _, stream := range []string{"", "---", " Стрім-1 ", "Стрім-1"} {
		f := validForm("")
		f.Stream = stream
		if _, err := svc.Generate(context.Background(), f); err != nil {
			t.Fatalf("generate: %v", err)
		}
	}
	streams, _ := svc.Streams()
	if len(streams) != 1 || streams[0] != "Стрім-1" {
		t.Fatalf("expected one stream, got %v", streams)
	}
}

func TestGenerateWithoutPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Generate(context.Background(), validForm("")); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestSetCounter(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp, nil)

	c, err := svc.SetCounter(" 12 ")
	if err != nil || c.Value != 12 || mp.counter != 12 {
		t.Fatalf("expected 12, got %+v (%v)", c, err)
	}
	if _, err := svc.SetCounter(""); err != nil || mp.counter != 0 {
		t.Fatalf("expected counter cleared, got %d (%v)", mp.counter, err)
	}
}

func TestSetCounterRejectsInvalidInput(t *testing.T) {
	for _, raw := range []string{"99", "250", "123", "abc", "-5", "0", " 1a2 "} {
		t.Run(raw, func(t *testing.T) {
			mp := newMemoryPersistence()
			mp.counter = 7
			svc := newService(mp, nil)

			c, err := svc.SetCounter(raw)
			if err != field.ErrCounter {
				t.Fatalf("SetCounter(%q) = %+v, %v; want counter error", raw, c, err)
			}
			if c.Valid || c.Empty {
				t.Fatalf("SetCounter(%q) reported %+v, want invalid and not empty", raw, c)
			}
			if mp.counter != 7 {
				t.Fatalf("SetCounter(%q) changed the stored counter to %d", raw, mp.counter)
			}
		})
	}
}

type staticSource struct {
	cfg lists.Config
	err error
}

func (s staticSource) Fetch(context.Context) (lists.Config, error) {
	return s.cfg, s.err
}

func TestEffectiveListsAndAddItem(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp, nil)
	src := staticSource{cfg: lists.Config{
		Lists:    lists.Lists{lists.Ammo: {"A", "B"}},
		Defaults: lists.Defaults{Result: "Уражено"},
	}}
	ctx := context.Background()

	if _, err := svc.AddListItem(ctx, src, lists.Ammo, " C "); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := svc.AddListItem(ctx, src, lists.Ammo, "B"); !errors.Is(err, lists.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}

	cfg, err := svc.EffectiveLists(ctx, src)
	if err != nil {
		t.Fatalf("effective lists: %v", err)
	}
	if got := strings.Join(cfg.Lists[lists.Ammo], ","); got != "A,B,C" {
		t.Fatalf("expected A,B,C got %s", got)
	}

	broken := staticSource{err: lists.ErrConfigLoad}
	cfg, err = svc.EffectiveLists(ctx, broken)
	if !errors.Is(err, lists.ErrConfigLoad) {
		t.Fatalf("expected config load error, got %v", err)
	}
	if got := strings.Join(cfg.Lists[lists.Ammo], ","); got != "C" {
		t.Fatalf("expected override-only lists, got %s", got)
	}

	if err := svc.ResetLists(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	cfg, _ = svc.EffectiveLists(ctx, src)
	if got := strings.Join(cfg.Lists[lists.Ammo], ","); got != "A,B" {
		t.Fatalf("expected base lists after reset, got %s", got)
	}
}

func TestNewFormUsesDefaults(t *testing.T) {
	cfg := lists.Merge(lists.Config{
		Lists: lists.Lists{
			lists.Drones:       {"Вампір"},
			lists.MissionTypes: {"Розвідка", "Удар"},
			lists.Results:      {"Уражено"},
			lists.MgrsPrefixes: {"36U", "37U"},
		},
		Defaults: lists.Defaults{MgrsPrefix: "37U", MissionType: "Удар"},
	}, lists.Override{})

	f := NewForm(cfg, "", field.ParseCounter("4"), fixedNow)
	if f.Drone != "Вампір" || f.MissionType != "Удар" || f.MgrsPrefix != "37U" || f.Result != "Уражено" {
		t.Fatalf("unexpected form defaults: %+v", f)
	}
	if f.Counter != "4" || !f.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected counter/date: %q %v", f.Counter, f.Date)
	}
	if f.ToggleMode(lists.Ammo) != field.Freeform || f.Mode(lists.Ammo) != field.Freeform {
		t.Fatal("expected ammo freeform after toggle")
	}
}

func TestJournalAndFindReport(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp, deliver.Discard)
	ctx := context.Background()

	first, err := svc.Generate(ctx, validForm(""))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	f := validForm("")
	f.Result = "Втрата борта"
	if _, err := svc.Generate(ctx, f); err != nil {
		t.Fatalf("generate: %v", err)
	}

	res, err := svc.Journal(ctx, journal.Filter{})
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if res.Total != 2 || res.Hits != 1 || res.Losses != 1 || res.Rate() != 50 {
		t.Fatalf("unexpected journal: total=%d hits=%d losses=%d", res.Total, res.Hits, res.Losses)
	}

	got, err := svc.FindReport(ctx, first.Report.ShortID())
	if err != nil || got.ID != first.Report.ID {
		t.Fatalf("find report: %v", err)
	}
	if _, err := svc.FindReport(ctx, "zzzz"); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.FindReport(ctx, ""); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected not found for blank id, got %v", err)
	}

	if w := svc.MonthWindow(); w.FromDate != "2024-01-01" || w.ToDate != "2024-01-31" {
		t.Fatalf("unexpected month window %+v", w)
	}
}
