package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"

	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/report"
)

// Storage keys. Bump the suffix to invalidate an old stored shape instead of
// migrating it in place.
const (
	KeyCounter  = "uav_report_counter_v13"
	KeyReports  = "uav_report_history_v1"
	KeyOverride = "uav_config_override_v1"
	KeyStreams  = "uav_streams_v1"

	// ReportsLimit bounds the report history; the oldest entries go first.
	ReportsLimit = 200
)

// ErrCorrupt marks a stored blob that could not be decoded.
var ErrCorrupt = errors.New("store: corrupt value")

// Persistence is the local state of the tool: report history, crew counter,
// list overrides and known stream values.
type Persistence interface {
	LoadReports(ctx context.Context) []report.Report
	AppendReport(r report.Report) error
	ResetReports() error

	LoadCounter() field.Counter
	SaveCounter(value int) error

	LoadOverride() lists.Override
	SaveOverride(ov lists.Override) error
	ClearOverride() error

	LoadStreams() []string
	SaveStreams(items []string) error
	AddStream(value string) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// Load opens the diskv-backed Persistence rooted at cfg.BasePath().
func Load(cfg Config, log zerolog.Logger) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: no config")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, tempDirName),
			Transform: func(string) []string { return []string{} },
			// Other processes write the same keys, so nothing is cached.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      log,
	}, nil
}

const tempDirName = ".tmp"

type persistence struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
	log      zerolog.Logger
}

func (p *persistence) readJSON(key string, target any) bool {
	if !p.d.Has(key) {
		return false
	}
	val, err := p.d.Read(key)
	if err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("store: read failed, using empty value")
		return false
	}
	if len(strings.TrimSpace(string(val))) == 0 {
		return false
	}
	if err := json.Unmarshal(val, target); err != nil {
		p.log.Warn().Err(fmt.Errorf("%w: %v", ErrCorrupt, err)).Str("key", key).Msg("store: using empty value")
		return false
	}
	return true
}

func (p *persistence) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) loadReports() []report.Report {
	var all []report.Report
	if !p.readJSON(KeyReports, &all) || all == nil {
		return []report.Report{}
	}
	return all
}

func (p *persistence) LoadReports(_ context.Context) []report.Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadReports()
}

// AppendReport reads the history, appends r, evicts the oldest entries beyond
// ReportsLimit and writes it back as one step.
func (p *persistence) AppendReport(r report.Report) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	all := append(p.loadReports(), r)
	if over := len(all) - ReportsLimit; over > 0 {
		all = all[over:]
	}
	return p.writeJSON(KeyReports, all)
}

func (p *persistence) ResetReports() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.erase(KeyReports)
}

func (p *persistence) LoadCounter() field.Counter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.d.Has(KeyCounter) {
		return field.Counter{Valid: true, Empty: true}
	}
	raw, err := p.d.Read(KeyCounter)
	if err != nil {
		p.log.Warn().Err(err).Msg("store: read counter failed")
		return field.Counter{Valid: true, Empty: true}
	}
	c := field.ParseCounter(string(raw))
	if !c.Valid {
		return field.Counter{Valid: true, Empty: true}
	}
	return c
}

// SaveCounter stores value, or removes the counter when value is 0.
func (p *persistence) SaveCounter(value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if value == 0 {
		return p.erase(KeyCounter)
	}
	if value < field.CounterMin || value > field.CounterMax {
		return field.ErrCounter
	}
	if err := p.d.Write(KeyCounter, []byte(fmt.Sprintf("%d", value))); err != nil {
		return fmt.Errorf("store: write counter: %w", err)
	}
	return nil
}

func (p *persistence) LoadOverride() lists.Override {
	p.mu.Lock()
	defer p.mu.Unlock()

	var ov lists.Override
	if !p.readJSON(KeyOverride, &ov) {
		return lists.Override{Lists: lists.Lists{}}
	}
	if ov.Lists == nil {
		ov.Lists = lists.Lists{}
	}
	return ov
}

func (p *persistence) SaveOverride(ov lists.Override) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeJSON(KeyOverride, ov)
}

func (p *persistence) ClearOverride() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.erase(KeyOverride)
}

func (p *persistence) loadStreams() []string {
	var raw []string
	if !p.readJSON(KeyStreams, &raw) {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p *persistence) saveStreams(items []string) error {
	cleaned := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return p.erase(KeyStreams)
	}
	return p.writeJSON(KeyStreams, cleaned)
}

func (p *persistence) LoadStreams() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadStreams()
}

// SaveStreams replaces the known streams; blank items are dropped and an
// empty list removes the key.
func (p *persistence) SaveStreams(items []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveStreams(items)
}

// AddStream registers a stream value unless it is blank, the placeholder, or
// already known.
func (p *persistence) AddStream(value string) error {
	v := strings.TrimSpace(value)
	if v == "" || v == report.StreamPlaceholder {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	known := p.loadStreams()
	for _, s := range known {
		if s == v {
			return nil
		}
	}
	return p.saveStreams(append(known, v))
}
