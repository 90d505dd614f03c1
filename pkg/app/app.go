package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/irreligious86/Report-UAV/pkg/deliver"
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/journal"
	"github.com/irreligious86/Report-UAV/pkg/report"
	"github.com/irreligious86/Report-UAV/pkg/store"
	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

// Status messages shown after an action.
const (
	StatusCopied      = "Звіт скопійовано."
	StatusCopyFailed  = "Помилка копіювання."
	StatusConfigError = "Помилка конфігу."
	StatusCoordsError = "Помилка в координатах."
)

var (
	ErrNoPersistence  = errors.New("app: no persistence configured")
	ErrReportNotFound = errors.New("app: report not found")
	ErrAmbiguousID    = errors.New("app: report id is ambiguous")
)

// Service provides the report operations shared by the CLI commands and the
// interactive form.
type Service struct {
	Persistence store.Persistence
	Deliverer   deliver.Deliverer
	Logger      zerolog.Logger

	// Now and Location default to time.Now and time.Local.
	Now      func() time.Time
	Location *time.Location
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// CurrentTime is the service clock in its location.
func (s *Service) CurrentTime() time.Time {
	return s.now().In(s.loc())
}

// Loc returns the zone report times are read in.
func (s *Service) Loc() *time.Location {
	return s.loc()
}

func (s *Service) ready() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return nil
}

// GenerateResult describes a successful generate action.
type GenerateResult struct {
	Report report.Report
	// Counter is the stored counter after the action, 0 when absent.
	Counter int
	Status  string
	// DeliveryErr is the non-fatal delivery failure, if any.
	DeliveryErr error
}

// Generate validates f, composes the report, stores it and only then hands it
// to the Deliverer. On success the counter advances (when set), the stream is
// remembered and the date resets to today. A validation error leaves f and
// the store untouched; a delivery failure does not undo anything.
func (s *Service) Generate(ctx context.Context, f *Form) (GenerateResult, error) {
	if err := s.ready(); err != nil {
		return GenerateResult{}, err
	}

	snap, counter, err := f.Snapshot()
	if err != nil {
		return GenerateResult{}, err
	}
	text, err := report.Compose(snap)
	if err != nil {
		return GenerateResult{}, err
	}

	now := s.now()
	r := report.New(text, now)
	if err := s.Persistence.AppendReport(r); err != nil {
		return GenerateResult{}, fmt.Errorf("app: store report: %w", err)
	}

	if err := s.Persistence.AddStream(snap.Stream); err != nil {
		s.Logger.Warn().Err(err).Msg("app: remember stream")
	}

	res := GenerateResult{Report: r}
	if !counter.Empty {
		next := counter.Next()
		if err := s.Persistence.SaveCounter(next); err != nil {
			s.Logger.Warn().Err(err).Msg("app: save counter")
		}
		f.Counter = strconv.Itoa(next)
		res.Counter = next
	}
	f.Date = timeutil.Today(now.In(s.loc()))

	res.Status = StatusCopied
	if s.Deliverer != nil {
		if err := s.Deliverer.Deliver(ctx, text); err != nil {
			s.Logger.Warn().Err(err).Msg("app: deliver report")
			res.Status = StatusCopyFailed
			res.DeliveryErr = err
		}
	}
	return res, nil
}

// ValidationStatus maps a Generate error to its status message, "" when err
// is not a form problem.
func ValidationStatus(err error) string {
	var verr *field.ValidationError
	if !errors.As(err, &verr) {
		return ""
	}
	if verr == field.ErrCoordinates {
		return StatusCoordsError
	}
	return verr.Msg
}

// Deliver hands arbitrary text, such as a stored report, to the Deliverer.
func (s *Service) Deliver(ctx context.Context, text string) error {
	if s.Deliverer == nil {
		return nil
	}
	return s.Deliverer.Deliver(ctx, text)
}

// Counter returns the stored crew counter.
func (s *Service) Counter() (field.Counter, error) {
	if err := s.ready(); err != nil {
		return field.Counter{}, err
	}
	return s.Persistence.LoadCounter(), nil
}

// SetCounter stores raw as the counter. Blank input clears it; anything that
// is not a number in 1–25 is rejected and leaves the stored value alone.
func (s *Service) SetCounter(raw string) (field.Counter, error) {
	if err := s.ready(); err != nil {
		return field.Counter{}, err
	}
	c := field.ParseCounter(raw)
	if err := c.Err(); err != nil {
		return c, err
	}
	if err := s.Persistence.SaveCounter(c.Value); err != nil {
		return c, err
	}
	return c, nil
}

// Streams returns the known stream values.
func (s *Service) Streams() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.LoadStreams(), nil
}

// AddStream remembers one stream value.
func (s *Service) AddStream(value string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.AddStream(value)
}

// SetStreams replaces the known stream values.
func (s *Service) SetStreams(items []string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.SaveStreams(items)
}

// Reports returns the stored history, oldest first.
func (s *Service) Reports(ctx context.Context) ([]report.Report, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.LoadReports(ctx), nil
}

// ResetReports drops the whole history.
func (s *Service) ResetReports() error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.ResetReports()
}

// Journal filters and aggregates the stored history.
func (s *Service) Journal(ctx context.Context, filter journal.Filter) (journal.Result, error) {
	all, err := s.Reports(ctx)
	if err != nil {
		return journal.Result{}, err
	}
	return journal.Render(all, filter, s.loc()), nil
}

// MonthWindow is the default journal window for the current month.
func (s *Service) MonthWindow() journal.Window {
	return journal.MonthWindow(s.now().In(s.loc()))
}

// FindReport returns the stored report whose id starts with prefix.
func (s *Service) FindReport(ctx context.Context, prefix string) (report.Report, error) {
	all, err := s.Reports(ctx)
	if err != nil {
		return report.Report{}, err
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return report.Report{}, ErrReportNotFound
	}

	var found []report.Report
	for _, r := range all {
		if r.ID != "" && strings.HasPrefix(r.ID, prefix) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return report.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return report.Report{}, fmt.Errorf("%w: %s matches %d reports", ErrAmbiguousID, prefix, len(found))
	}
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Watch(ctx)
}
