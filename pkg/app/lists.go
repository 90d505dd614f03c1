package app

import (
	"context"

	"github.com/irreligious86/Report-UAV/pkg/lists"
)

// EffectiveLists merges the base lists from src with the stored override. A
// failed base load is logged and returned, and the config falls back to the
// override alone so the form stays usable.
func (s *Service) EffectiveLists(ctx context.Context, src lists.Source) (lists.Config, error) {
	if err := s.ready(); err != nil {
		return lists.Config{}, err
	}
	ov := s.Persistence.LoadOverride()

	var base lists.Config
	var loadErr error
	if src != nil {
		if base, loadErr = src.Fetch(ctx); loadErr != nil {
			s.Logger.Warn().Err(loadErr).Msg("app: base lists unavailable")
			base = lists.Config{}
		}
	}
	return lists.Merge(base, ov), loadErr
}

// AddListItem adds value to the override of c. It returns the normalized
// value that was stored.
func (s *Service) AddListItem(ctx context.Context, src lists.Source, c lists.Category, value string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	// Without the base lists the duplicate check covers the override only.
	effective, _ := s.EffectiveLists(ctx, src)
	ov := s.Persistence.LoadOverride()
	v, err := lists.AddItem(effective, &ov, c, value)
	if err != nil {
		return v, err
	}
	return v, s.Persistence.SaveOverride(ov)
}

// SetList replaces the override of c.
func (s *Service) SetList(c lists.Category, values []string) error {
	if err := s.ready(); err != nil {
		return err
	}
	ov := s.Persistence.LoadOverride()
	lists.SetList(&ov, c, values)
	return s.Persistence.SaveOverride(ov)
}

// SetDefaults stores the default selections of the form.
func (s *Service) SetDefaults(d lists.Defaults) error {
	if err := s.ready(); err != nil {
		return err
	}
	ov := s.Persistence.LoadOverride()
	ov.Defaults = &d
	return s.Persistence.SaveOverride(ov)
}

// ResetLists drops every local list change.
func (s *Service) ResetLists() error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Persistence.ClearOverride()
}
