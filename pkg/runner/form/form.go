// Package form runs the interactive report form in the terminal.
package form

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

type Form struct {
	Service *app.Service
	Source  lists.Source
	Crew    string

	// Options are passed to tea.NewProgram, tests use them to swap input and output.
	Options []tea.ProgramOption
}

func (f *Form) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := f.Service.EffectiveLists(ctx, f.Source)
	status := ""
	if err != nil {
		status = app.StatusConfigError
	}
	counter, err := f.Service.Counter()
	if err != nil {
		return err
	}
	streams, err := f.Service.Streams()
	if err != nil {
		return err
	}

	m := NewModel(ctx, f.Service, app.NewForm(cfg, f.Crew, counter, f.Service.CurrentTime()), cfg, streams)
	if status != "" {
		m.status, m.failed = status, true
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, f.Options...)
	p := tea.NewProgram(m, opts...)

	if events, err := f.Service.Watch(ctx); err != nil {
		f.Service.Logger.Warn().Err(err).Msg("form: watch store")
	} else {
		go f.follow(ctx, p, events)
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// follow forwards option list and stream changes made by other instances.
func (f *Form) follow(ctx context.Context, p *tea.Program, events <-chan store.Event) {
	for ev := range events {
		reloadLists := ev.Type == store.EventInvalidated || ev.Key == store.KeyOverride
		reloadStreams := ev.Type == store.EventInvalidated || ev.Key == store.KeyStreams

		if reloadLists {
			if cfg, err := f.Service.EffectiveLists(ctx, f.Source); err == nil {
				p.Send(listsMsg{cfg: cfg})
			}
		}
		if reloadStreams {
			if items, err := f.Service.Streams(); err == nil {
				p.Send(streamsMsg{items: items})
			}
		}
	}
}
