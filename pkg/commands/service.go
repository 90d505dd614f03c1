package commands

import (
	"os"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/config"
	"github.com/irreligious86/Report-UAV/pkg/deliver"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/logging"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

// env is what every command needs: the resolved config, the report service
// and the base option list source.
type env struct {
	Config  *config.Config
	Service *app.Service
	Source  lists.Source
}

func load() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	p, err := store.Load(cfg, log)
	if err != nil {
		return nil, err
	}

	d := deliver.Chain{
		deliver.Clipboard{},
		deliver.Share{Command: cfg.ShareCommand, Logger: log},
	}
	return &env{
		Config: cfg,
		Service: &app.Service{
			Persistence: p,
			Deliverer:   d,
			Logger:      log,
		},
		Source: lists.NewSource(cfg.Lists),
	}, nil
}
