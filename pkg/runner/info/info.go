package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/config"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

type Info struct {
	Config  *config.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("UAVREPORT_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "UAVREPORT_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "UAVREPORT_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		if n.Config, err = config.Load(); err != nil {
			return err
		}
	}
	if n.Config.File != "" {
		_, _ = fmt.Fprintln(out, "Config.file: ", n.Config.File)
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.lists:", n.Config.Lists)
	_, _ = fmt.Fprintln(out, "Config.crew: ", n.Config.Crew)

	if n.Service == nil {
		return fmt.Errorf("failed to create service")
	}

	reports, err := n.Service.Reports(ctx)
	if err != nil {
		return err
	}
	counter, _ := n.Service.Counter()
	streams, _ := n.Service.Streams()

	_, _ = fmt.Fprintf(out, "Reports:      %d of %d\n", len(reports), store.ReportsLimit)
	if counter.Empty {
		_, _ = fmt.Fprintln(out, "Counter:      not set")
	} else {
		_, _ = fmt.Fprintf(out, "Counter:      %d\n", counter.Value)
	}
	_, _ = fmt.Fprintf(out, "Streams:      %d\n", len(streams))
	return nil
}
