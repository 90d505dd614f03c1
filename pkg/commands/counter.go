package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/runner/counter"
)

func addCounter(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "counter",
		Short: base.Wrap80("Show the crew counter used by the next report."),
		Example: `
uavreport counter
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			s := counter.Counter{
				Service: e.Service,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)

	addCounterSet(cmd)
	addCounterClear(cmd)

	topLevel.AddCommand(cmd)
}

func addCounterSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <1-25>",
		Short: "Set the crew counter.",
		Example: `
uavreport counter set 7
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a counter value")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := counter.Counter{
				Service: e.Service,
				Set:     true,
				Value:   args[0],
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addCounterClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the crew counter so reports omit it.",
		Example: `
uavreport counter clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := counter.Counter{
				Service: e.Service,
				Set:     true,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
