package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/runner/streams"
)

func addStreams(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "streams",
		Short: base.Wrap80("Show the remembered stream names."),
		Example: `
uavreport streams
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			s := streams.Show{
				Service: e.Service,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)

	addStreamsAdd(cmd)
	addStreamsSet(cmd)

	topLevel.AddCommand(cmd)
}

func addStreamsAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <stream>",
		Short: "Remember a stream name.",
		Example: `
uavreport streams add Альфа
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a stream name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := streams.Add{
				Service: e.Service,
				Value:   strings.Join(args, " "),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addStreamsSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set [streams...]",
		Short: "Replace the remembered stream names, none clears them.",
		Example: `
uavreport streams set Альфа Браво
uavreport streams set
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := streams.Set{
				Service: e.Service,
				Values:  args,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
