package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/commands/options"
	"github.com/irreligious86/Report-UAV/pkg/runner/journal"
)

func addJournal(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}
	copyAll := false
	watch := false

	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j", "log"},
		Short:   base.Wrap80("List stored reports for a period, newest first."),
		Example: `
uavreport journal
uavreport journal --from=2024-05-01 --to=2024-05-07 -q Вампір
uavreport journal --last=12h --copy-all
uavreport journal --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			filter, label, err := po.Resolve(e.Service.CurrentTime(), e.Service.Loc())
			if err != nil {
				return oo.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := journal.Journal{
				Service: e.Service,
				Filter:  filter,
				Label:   label,
				ShowID:  io.ShowID,
				CopyAll: copyAll,
				Watch:   watch,
				JSON:    oo.JSON,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddPeriodArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&copyAll, "copy-all", false,
		"Copy every listed report, separated by ---.")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and redraw when reports change.")
	base.AddOutputArg(cmd, oo)

	addJournalCopy(cmd)
	addJournalReset(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalCopy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy one stored report again.",
		Example: `
uavreport journal copy 3f2a
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a report id, see journal --show-id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := journal.Copy{
				Service: e.Service,
				ID:      args[0],
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addJournalReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the whole report history.",
		Example: `
uavreport journal reset --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ok, err := co.Confirm("Delete the whole report history?")
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("refusing to delete the history without --yes")
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := journal.Reset{
				Service: e.Service,
			}
			return s.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
