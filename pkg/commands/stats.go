package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/commands/options"
	"github.com/irreligious86/Report-UAV/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}
	text := false
	copySummary := false
	calendar := false

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"summary"},
		Short:   base.Wrap80("Summarize sorties, hits and losses for a period."),
		Example: `
uavreport stats
uavreport stats --last=1w --copy
uavreport stats --from=2024-05-01 --calendar
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
			s := stats.Stats{
				Service:  e.Service,
				Filter:   filter,
				Label:    label,
				Text:     text,
				Copy:     copySummary,
				Calendar: calendar,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPeriodArgs(cmd, po)
	cmd.Flags().BoolVar(&text, "text", false, "Print the plain summary text.")
	cmd.Flags().BoolVar(&copySummary, "copy", false, "Copy the plain summary text.")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Show sorties per day on a month calendar.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
