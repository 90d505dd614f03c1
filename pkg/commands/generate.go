package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/commands/options"
	"github.com/irreligious86/Report-UAV/pkg/runner/generate"
)

func addGenerate(topLevel *cobra.Command) {
	ro := &options.ReportOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   base.Wrap80("Compose a report, store it and copy it to the clipboard."),
		Example: `
uavreport generate --coords="12345 67890" --impact=10:15 -r Уражено
uavreport generate -n 3 -d "Вампір" --easting=12345 --northing=67890 --stream="Альфа"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			s := generate.Generate{
				Service: e.Service,
				Source:  e.Source,
				Crew:    e.Config.Crew,
				Apply: func(f *app.Form) error {
					return ro.Apply(f, e.Service.Loc())
				},
				JSON: oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddReportArgs(cmd, ro)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
