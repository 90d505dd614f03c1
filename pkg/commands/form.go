package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/runner/form"
)

func addForm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "form",
		Aliases: []string{"ui"},
		Short:   base.Wrap80("Fill in a report interactively."),
		Long: `Fill in a report interactively.

tab, shift+tab, up and down move between fields. Option fields cycle with left
and right; ctrl+e switches an option field to free text and back. Enter
generates the report, esc quits.`,
		Example: `
uavreport form
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			f := form.Form{
				Service: e.Service,
				Source:  e.Source,
				Crew:    e.Config.Crew,
			}
			return f.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
