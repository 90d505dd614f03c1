package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "uavreport",
		Short: base.Wrap80("Compose, copy and keep UAV sortie reports from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGenerate(topLevel)
	addForm(topLevel)
	addJournal(topLevel)
	addStats(topLevel)
	addLists(topLevel)
	addStreams(topLevel)
	addCounter(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
