package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/irreligious86/Report-UAV/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where reports are stored.",
		Example: `
uavreport info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  e.Config,
				Service: e.Service,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
