package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/irreligious86/Report-UAV/pkg/commands/options"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	runner "github.com/irreligious86/Report-UAV/pkg/runner/lists"
)

func categoryNames() []string {
	cs := lists.Categories()
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, string(c))
	}
	return names
}

func categoryHelp() string {
	b := strings.Builder{}
	b.WriteString("Categories:\n")
	for _, c := range lists.Categories() {
		b.WriteString(fmt.Sprintf("  %s: %s\n", c, c.Label()))
	}
	return b.String()
}

func addLists(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: base.Wrap80("Show the option lists of the form: base lists merged with local changes."),
		Long:  "Show the option lists of the form.\n\n" + categoryHelp(),
		Example: `
uavreport lists
uavreport lists --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			s := runner.Show{
				Service: e.Service,
				Source:  e.Source,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)

	addListsAdd(cmd)
	addListsSet(cmd)
	addListsDefaults(cmd)
	addListsReset(cmd)

	topLevel.AddCommand(cmd)
}

func addListsAdd(topLevel *cobra.Command) {
	var category lists.Category
	value := ""

	cmd := &cobra.Command{
		Use:   "add <category> <value>",
		Short: "Add a value to a list.",
		Long:  "Add a value to a list. Values already present are left alone.\n\n" + categoryHelp(),
		Example: `
uavreport lists add drones "Вампір 2"
uavreport lists add results Знищено
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a category and a value")
			}
			var err error
			if category, err = lists.ParseCategory(args[0]); err != nil {
				return err
			}
			value = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: completeCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := runner.Add{
				Service:  e.Service,
				Source:   e.Source,
				Category: category,
				Value:    value,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addListsSet(topLevel *cobra.Command) {
	var category lists.Category

	cmd := &cobra.Command{
		Use:   "set <category> [values...]",
		Short: "Replace the local values of a list.",
		Long:  "Replace the local values of a list. Base values always stay.\n\n" + categoryHelp(),
		Example: `
uavreport lists set mgrsPrefixes "37U DQ" "37U DP"
uavreport lists set ammo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a category")
			}
			var err error
			category, err = lists.ParseCategory(args[0])
			return err
		},
		ValidArgsFunction: completeCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := runner.Set{
				Service:  e.Service,
				Category: category,
				Values:   args[1:],
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addListsDefaults(topLevel *cobra.Command) {
	d := lists.Defaults{}

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Set the values the form starts with.",
		Example: `
uavreport lists defaults --mgrs="37U DQ" --mission=Удар --result=Уражено
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := runner.Defaults{
				Service:  e.Service,
				Defaults: d,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&d.MgrsPrefix, "mgrs", "", "Default MGRS prefix.")
	cmd.Flags().StringVarP(&d.MissionType, "mission", "m", "", "Default mission type.")
	cmd.Flags().StringVarP(&d.Result, "result", "r", "", "Default result.")

	topLevel.AddCommand(cmd)
}

func addListsReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every local list change and default.",
		Example: `
uavreport lists reset --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ok, err := co.Confirm("Drop every local list change?")
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("refusing to drop the list changes without --yes")
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := runner.Reset{
				Service: e.Service,
			}
			return s.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func completeCategory(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return categoryNames(), cobra.ShellCompDirectiveNoFileComp
}
