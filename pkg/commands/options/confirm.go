package options

import (
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConfirmOptions guard destructive commands.
type ConfirmOptions struct {
	Yes bool

	flag *pflag.Flag
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
	o.flag = cmd.Flags().Lookup("yes")
}

// Confirm reports whether the command may go ahead. An explicit --yes wins;
// without it the user is asked on a terminal, and anything else declines.
func (o *ConfirmOptions) Confirm(question string) (bool, error) {
	if o.Yes || (o.flag != nil && o.flag.Changed) {
		return o.Yes, nil
	}
	if !stdinIsTerminal() {
		return false, nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} [y/N]: ",
		Valid:   "{{ . | green }} [y/N]: ",
		Invalid: "{{ . | red }} [y/N]: ",
		Success: "{{ . | bold }}: ",
	}
	prompt := promptui.Prompt{
		Label:     question,
		Templates: templates,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return nil
			}
			_, err := ParseBool(strings.TrimSpace(input))
			return err
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	result = strings.TrimSpace(result)
	if result == "" {
		return false, nil
	}
	return ParseBool(result)
}

// ParseBool is strconv.ParseBool that also takes yes and no.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "1", "t", "true", "y", "yes":
		return true, nil
	case "0", "f", "false", "n", "no":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
