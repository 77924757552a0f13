package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mechwright/switchyard/pkg/params"
)

// paramsOpts holds the command-line flags for the params command.
type paramsOpts struct {
	paramsFile  string // TOML parameter file to show instead of defaults
	output      string // write the set as a TOML file
	interactive bool   // browse parameters in a TUI
}

// paramsCommand creates the params command for inspecting and exporting the
// placement parameter set.
func (c *CLI) paramsCommand() *cobra.Command {
	var opts paramsOpts

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show or export placement parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadParams(opts.paramsFile)
			if err != nil {
				return err
			}
			if err := set.Validate(); err != nil {
				printWarning("Parameter set is incomplete: %v", err)
			}

			if opts.output != "" {
				if err := writeParamsTOML(opts.output, set); err != nil {
					return err
				}
				printSuccess("Wrote parameter file")
				printFile(opts.output)
				return nil
			}

			if opts.interactive {
				return runParamsBrowser(set)
			}

			for _, key := range params.Required {
				printKeyValue(key, set[key].String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.paramsFile, "params", "p", "", "TOML parameter file (built-in defaults when omitted)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the parameter set as TOML")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse parameters interactively")

	return cmd
}

// runParamsBrowser opens the interactive parameter list and prints the
// selected parameter, if any.
func runParamsBrowser(set params.Set) error {
	model, err := tea.NewProgram(NewParamListModel(set)).Run()
	if err != nil {
		return fmt.Errorf("run parameter browser: %w", err)
	}

	final, ok := model.(ParamListModel)
	if !ok || final.Selected == "" {
		return nil
	}

	printNewline()
	printKeyValue(final.Selected, set[final.Selected].String())
	if help := paramHelp[final.Selected]; help != "" {
		printDetail("%s", help)
	}
	return nil
}

// writeParamsTOML exports a parameter set as a TOML file. Values keep their
// units as inline tables so the file round-trips through [params.Load].
func writeParamsTOML(path string, set params.Set) error {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		q := set[key]
		fmt.Fprintf(&b, "%s = { value = %g, unit = %q }\n", key, q.Value, q.Unit)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
