package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mechwright/switchyard/pkg/render/matrix"
)

// matrixOpts holds the command-line flags for the matrix command.
type matrixOpts struct {
	output   string // output file path
	format   string // "svg" or "dot"
	detailed bool   // include grid coordinates in labels
}

// matrixCommand creates the matrix command, which renders the switch-to-diode
// wiring as a node-link diagram.
func (c *CLI) matrixCommand() *cobra.Command {
	opts := matrixOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Render the switch-to-diode wiring diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "svg" && opts.format != "dot" {
				return fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", opts.format)
			}

			dot := matrix.ToDOT(matrix.Options{Detailed: opts.detailed})

			output := opts.output
			if output == "" {
				output = "matrix." + opts.format
			}

			var data []byte
			if opts.format == "dot" {
				data = []byte(dot)
			} else {
				spinner := newSpinner("Rendering matrix diagram")
				spinner.Start()
				svg, err := matrix.RenderSVG(cmd.Context(), dot)
				if err != nil {
					spinner.StopWithError("Matrix render failed")
					return err
				}
				spinner.Stop()
				data = svg
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write diagram: %w", err)
			}

			printSuccess("Rendered %s diagram", strings.ToUpper(opts.format))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to matrix.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include grid coordinates in labels")

	return cmd
}
