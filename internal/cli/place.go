package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/params"
	"github.com/mechwright/switchyard/pkg/place"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	paramsFile string // TOML parameter file (defaults used when empty)
	output     string // output path (defaults to in-place)
	dryRun     bool   // compute without writing the document back
}

// placeCommand creates the place command, which computes every switch and
// diode position plus the board outline and writes them onto the document.
func (c *CLI) placeCommand() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place [file]",
		Short: "Place footprints and draw the board outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultBoardFile
			if len(args) == 1 {
				path = args[0]
			}
			return c.runPlace(cmd, path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.paramsFile, "params", "p", "", "TOML parameter file (built-in defaults when omitted)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the placed document to a different path")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compute placements without saving")

	return cmd
}

func (c *CLI) runPlace(cmd *cobra.Command, path string, opts *placeOpts) error {
	set, err := loadParams(opts.paramsFile)
	if err != nil {
		return err
	}

	doc, err := board.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("load board document: %w", err)
	}

	prog := newProgress(c.Logger)
	eng := place.New(doc, set, c.Logger)
	result, err := eng.Run(cmd.Context())
	if err != nil {
		var missing *params.MissingParameterError
		if errors.As(err, &missing) {
			printError("Parameter %s is not defined", missing.Key)
			return err
		}
		return err
	}
	prog.done(fmt.Sprintf("Placed %d footprints", result.Placed))

	if result.Missing > 0 {
		printWarning("%d footprints not found on the board", result.Missing)
	}

	if opts.dryRun {
		printInfo("Dry run, document not saved")
		printPlacementStats(result.Placed, result.Missing, result.Border.Width(), result.Border.Height())
		return nil
	}

	if opts.output != "" {
		doc.SetPath(opts.output)
	}
	if err := doc.Save(); err != nil {
		return fmt.Errorf("save board document: %w", err)
	}

	printSuccess("Board placed")
	printPlacementStats(result.Placed, result.Missing, result.Border.Width(), result.Border.Height())
	printFile(doc.Path())
	printNextStep("Preview in a browser", fmt.Sprintf("switchyard serve %s", doc.Path()))
	return nil
}

// loadParams reads the parameter file, or returns the built-in defaults
// when no file is given.
func loadParams(path string) (params.Set, error) {
	if path == "" {
		return params.Defaults(), nil
	}
	set, err := params.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load parameters: %w", err)
	}
	return set, nil
}
