package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/place"
)

// initCommand creates the init command, which writes a fresh board document
// seeded with every switch and diode footprint the layout expects.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a board document with the expected footprints",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultBoardFile
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			doc := board.NewDocument(path)
			for _, ref := range place.Refs() {
				doc.AddFootprint(ref)
			}
			if err := doc.Save(); err != nil {
				return fmt.Errorf("save board document: %w", err)
			}

			printSuccess("Created board with %d footprints", len(place.Refs()))
			printFile(path)
			printNextStep("Place footprints", fmt.Sprintf("switchyard place %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing board document")

	return cmd
}
