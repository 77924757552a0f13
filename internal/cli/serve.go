package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechwright/switchyard/internal/api"
	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/place"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	paramsFile string // TOML parameter file
	noCache    bool   // disable the artifact cache
}

// serveCommand creates the serve command, which exposes a read-only HTTP
// preview of a board document.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: "localhost:8437"}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a read-only board preview over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultBoardFile
			if len(args) == 1 {
				path = args[0]
			}

			set, err := loadParams(opts.paramsFile)
			if err != nil {
				return err
			}

			doc, err := board.LoadDocument(path)
			if err != nil {
				return fmt.Errorf("load board document: %w", err)
			}

			// Serve current positions, not stale ones: run the engine over
			// the loaded document. The file is never written back.
			eng := place.New(doc, set, c.Logger)
			result, err := eng.Run(cmd.Context())
			if err != nil {
				return err
			}
			if result.Missing > 0 {
				printWarning("%d footprints not found on the board", result.Missing)
			}

			artifacts, err := newCache(opts.noCache)
			if err != nil {
				return fmt.Errorf("open artifact cache: %w", err)
			}
			defer artifacts.Close()

			printInfo("Serving %s", path)
			printDetail("http://%s/board.svg", opts.addr)

			srv := api.NewServer(doc, set, artifacts, c.Logger)
			return srv.ListenAndServe(opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.paramsFile, "params", "p", "", "TOML parameter file (built-in defaults when omitted)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render artifact cache")

	return cmd
}
