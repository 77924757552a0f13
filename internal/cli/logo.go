package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mechwright/switchyard/pkg/render/logo"
)

// defaultLogoPattern is a 3x5 "S" in dots.
var defaultLogoPattern = []string{
	"###",
	"#  ",
	"###",
	"  #",
	"###",
}

// logoOpts holds the command-line flags for the logo command.
type logoOpts struct {
	output  string  // output SVG path
	pitch   float64 // dot grid pitch
	radius  float64 // seed dot radius
	factors string  // comma-separated shrink factors, one per generation
}

// logoCommand creates the logo command, which renders the project mark as an
// SVG built from a dot pattern decorated with shrinking corner circles.
func (c *CLI) logoCommand() *cobra.Command {
	opts := logoOpts{
		output:  "logo.svg",
		pitch:   10,
		radius:  4,
		factors: "1.6,1.6",
	}

	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Render the project logo as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factors, err := parseFactors(opts.factors)
			if err != nil {
				return err
			}

			seeds := logo.FromPattern(defaultLogoPattern, opts.pitch, opts.radius)
			circles := logo.Grow(seeds, opts.pitch, factors)

			width := opts.pitch * float64(len(defaultLogoPattern[0])+1)
			height := opts.pitch * float64(len(defaultLogoPattern)+1)
			svg := logo.RenderSVG(circles, width, height)

			if err := os.WriteFile(opts.output, svg, 0o644); err != nil {
				return fmt.Errorf("write logo: %w", err)
			}

			printSuccess("Rendered logo with %d circles", len(circles))
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output SVG file")
	cmd.Flags().Float64Var(&opts.pitch, "pitch", opts.pitch, "dot grid pitch")
	cmd.Flags().Float64Var(&opts.radius, "radius", opts.radius, "seed dot radius")
	cmd.Flags().StringVar(&opts.factors, "factors", opts.factors, "comma-separated shrink factor per generation")

	return cmd
}

// parseFactors parses the --factors flag into a slice of shrink factors.
func parseFactors(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	factors := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid shrink factor: %q", p)
		}
		factors = append(factors, f)
	}
	return factors, nil
}
