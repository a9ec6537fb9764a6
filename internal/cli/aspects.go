package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/render/aspectgraph"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// aspectsOpts holds the command-line flags for the aspects command.
type aspectsOpts struct {
	format   string // output format: "table", "dot", "svg", "png"
	output   string // output file path; required for png
	detailed bool   // show orb deltas on graph edges
}

// aspectsCommand creates the aspects command: detect planetary aspects
// and optionally render them as a graph.
func (c *CLI) aspectsCommand() *cobra.Command {
	var opts aspectsOpts

	cmd := &cobra.Command{
		Use:   "aspects [input.toml]",
		Short: "Detect planetary aspects and render the aspect network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAspects(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table (default), dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label graph edges with orb deltas")

	return cmd
}

func (c *CLI) runAspects(cmd *cobra.Command, path string, opts aspectsOpts) error {
	in, err := chart.LoadInput(path)
	if err != nil {
		return err
	}
	result, err := chart.Compute(in)
	if err != nil {
		return err
	}

	if opts.format == formatTable {
		fmt.Println(StyleTitle.Render("Aspects"))
		fmt.Println(renderAspectTable(result.Aspects))
		return nil
	}

	dot := aspectgraph.ToDOT(result.Aspects, aspectgraph.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		spin := newSpinnerWithContext(cmd.Context(), "Rendering aspect graph...")
		spin.Start()
		data, err = aspectgraph.RenderSVG(cmd.Context(), dot)
		spin.Stop()
	case formatPNG:
		spin := newSpinnerWithContext(cmd.Context(), "Rendering aspect graph...")
		spin.Start()
		data, err = aspectgraph.RenderPNG(cmd.Context(), dot)
		spin.Stop()
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (valid: table, dot, svg, png)", opts.format)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		if opts.format == formatPNG {
			return errors.New(errors.ErrCodeInvalidInput, "png output requires --output")
		}
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", opts.output)
	}
	printSuccess("Rendered aspect graph")
	printFile(opts.output)
	return nil
}
