package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sash/pkg/layout"
	"github.com/matzehuels/sash/pkg/render/nodelink"
	"github.com/matzehuels/sash/pkg/scene"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string  // output file path; empty writes to stdout
	format   string  // "dot", "svg", or "png"
	target   string  // container whose attachments to draw
	detailed bool    // annotate nodes and edges with resolved bounds
	scale    float64 // PNG supersampling factor
}

// graphCommand creates the graph command for rendering attachment graphs.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{
		format: "dot",
		scale:  2.0,
	}

	cmd := &cobra.Command{
		Use:   "graph [scene.toml]",
		Short: "Draw the form attachment graph",
		Long: `Draw the form attachment graph.

The graph command renders the constraint structure of a form container: one
node per control, one edge per attachment. Unlike render, it tolerates
circular attachments and paints the offending edges red, which makes it the
tool to reach for when a layout pass fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().StringVar(&opts.target, "target", "", "container whose attachments to draw (default: first form container)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "annotate nodes and edges with resolved bounds")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG supersampling factor")

	return cmd
}

// runGraph builds the scene, tolerating circular attachments, and renders
// the attachment graph of the target container.
func runGraph(ctx context.Context, input string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	s, err := scene.Load(input)
	if err != nil {
		return err
	}
	tree, err := s.Build()
	if err != nil {
		if tree == nil || !errors.Is(err, layout.ErrCircularAttachment) {
			return err
		}
		printWarning("Circular attachments detected; cycle edges drawn in red")
	}

	target, err := tree.FormContainer(opts.target)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	dot := nodelink.ToDOT(target, nodelink.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		sp := startSpinner(ctx, "Rendering attachment graph...")
		if opts.format == "svg" {
			data, err = nodelink.RenderSVG(dot)
		} else {
			data, err = nodelink.RenderPNG(dot, opts.scale)
		}
		sp.Stop()
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}
	prog.done(fmt.Sprintf("Rendered %s attachment graph (%d bytes)", target.ID(), len(data)))

	return writeArtifact(opts.output, data)
}
