package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sash/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// These options control the layout pass and the exported artifacts.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "svg", "json", "text", "dot"
	width      int      // shell width override in pixels
	height     int      // shell height override in pixels
	labels     bool     // draw control IDs in SVG output
	scale      float64  // scale factor for SVG coordinates
	flush      bool     // drop memoized grid sizes before the pass
	detailed   bool     // annotate DOT edges with resolved bounds
	target     string   // container for DOT output
	cellWidth  int      // pixels per text cell column
	cellHeight int      // pixels per text cell row
}

// renderCommand creates the render command for laying out and exporting
// scenes.
//
// Default settings:
//   - format: svg
//   - output: derived from the input file name
//   - shell size: whatever the manifest declares
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Compute a scene layout and export it",
		Long: `Compute a scene layout and export it.

The render command loads a TOML scene manifest, runs one full layout pass
over the widget tree, and writes the resolved geometry in one or more
formats: svg (a blueprint drawing), json (flattened boxes), text (a terminal
canvas), or dot (the form attachment graph).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, text, dot (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "override the shell width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "override the shell height")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw control IDs in SVG output")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "scale factor for SVG coordinates")
	cmd.Flags().BoolVar(&opts.flush, "flush", false, "drop memoized grid sizes before the pass")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "annotate DOT edges with resolved bounds")
	cmd.Flags().StringVar(&opts.target, "target", "", "container for DOT output (default: first form container)")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", 0, "pixels per text cell column")
	cmd.Flags().IntVar(&opts.cellHeight, "cell-height", 0, "pixels per text cell row")

	return cmd
}

// runRender executes the pipeline and writes the requested artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Path:       input,
		Width:      opts.width,
		Height:     opts.height,
		FlushCache: opts.flush,
		Formats:    opts.formats,
		Labels:     opts.labels,
		Scale:      opts.scale,
		CellWidth:  opts.cellWidth,
		CellHeight: opts.cellHeight,
		Detailed:   opts.detailed,
		Target:     opts.target,
	})
	if err != nil {
		return err
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.formats,
		input:     input,
		output:    opts.output,
	}); err != nil {
		return err
	}

	stats := result.Stats
	printStats(stats.ControlCount, stats.LoadTime+stats.LayoutTime+stats.RenderTime)
	printNewline()
	printNextStep("Preview in terminal", appName+" preview "+input)
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped too, so derived names do
// not stack suffixes.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes one file per requested format. A single format goes
// to the output path verbatim (or a path derived from the input when empty);
// multiple formats land at base.format.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 {
		format := p.formats[0]
		path := p.output
		if path == "" {
			path = basePath("", p.input) + "." + format
		}
		return writeArtifact(path, p.artifacts[format])
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		if err := writeArtifact(base+"."+format, p.artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact writes data to path, or to stdout when path is empty.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close so stdout can stand in
// for a file.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. An empty path selects
// stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
