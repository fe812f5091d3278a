package pipeline

import (
	"fmt"

	"github.com/matzehuels/sash/pkg/render/blueprint"
	"github.com/matzehuels/sash/pkg/render/nodelink"
	"github.com/matzehuels/sash/pkg/scene"
)

// Render generates output artifacts in the requested formats.
func (r *Runner) Render(tree *scene.Tree, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = blueprint.RenderSVG(tree.Shell, svgOptions(opts)...)
		case FormatJSON:
			data, err = blueprint.RenderJSON(tree.Shell)
		case FormatText:
			text := blueprint.RenderText(tree.Shell, blueprint.TextOptions{
				CellWidth:  opts.CellWidth,
				CellHeight: opts.CellHeight,
			})
			data = []byte(text)
		case FormatDOT:
			data, err = renderDOT(tree, opts)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// svgOptions translates pipeline options into blueprint renderer options.
func svgOptions(opts Options) []blueprint.SVGOption {
	var svgOpts []blueprint.SVGOption
	if opts.Labels {
		svgOpts = append(svgOpts, blueprint.WithLabels())
	}
	if opts.Scale > 0 {
		svgOpts = append(svgOpts, blueprint.WithScale(opts.Scale))
	}
	return svgOpts
}

// renderDOT generates the attachment graph for the DOT target container.
func renderDOT(tree *scene.Tree, opts Options) ([]byte, error) {
	target, err := tree.FormContainer(opts.Target)
	if err != nil {
		return nil, err
	}
	dot := nodelink.ToDOT(target, nodelink.Options{Detailed: opts.Detailed})
	return []byte(dot), nil
}
