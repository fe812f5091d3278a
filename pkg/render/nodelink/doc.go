// Package nodelink renders form attachment graphs as node-link diagrams.
//
// # Overview
//
// A form container's children are positioned by attachments, and those
// attachments form a dependency graph: a control attached to a sibling can
// only be placed after the sibling. This package draws that graph with
// Graphviz, one box per control, one labeled arrow per attachment.
//
// # Usage
//
// Convert a laid-out form container to DOT, then render:
//
//	dot := nodelink.ToDOT(shell, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0) // 2x scale
//
// # Diagnostics
//
// The layout pass rejects cyclic attachment sets outright. ToDOT instead
// keeps rendering and paints the edges on a cycle red, so the diagram can be
// used to find exactly which attachments close the loop.
//
// # DOT Format
//
// The generated DOT uses top-to-bottom layout with rounded box nodes. The
// container frame appears as a dashed grey node; percentage attachments
// point at it. The source can also be saved and processed with external
// Graphviz tools.
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering, so no external binaries are required.
package nodelink
