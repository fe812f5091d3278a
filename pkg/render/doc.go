// Package render provides visual output for laid-out widget trees.
//
// # Overview
//
// A layout pass assigns every control a rectangle; this package turns those
// rectangles into something a person can look at. It provides two renderers
// as subpackages:
//
//   - Blueprint wireframes (in [blueprint] subpackage)
//   - Attachment graphs (in [nodelink] subpackage)
//
// # Blueprint Wireframes
//
// The [blueprint] subpackage draws the resolved geometry as a top-down
// wireframe: every visible control becomes a labeled box at its absolute
// position. Output formats are SVG, terminal text, and JSON.
//
//	svg := blueprint.RenderSVG(shell, blueprint.SVGOptions{})
//	txt := blueprint.RenderText(shell, blueprint.TextOptions{})
//
// # Attachment Graphs
//
// The [nodelink] subpackage renders the edge attachments of a form-managed
// container as a directed graph using Graphviz. Controls appear as boxes,
// attachments as labeled arrows.
//
//	dot := nodelink.ToDOT(panel, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [blueprint]: github.com/matzehuels/sash/pkg/render/blueprint
// [nodelink]: github.com/matzehuels/sash/pkg/render/nodelink
package render
