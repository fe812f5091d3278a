// Package blueprint renders a laid-out widget tree as flat geometry.
//
// # Overview
//
// The engine's output is a set of nested bounds. This package flattens that
// tree into absolute coordinates and writes it in formats useful for
// inspecting a layout:
//
//   - SVG with depth-tinted rectangles via [RenderSVG]
//   - a deterministic JSON document via [RenderJSON]
//   - a Unicode box canvas via [RenderText], shared by the terminal preview
//
// # Usage
//
// Flatten once and reuse, or call a renderer directly on the root:
//
//	boxes := blueprint.Flatten(shell)
//	svg := blueprint.RenderSVG(shell, blueprint.WithLabels())
//	doc, err := blueprint.RenderJSON(shell)
//	fmt.Print(blueprint.RenderText(shell, blueprint.TextOptions{}))
//
// All renderers read bounds as they are; run the layout pass first.
package blueprint
