package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sash/pkg/layout"
)

// Options configures attachment-graph rendering.
type Options struct {
	// Detailed includes resolved bounds in node labels and attachment
	// offsets in edge labels. When false, nodes show only the control ID
	// and edges only the attached side.
	Detailed bool
}

// edgeInfo is one attachment drawn as a DOT edge, pointing from the
// attached control to what it depends on.
type edgeInfo struct {
	from, to string
	label    string
	cyclic   bool
}

// ToDOT converts a form container's attachment graph to Graphviz DOT.
// Every visible child becomes a node; control attachments become edges to
// their targets and percentage attachments become edges to the container
// frame, labeled by the attached side. The resulting DOT string can be
// rendered with [RenderSVG] or [RenderPNG].
//
// Edges that participate in a dependency cycle are drawn red instead of
// failing, so the diagram stays usable for debugging the exact scenes the
// layout pass rejects.
func ToDOT(c layout.Container, opts Options) string {
	frameID := c.ID()

	var children []layout.Control
	ids := make(map[string]bool)
	for _, child := range c.Children() {
		if !child.Visible() {
			continue
		}
		children = append(children, child)
		ids[child.ID()] = true
	}

	var edges []edgeInfo
	adj := make(map[string][]string)
	externals := make(map[string]bool)

	for _, child := range children {
		for _, sa := range attachmentsOf(child) {
			switch a := sa.att.(type) {
			case layout.PercentAttachment:
				edges = append(edges, edgeInfo{
					from:  child.ID(),
					to:    frameID,
					label: percentLabel(sa.side, a, opts.Detailed),
				})
			case layout.ControlAttachment:
				if a.Target == nil {
					continue
				}
				target := a.Target.ID()
				if !ids[target] && target != frameID {
					externals[target] = true
				}
				edges = append(edges, edgeInfo{
					from:  child.ID(),
					to:    target,
					label: controlLabel(sa.side, a, opts.Detailed),
				})
				adj[child.ID()] = append(adj[child.ID()], target)
			}
		}
	}

	for i := range edges {
		if len(adj[edges[i].to]) == 0 {
			continue
		}
		edges[i].cyclic = reaches(adj, edges[i].to, edges[i].from)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph attachments {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
		frameID, frameLabel(c, opts.Detailed))
	for _, child := range children {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", child.ID(), nodeLabel(child, opts.Detailed))
	}
	for _, id := range slices.Sorted(maps.Keys(externals)) {
		fmt.Fprintf(&buf, "  %q [style=\"rounded,dashed\"];\n", id)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		attrs := fmt.Sprintf("label=%q", e.label)
		if e.cyclic {
			attrs += ", color=red, fontcolor=red"
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.from, e.to, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// sideAttachment pairs an attachment with the side of its owner it pins.
type sideAttachment struct {
	side string
	att  layout.Attachment
}

// attachmentsOf reads a child's form attachments in left, top, right,
// bottom order. Controls without form data contribute nothing.
func attachmentsOf(ctl layout.Control) []sideAttachment {
	var data layout.FormData
	switch d := ctl.LayoutData().(type) {
	case *layout.FormData:
		if d == nil {
			return nil
		}
		data = *d
	case layout.FormData:
		data = d
	default:
		return nil
	}

	var out []sideAttachment
	for _, sa := range []sideAttachment{
		{"left", normalize(data.Left)},
		{"top", normalize(data.Top)},
		{"right", normalize(data.Right)},
		{"bottom", normalize(data.Bottom)},
	} {
		if sa.att != nil {
			out = append(out, sa)
		}
	}
	return out
}

// normalize flattens pointer attachments to their value form so ToDOT's
// type switch sees a single representation per kind.
func normalize(att layout.Attachment) layout.Attachment {
	switch a := att.(type) {
	case *layout.PercentAttachment:
		if a == nil {
			return nil
		}
		return *a
	case *layout.ControlAttachment:
		if a == nil {
			return nil
		}
		return *a
	}
	return att
}

func percentLabel(side string, a layout.PercentAttachment, detailed bool) string {
	den := a.Denominator
	if den == 0 {
		den = 100
	}
	label := fmt.Sprintf("%s %d/%d", side, a.Numerator, den)
	if den == 100 {
		label = fmt.Sprintf("%s %d%%", side, a.Numerator)
	}
	if detailed && a.Offset != 0 {
		label += fmt.Sprintf(" %+d", a.Offset)
	}
	return label
}

func controlLabel(side string, a layout.ControlAttachment, detailed bool) string {
	label := side
	if a.Align != layout.EdgeDefault {
		label += " at " + a.Align.String()
	}
	if detailed && a.Offset != 0 {
		label += fmt.Sprintf(" %+d", a.Offset)
	}
	return label
}

func frameLabel(c layout.Container, detailed bool) string {
	if !detailed {
		return c.ID()
	}
	return c.ID() + "\n" + c.ClientArea().String()
}

func nodeLabel(ctl layout.Control, detailed bool) string {
	if !detailed {
		return ctl.ID()
	}
	return ctl.ID() + "\n" + ctl.Bounds().String()
}

// reaches reports whether to is reachable from from over the control
// attachment edges. An edge whose target reaches back to its source sits on
// a cycle.
func reaches(adj map[string][]string, from, to string) bool {
	seen := make(map[string]bool)
	var dfs func(id string) bool
	dfs = func(id string) bool {
		if id == to {
			return true
		}
		if seen[id] {
			return false
		}
		seen[id] = true
		for _, next := range adj[id] {
			if dfs(next) {
				return true
			}
		}
		return false
	}
	return dfs(from)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz. A scale of 2.0
// produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	if scale > 0 && scale != 1 {
		dot = withDPI(dot, 96*scale)
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// withDPI injects a dpi graph attribute right after the opening brace.
// Graphviz renders PNGs at 96 dpi by default; raising it scales the raster
// output without touching the layout.
func withDPI(dot string, dpi float64) string {
	i := strings.Index(dot, "{")
	if i < 0 {
		return dot
	}
	return dot[:i+1] + fmt.Sprintf("\n  dpi=%.0f;", dpi) + dot[i+1:]
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg tag to a zero-origin viewBox with
// explicit pixel dimensions, which embeds more predictably in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
