package blueprint

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/sash/pkg/layout"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels  bool
	scale   float64
	palette []string
}

// WithLabels draws each control's ID centered in its rectangle.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithScale multiplies every coordinate by the given factor. Values at or
// below zero are ignored.
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPalette replaces the depth tint cycle. Colors are any SVG fill
// expressions; depth n uses colors[n mod len].
func WithPalette(colors ...string) SVGOption {
	return func(r *svgRenderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// defaultPalette tints nesting levels from frame blue to pale fills, one
// shade per depth.
var defaultPalette = []string{"#dbe9f6", "#c3dbee", "#a8cbe4", "#8cbada", "#71a9d0"}

const svgStroke = "#1b2a41"

// RenderSVG draws the flattened tree as nested rectangles, one per visible
// control, tinted by depth. The result is a complete standalone SVG
// document.
func RenderSVG(root layout.Control, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1, palette: defaultPalette}
	for _, opt := range opts {
		opt(&r)
	}

	boxes := Flatten(root)
	frame := root.Bounds()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		float64(frame.X)*r.scale, float64(frame.Y)*r.scale,
		float64(frame.W)*r.scale, float64(frame.H)*r.scale,
		float64(frame.W)*r.scale, float64(frame.H)*r.scale)

	for _, b := range boxes {
		if b.Bounds.IsEmpty() {
			continue
		}
		fmt.Fprintf(&buf, `  <rect id="box-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			escape(b.ID),
			float64(b.Bounds.X)*r.scale, float64(b.Bounds.Y)*r.scale,
			float64(b.Bounds.W)*r.scale, float64(b.Bounds.H)*r.scale,
			r.palette[b.Depth%len(r.palette)], svgStroke)
	}

	if r.labels {
		for _, b := range boxes {
			if b.Bounds.IsEmpty() {
				continue
			}
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="monospace" font-size="%.1f" fill="%s">%s</text>`+"\n",
				(float64(b.Bounds.X)+float64(b.Bounds.W)/2)*r.scale,
				(float64(b.Bounds.Y)+float64(b.Bounds.H)/2)*r.scale,
				11*r.scale, svgStroke, escape(b.ID))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string { return escaper.Replace(s) }
