package blueprint

import (
	"strings"

	"github.com/matzehuels/sash/pkg/layout"
)

// TextOptions maps pixels to character cells. Zero values take the
// defaults: 8 pixels per column and 16 per row, roughly a terminal font's
// aspect ratio.
type TextOptions struct {
	CellWidth  int
	CellHeight int
}

// RenderText draws the flattened tree as a Unicode box canvas, parents
// behind children. Each control with room for a border gets one, with its
// ID written into the top edge; slivers too small for a border are shaded
// instead. The canvas size is the root's extent divided by the cell size.
func RenderText(root layout.Control, opts TextOptions) string {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}

	frame := root.Bounds()
	cols := ceilDiv(frame.W, opts.CellWidth)
	rows := ceilDiv(frame.H, opts.CellHeight)
	if cols <= 0 || rows <= 0 {
		return ""
	}

	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = make([]rune, cols)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, b := range Flatten(root) {
		if b.Bounds.IsEmpty() {
			continue
		}
		// Translate into the canvas frame and map pixel extents to an
		// inclusive cell range.
		x, y := b.Bounds.X-frame.X, b.Bounds.Y-frame.Y
		c0 := x / opts.CellWidth
		r0 := y / opts.CellHeight
		c1 := (x + b.Bounds.W - 1) / opts.CellWidth
		r1 := (y + b.Bounds.H - 1) / opts.CellHeight
		drawBox(canvas, b.ID, c0, r0, c1, r1)
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// drawBox paints one control onto the canvas, clamped to the canvas edges.
// The cell range is inclusive on both ends.
func drawBox(canvas [][]rune, id string, c0, r0, c1, r1 int) {
	rows, cols := len(canvas), len(canvas[0])

	put := func(r, c int, ch rune) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			canvas[r][c] = ch
		}
	}

	// Slivers have no room for a border.
	if c1-c0 < 1 || r1-r0 < 1 {
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				put(r, c, '░')
			}
		}
		return
	}

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			put(r, c, ' ')
		}
	}
	for c := c0 + 1; c < c1; c++ {
		put(r0, c, '─')
		put(r1, c, '─')
	}
	for r := r0 + 1; r < r1; r++ {
		put(r, c0, '│')
		put(r, c1, '│')
	}
	put(r0, c0, '┌')
	put(r0, c1, '┐')
	put(r1, c0, '└')
	put(r1, c1, '┘')

	// The ID sits in the top border, truncated to the inner width.
	label := []rune(id)
	if maxLen := c1 - c0 - 1; len(label) > maxLen {
		label = label[:maxLen]
	}
	for i, ch := range label {
		put(r0, c0+1+i, ch)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
