package layout

import (
	"github.com/matzehuels/sash/pkg/geom"
)

// FillLayout arranges all visible children in a single row or column,
// giving every child the same size. It is the simplest manager: it ignores
// layout data entirely.
//
// The flow-axis extent is divided evenly among the children after margins
// and spacing are subtracted; the integer remainder of that division is
// dropped, so a few trailing pixels of the client area can stay unused.
type FillLayout struct {
	// Type selects the flow axis. The default is Horizontal.
	Type Orientation

	// MarginWidth is the space left and right of the children.
	MarginWidth int
	// MarginHeight is the space above and below the children.
	MarginHeight int
	// Spacing is the space between adjacent children.
	Spacing int
}

// NewFillLayout returns a FillLayout flowing along the given axis with zero
// margins and spacing.
func NewFillLayout(orientation Orientation) *FillLayout {
	return &FillLayout{Type: orientation}
}

// Kind returns "fill".
func (l *FillLayout) Kind() string { return "fill" }

// ComputeSize measures every visible child at its natural size and returns
// the extent of one row (or column) of equally sized cells: the widest child
// times the child count plus spacing and margins. With no visible children
// the result is the margins alone.
func (l *FillLayout) ComputeSize(c Container, wHint, hHint int, flushCache bool) (geom.Point, error) {
	maxW, maxH := 0, 0
	count := 0
	for _, child := range c.Children() {
		if !child.Visible() {
			continue
		}
		size, err := child.ComputeSize(Default, Default, flushCache)
		if err != nil {
			return geom.Point{}, err
		}
		maxW = max(maxW, size.X)
		maxH = max(maxH, size.Y)
		count++
	}

	var size geom.Point
	if count > 0 {
		if l.Type == Horizontal {
			size.X = maxW*count + l.Spacing*(count-1)
			size.Y = maxH
		} else {
			size.X = maxW
			size.Y = maxH*count + l.Spacing*(count-1)
		}
	}
	size.X += 2 * l.MarginWidth
	size.Y += 2 * l.MarginHeight
	return overrideHints(size, wHint, hHint), nil
}

// Layout divides the client area evenly among the visible children. Every
// child receives an identical flow-axis extent and the full cross-axis
// extent inside the margins.
func (l *FillLayout) Layout(c Container, flushCache bool) error {
	var visible []Control
	for _, child := range c.Children() {
		if child.Visible() {
			visible = append(visible, child)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	client := c.ClientArea()
	n := len(visible)

	if l.Type == Horizontal {
		avail := client.W - 2*l.MarginWidth - l.Spacing*(n-1)
		cellW := max(avail/n, 0)
		cellH := max(client.H-2*l.MarginHeight, 0)
		x := client.X + l.MarginWidth
		y := client.Y + l.MarginHeight
		for _, child := range visible {
			child.SetBounds(geom.Rect{X: x, Y: y, W: cellW, H: cellH})
			x += cellW + l.Spacing
		}
		return nil
	}

	avail := client.H - 2*l.MarginHeight - l.Spacing*(n-1)
	cellH := max(avail/n, 0)
	cellW := max(client.W-2*l.MarginWidth, 0)
	x := client.X + l.MarginWidth
	y := client.Y + l.MarginHeight
	for _, child := range visible {
		child.SetBounds(geom.Rect{X: x, Y: y, W: cellW, H: cellH})
		y += cellH + l.Spacing
	}
	return nil
}
