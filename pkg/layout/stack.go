package layout

import (
	"github.com/matzehuels/sash/pkg/geom"
)

// parkedBounds is where StackLayout puts everything that is not on top:
// zero-size and just outside the client area. The abstract control contract
// has no visibility toggle the layout could drive, so off-area zero bounds
// stand in for "hidden".
var parkedBounds = geom.Rect{X: -1, Y: -1}

// StackLayout shows exactly one child, TopControl, stretched over the full
// client area inside the margins; every other child is parked out of sight.
//
// The layout does not watch TopControl: after reassigning it, run the
// container's layout pass again to make the change visible.
type StackLayout struct {
	// MarginWidth is the space left and right of the top control.
	MarginWidth int
	// MarginHeight is the space above and below the top control.
	MarginHeight int

	// TopControl is the child to show. When nil, or not a child of the
	// container, every child is parked and ComputeSize reports the margins
	// alone.
	TopControl Control
}

// NewStackLayout returns a StackLayout with zero margins and no top control.
func NewStackLayout() *StackLayout {
	return &StackLayout{}
}

// Kind returns "stack".
func (l *StackLayout) Kind() string { return "stack" }

// top returns TopControl if it is one of the container's children.
func (l *StackLayout) top(c Container) Control {
	if l.TopControl == nil {
		return nil
	}
	for _, child := range c.Children() {
		if child.ID() == l.TopControl.ID() {
			return child
		}
	}
	return nil
}

// ComputeSize returns the top control's preferred size plus margins, or the
// margins alone when no top control is set.
func (l *StackLayout) ComputeSize(c Container, wHint, hHint int, flushCache bool) (geom.Point, error) {
	size := geom.Pt(2*l.MarginWidth, 2*l.MarginHeight)
	if top := l.top(c); top != nil {
		pref, err := top.ComputeSize(Default, Default, flushCache)
		if err != nil {
			return geom.Point{}, err
		}
		size.X += pref.X
		size.Y += pref.Y
	}
	return overrideHints(size, wHint, hHint), nil
}

// Layout stretches the top control over the client area inside the margins
// and parks every other child at zero size off the area.
func (l *StackLayout) Layout(c Container, flushCache bool) error {
	top := l.top(c)
	fill := c.ClientArea().InsetBy(l.MarginWidth, l.MarginHeight, l.MarginWidth, l.MarginHeight)

	for _, child := range c.Children() {
		if top != nil && child.ID() == top.ID() {
			child.SetBounds(fill)
			continue
		}
		child.SetBounds(parkedBounds)
	}
	return nil
}
