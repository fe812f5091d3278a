package blueprint

import (
	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/layout"
)

// Box is one control in a flattened tree: its bounds in absolute
// coordinates plus the nesting depth, with the root at depth zero.
type Box struct {
	ID        string
	Bounds    geom.Rect
	Depth     int
	Container bool
}

// Flatten walks a laid-out tree and returns every visible control as a Box.
// Child bounds are translated into the root's coordinate space. Parents
// precede their children and siblings keep declaration order, so the slice
// is already in paint order.
func Flatten(root layout.Control) []Box {
	var out []Box

	var walk func(ctl layout.Control, origin geom.Point, depth int)
	walk = func(ctl layout.Control, origin geom.Point, depth int) {
		if !ctl.Visible() {
			return
		}
		bounds := ctl.Bounds().Translate(origin.X, origin.Y)

		container, ok := ctl.(layout.Container)
		out = append(out, Box{
			ID:        ctl.ID(),
			Bounds:    bounds,
			Depth:     depth,
			Container: ok,
		})
		if !ok {
			return
		}
		for _, child := range container.Children() {
			walk(child, bounds.Origin(), depth+1)
		}
	}

	walk(root, geom.Pt(0, 0), 0)
	return out
}
