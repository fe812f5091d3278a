package layout

import (
	"github.com/matzehuels/sash/pkg/geom"
)

// Default is the sentinel hint value meaning "no hint / natural size".
// It is accepted by every width or height hint field and parameter.
const Default = -1

// Orientation selects the flow axis of FillLayout and RowLayout.
type Orientation int

const (
	// Horizontal arranges children left to right.
	Horizontal Orientation = iota
	// Vertical arranges children top to bottom.
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Align positions a child within its grid cell, independently per axis.
type Align int

const (
	// Beginning places the child at the cell start (left or top).
	Beginning Align = iota
	// Center centers the child within the cell.
	Center
	// End places the child at the cell end (right or bottom).
	End
	// Fill stretches the child to the full cell extent.
	Fill
)

// String returns the lower-case alignment name.
func (a Align) String() string {
	switch a {
	case Center:
		return "center"
	case End:
		return "end"
	case Fill:
		return "fill"
	default:
		return "beginning"
	}
}

// Control is the minimal contract a layout manager needs from a child.
// Widget implementations live outside this package; the engine only reads
// visibility, layout data, and preferred sizes, and writes bounds.
type Control interface {
	// ID returns a non-empty identifier unique within the control tree.
	ID() string

	// Visible reports whether the control participates in layout.
	// Invisible controls are skipped entirely: no space is reserved.
	Visible() bool

	// Bounds returns the control's current bounds in its parent's
	// coordinate space.
	Bounds() geom.Rect

	// SetBounds moves and resizes the control within its parent.
	SetBounds(bounds geom.Rect)

	// LayoutData returns the constraint record attached to this control,
	// or nil. The record's type must match the parent's manager (GridData
	// under a GridLayout and so on); anything else falls back to defaults.
	LayoutData() any

	// SetLayoutData attaches a constraint record.
	SetLayoutData(data any)

	// ComputeSize returns the control's preferred size. A non-Default hint
	// is returned verbatim for that axis. Composite controls delegate to
	// their own manager, which may fail (see ErrCircularAttachment); plain
	// controls never return an error.
	ComputeSize(wHint, hHint int, flushCache bool) (geom.Point, error)
}

// Container is the contract a layout manager needs from the composite it
// lays out: the ordered child list and the interior space available.
type Container interface {
	Control

	// Children returns the container's children in a stable order. List
	// order is significant: grid cells and flow positions are assigned in
	// this order.
	Children() []Control

	// ClientArea returns the interior rectangle available for child
	// placement, in the container's local coordinate space.
	ClientArea() geom.Rect
}

// Layout is the capability interface every manager implements. A manager
// instance is owned by exactly one container.
type Layout interface {
	// Kind returns the manager's short name ("fill", "row", "grid",
	// "form", "stack"), used for diagnostics and serialized scenes.
	Kind() string

	// ComputeSize returns the container's preferred size given optional
	// hints. It must not mutate any child's bounds. flushCache discards
	// memoized state before computing.
	ComputeSize(c Container, wHint, hHint int, flushCache bool) (geom.Point, error)

	// Layout positions and sizes all visible children within the
	// container's client area. flushCache forces recomputation of any
	// memoized state first.
	Layout(c Container, flushCache bool) error
}

// overrideHints applies the convention that a non-Default hint is
// authoritative for its axis.
func overrideHints(size geom.Point, wHint, hHint int) geom.Point {
	if wHint != Default {
		size.X = wHint
	}
	if hHint != Default {
		size.Y = hHint
	}
	return size
}

// sideMargins resolves the effective per-side margins from a symmetric
// width/height pair and optional per-side overrides. A nonzero per-side
// value overrides the symmetric one for that side.
func sideMargins(marginWidth, marginHeight, left, top, right, bottom int) (l, t, r, b int) {
	l, t, r, b = marginWidth, marginHeight, marginWidth, marginHeight
	if left != 0 {
		l = left
	}
	if top != 0 {
		t = top
	}
	if right != 0 {
		r = right
	}
	if bottom != 0 {
		b = bottom
	}
	return l, t, r, b
}
