package widget

import (
	"github.com/google/uuid"

	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/layout"
)

// Default preferred extents for a control that has no better answer, matching
// the conventional size of a small native widget.
const (
	DefaultWidth  = 64
	DefaultHeight = 24
)

// Box is a leaf control: a rectangle with a fixed preferred size and no
// children. It stands in for any native widget whose content size is known.
type Box struct {
	id      string
	pref    geom.Point
	bounds  geom.Rect
	visible bool
	data    any
}

// NewBox returns a visible Box with the default preferred size. An empty id
// gets a generated UUID.
func NewBox(id string) *Box {
	if id == "" {
		id = uuid.NewString()
	}
	return &Box{
		id:      id,
		pref:    geom.Pt(DefaultWidth, DefaultHeight),
		visible: true,
	}
}

// ID returns the box's stable identifier.
func (b *Box) ID() string { return b.id }

// Visible reports whether the box participates in layout.
func (b *Box) Visible() bool { return b.visible }

// SetVisible toggles layout participation.
func (b *Box) SetVisible(v bool) { b.visible = v }

// Bounds returns the current bounds in the parent's coordinate space.
func (b *Box) Bounds() geom.Rect { return b.bounds }

// SetBounds moves and resizes the box.
func (b *Box) SetBounds(bounds geom.Rect) { b.bounds = bounds }

// LayoutData returns the attached constraint record, or nil.
func (b *Box) LayoutData() any { return b.data }

// SetLayoutData attaches a constraint record for the parent's manager.
func (b *Box) SetLayoutData(data any) { b.data = data }

// PreferredSize returns the size ComputeSize reports when unhinted.
func (b *Box) PreferredSize() geom.Point { return b.pref }

// SetPreferredSize changes the box's natural size. Values below zero are
// clamped to zero.
func (b *Box) SetPreferredSize(w, h int) {
	b.pref = geom.Pt(max(w, 0), max(h, 0))
}

// ComputeSize returns the preferred size, with non-default hints returned
// verbatim for their axis. A box never fails to size itself.
func (b *Box) ComputeSize(wHint, hHint int, flushCache bool) (geom.Point, error) {
	size := b.pref
	if wHint != layout.Default {
		size.X = wHint
	}
	if hHint != layout.Default {
		size.Y = hHint
	}
	return size, nil
}

var _ layout.Control = (*Box)(nil)
