package widget

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/layout"
	"github.com/matzehuels/sash/pkg/observability"
)

// Composite is a container control: an ordered child list plus at most one
// layout manager. Children are positioned in the composite's local
// coordinate space, whose origin is the top-left corner of the client area.
//
// Composite tracks a dirty flag covering everything that invalidates
// memoized sizing: child list mutations, size changes, and manager
// reassignment. A dirty composite flushes the manager's cache on its next
// pass without callers having to remember to.
type Composite struct {
	id      string
	visible bool
	bounds  geom.Rect
	data    any

	children []layout.Control
	manager  layout.Layout
	dirty    bool
}

// NewComposite returns a visible, empty Composite with no manager. An empty
// id gets a generated UUID.
func NewComposite(id string) *Composite {
	if id == "" {
		id = uuid.NewString()
	}
	return &Composite{id: id, visible: true}
}

// ID returns the composite's stable identifier.
func (c *Composite) ID() string { return c.id }

// Visible reports whether the composite participates in its parent's layout.
func (c *Composite) Visible() bool { return c.visible }

// SetVisible toggles layout participation.
func (c *Composite) SetVisible(v bool) { c.visible = v }

// Bounds returns the current bounds in the parent's coordinate space.
func (c *Composite) Bounds() geom.Rect { return c.bounds }

// SetBounds moves and resizes the composite. A size change marks the
// composite dirty; moving it does not, since child placement is relative to
// the client area.
func (c *Composite) SetBounds(bounds geom.Rect) {
	if bounds.W != c.bounds.W || bounds.H != c.bounds.H {
		c.dirty = true
	}
	c.bounds = bounds
}

// LayoutData returns the attached constraint record, or nil.
func (c *Composite) LayoutData() any { return c.data }

// SetLayoutData attaches a constraint record for the parent's manager.
func (c *Composite) SetLayoutData(data any) { c.data = data }

// Children returns the child list in insertion order. The slice is a copy;
// mutate the tree through Add and Remove.
func (c *Composite) Children() []layout.Control {
	out := make([]layout.Control, len(c.children))
	copy(out, c.children)
	return out
}

// ClientArea returns the interior rectangle in local coordinates: the full
// extent of the composite at origin (0, 0).
func (c *Composite) ClientArea() geom.Rect {
	return geom.RectOf(0, 0, c.bounds.W, c.bounds.H)
}

// Add appends children to the list and marks the composite dirty. Order is
// significant: managers assign cells and flow positions in list order.
func (c *Composite) Add(children ...layout.Control) {
	c.children = append(c.children, children...)
	c.dirty = true
}

// Remove deletes the child with the given id and reports whether it was
// present. Removal keeps the remaining order.
func (c *Composite) Remove(id string) bool {
	for i, child := range c.children {
		if child.ID() == id {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.dirty = true
			return true
		}
	}
	return false
}

// Layout returns the active manager, or nil.
func (c *Composite) Layout() layout.Layout { return c.manager }

// SetLayout assigns a manager and immediately runs a full pass, so the
// children reflect the new manager without a separate DoLayout call.
// Assigning nil detaches the manager and leaves child bounds as they are.
func (c *Composite) SetLayout(l layout.Layout) error {
	c.manager = l
	if l == nil {
		return nil
	}
	return c.DoLayout(true)
}

// DoLayout runs the manager over this composite's own children. When the
// composite is dirty (or flushCache is set) the manager's memoized state is
// discarded first. Without a manager the call is a no-op.
//
// The only error a pass can produce is a circular form attachment; child
// bounds are untouched in that case.
func (c *Composite) DoLayout(flushCache bool) error {
	if c.manager == nil {
		return nil
	}
	flush := flushCache || c.dirty

	hooks := observability.Layout()
	hooks.OnLayoutStart(c.id, c.manager.Kind(), len(c.children))
	start := time.Now()
	err := c.manager.Layout(c, flush)
	hooks.OnLayoutComplete(c.id, c.manager.Kind(), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("layout %q: %w", c.id, err)
	}
	c.dirty = false
	return nil
}

// LayoutTree runs a top-down pass over the whole subtree: this composite
// first, then every child composite within its freshly assigned bounds.
func (c *Composite) LayoutTree(flushCache bool) error {
	if err := c.DoLayout(flushCache); err != nil {
		return err
	}
	for _, child := range c.children {
		sub, ok := child.(*Composite)
		if !ok {
			continue
		}
		if err := sub.LayoutTree(flushCache); err != nil {
			return err
		}
	}
	return nil
}

// ComputeSize asks the manager for the composite's preferred size. It never
// mutates child bounds. Without a manager the composite reports the default
// control size.
func (c *Composite) ComputeSize(wHint, hHint int, flushCache bool) (geom.Point, error) {
	if c.manager == nil {
		size := geom.Pt(DefaultWidth, DefaultHeight)
		if wHint != layout.Default {
			size.X = wHint
		}
		if hHint != layout.Default {
			size.Y = hHint
		}
		return size, nil
	}

	observability.Layout().OnComputeSize(c.id, c.manager.Kind(), wHint, hHint)
	size, err := c.manager.ComputeSize(c, wHint, hHint, flushCache || c.dirty)
	if err != nil {
		return geom.Point{}, fmt.Errorf("compute size %q: %w", c.id, err)
	}
	return size, nil
}

var _ layout.Container = (*Composite)(nil)
