package layout

import (
	"errors"
	"fmt"

	"github.com/matzehuels/sash/pkg/dag"
	"github.com/matzehuels/sash/pkg/geom"
)

// ErrCircularAttachment is returned by FormLayout when the control
// attachments form a cycle. No processing order can satisfy a cyclic
// attachment set, so the pass aborts without writing any bounds.
var ErrCircularAttachment = errors.New("circular control attachment")

// Edge names the target edge a ControlAttachment aligns to. EdgeDefault
// selects "after" semantics: a start side (left or top) lands just past the
// target's far edge plus spacing, an end side (right or bottom) just before
// the target's near edge minus spacing.
type Edge int

const (
	EdgeDefault Edge = iota
	EdgeLeft
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeCenter
)

// String returns the lower-case edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeCenter:
		return "center"
	default:
		return "default"
	}
}

// Attachment binds one edge of a control to a position within the form. A
// parent percentage and a sibling's edge are distinct types, so a single
// attachment can never be both.
type Attachment interface {
	isAttachment()
}

// PercentAttachment pins an edge at a fraction of the container's usable
// extent plus a pixel offset: position = extent*Numerator/Denominator +
// Offset, measured from the margin edge.
type PercentAttachment struct {
	Numerator   int
	Denominator int // 0 is treated as 100
	Offset      int
}

func (PercentAttachment) isAttachment() {}

// AttachPercent returns a percentage attachment out of 100.
func AttachPercent(percent, offset int) PercentAttachment {
	return PercentAttachment{Numerator: percent, Denominator: 100, Offset: offset}
}

// ControlAttachment pins an edge relative to a target control's resolved
// bounds. Targets that are siblings in the same container are resolved
// first; a target outside the container contributes its current bounds
// as-is.
type ControlAttachment struct {
	Target Control
	Align  Edge
	Offset int
}

func (ControlAttachment) isAttachment() {}

// AttachControl returns a control attachment with EdgeDefault "after"
// placement.
func AttachControl(target Control, offset int) ControlAttachment {
	return ControlAttachment{Target: target, Offset: offset}
}

// AttachControlEdge returns a control attachment aligned to a specific
// target edge.
func AttachControlEdge(target Control, align Edge, offset int) ControlAttachment {
	return ControlAttachment{Target: target, Align: align, Offset: offset}
}

// FormData is the per-child constraint record for FormLayout: up to four
// attachments plus optional size hints. An unattached side falls back to the
// start of the usable area (for left/top) or to the hinted/natural size (for
// the extent). Construct with NewFormData so the hints start at Default.
type FormData struct {
	// Width is the child's width when left and right are not both attached,
	// or Default for its natural width. Height is the same for the y axis.
	Width  int
	Height int

	Left   Attachment
	Right  Attachment
	Top    Attachment
	Bottom Attachment
}

// NewFormData returns a FormData with both hints set to Default and no
// attachments.
func NewFormData() *FormData {
	return &FormData{Width: Default, Height: Default}
}

// formDataOf returns the child's FormData, or defaults when the attached
// record is missing or of the wrong type. Attachments held by pointer are
// flattened to their value form so the resolution type switches see a single
// representation.
func formDataOf(ctl Control) FormData {
	switch d := ctl.LayoutData().(type) {
	case *FormData:
		if d != nil {
			return normFormData(*d)
		}
	case FormData:
		return normFormData(d)
	}
	return FormData{Width: Default, Height: Default}
}

func normFormData(d FormData) FormData {
	d.Left = normAttachment(d.Left)
	d.Right = normAttachment(d.Right)
	d.Top = normAttachment(d.Top)
	d.Bottom = normAttachment(d.Bottom)
	return d
}

func normAttachment(att Attachment) Attachment {
	switch a := att.(type) {
	case *PercentAttachment:
		if a == nil {
			return nil
		}
		return *a
	case *ControlAttachment:
		if a == nil {
			return nil
		}
		return *a
	}
	return att
}

// FormLayout positions each child by resolving its edge attachments. The
// attachments induce a dependency graph between siblings; the layout
// validates it and resolves controls in topological order, so every target
// is positioned before anything attached to it.
type FormLayout struct {
	// MarginWidth and MarginHeight are symmetric margins; the per-side
	// fields below override them when nonzero.
	MarginWidth  int
	MarginHeight int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int

	// Spacing is the gap "after" placement leaves between a control and its
	// default-attached target.
	Spacing int
}

// NewFormLayout returns a FormLayout with zero margins and spacing.
func NewFormLayout() *FormLayout {
	return &FormLayout{}
}

// Kind returns "form".
func (l *FormLayout) Kind() string { return "form" }

// included returns the children that participate in the pass.
func (l *FormLayout) included(c Container) []Control {
	var out []Control
	for _, child := range c.Children() {
		if child.Visible() {
			out = append(out, child)
		}
	}
	return out
}

// attachmentGraph builds the dependency graph over the included children:
// one edge per control attachment whose target is a sibling. Targets outside
// the container are not dependencies; their current bounds are read as-is
// during resolution.
func (l *FormLayout) attachmentGraph(children []Control) (*dag.Graph, error) {
	g := dag.New()
	member := make(map[string]bool, len(children))
	for _, child := range children {
		if err := g.AddNode(child.ID()); err != nil {
			return nil, fmt.Errorf("attachment graph: %w", err)
		}
		member[child.ID()] = true
	}
	for _, child := range children {
		data := formDataOf(child)
		for _, att := range []Attachment{data.Left, data.Right, data.Top, data.Bottom} {
			ca, ok := att.(ControlAttachment)
			if !ok || ca.Target == nil || !member[ca.Target.ID()] {
				continue
			}
			if ca.Target.ID() == child.ID() {
				// Self-attachment is the smallest cycle.
				return nil, fmt.Errorf("%q attached to itself: %w", child.ID(), ErrCircularAttachment)
			}
			if err := g.AddEdge(child.ID(), ca.Target.ID()); err != nil {
				return nil, fmt.Errorf("attachment graph: %w", err)
			}
		}
	}
	return g, nil
}

// Layout resolves every visible child's bounds from its attachments. The
// pass is atomic: a cyclic attachment set aborts with ErrCircularAttachment
// before any bounds are written.
func (l *FormLayout) Layout(c Container, flushCache bool) error {
	children := l.included(c)
	if len(children) == 0 {
		return nil
	}

	g, err := l.attachmentGraph(children)
	if err != nil {
		return err
	}
	order, err := g.TopoOrder()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCircularAttachment, err)
	}

	byID := make(map[string]Control, len(children))
	for _, child := range children {
		byID[child.ID()] = child
	}

	ml, mt, mr, mb := sideMargins(l.MarginWidth, l.MarginHeight, l.MarginLeft, l.MarginTop, l.MarginRight, l.MarginBottom)
	area := c.ClientArea().InsetBy(ml, mt, mr, mb)

	resolved := make(map[string]geom.Rect, len(children))
	for _, id := range order {
		child := byID[id]
		data := formDataOf(child)

		pref, err := child.ComputeSize(data.Width, data.Height, flushCache)
		if err != nil {
			return err
		}

		x, w := l.resolveAxis(axisX, area, data.Left, data.Right, pref.X, resolved)
		y, h := l.resolveAxis(axisY, area, data.Top, data.Bottom, pref.Y, resolved)
		resolved[id] = geom.Rect{X: x, Y: y, W: w, H: h}
	}

	for _, child := range children {
		child.SetBounds(resolved[child.ID()])
	}
	return nil
}

// axis selects which coordinate pair resolveAxis works on.
type axis int

const (
	axisX axis = iota
	axisY
)

// resolveAxis turns one opposing attachment pair into a position and extent.
// With both sides attached the extent is the difference of the resolved edge
// coordinates, clamped at zero; with one side the extent is the preferred
// size and the free edge follows; with neither the child sits at the start
// of the usable area at its preferred size.
func (l *FormLayout) resolveAxis(ax axis, area geom.Rect, start, end Attachment, pref int, resolved map[string]geom.Rect) (pos, extent int) {
	switch {
	case start != nil && end != nil:
		p1 := l.resolveEdge(ax, area, start, true, resolved)
		p2 := l.resolveEdge(ax, area, end, false, resolved)
		return p1, max(p2-p1, 0)
	case start != nil:
		return l.resolveEdge(ax, area, start, true, resolved), pref
	case end != nil:
		p2 := l.resolveEdge(ax, area, end, false, resolved)
		return p2 - pref, pref
	default:
		if ax == axisX {
			return area.X, pref
		}
		return area.Y, pref
	}
}

// resolveEdge computes the coordinate one attachment pins an edge to.
func (l *FormLayout) resolveEdge(ax axis, area geom.Rect, att Attachment, startSide bool, resolved map[string]geom.Rect) int {
	switch a := att.(type) {
	case PercentAttachment:
		den := a.Denominator
		if den == 0 {
			den = 100
		}
		origin, extent := area.X, area.W
		if ax == axisY {
			origin, extent = area.Y, area.H
		}
		return origin + extent*a.Numerator/den + a.Offset

	case ControlAttachment:
		if a.Target == nil {
			break
		}
		tb := l.targetBounds(a.Target, resolved)
		return l.targetEdge(ax, tb, a.Align, startSide) + a.Offset
	}
	// A control attachment without a target degrades to the area start.
	if ax == axisY {
		return area.Y
	}
	return area.X
}

// targetBounds prefers the bounds resolved earlier in this pass and falls
// back to the target's current bounds for controls outside the container.
func (l *FormLayout) targetBounds(target Control, resolved map[string]geom.Rect) geom.Rect {
	if r, ok := resolved[target.ID()]; ok {
		return r
	}
	return target.Bounds()
}

// targetEdge picks the coordinate of the requested target edge. Alignments
// belonging to the other axis fall back to EdgeDefault's "after" semantics,
// as does EdgeDefault itself: a start side lands past the target plus
// spacing, an end side before it minus spacing.
func (l *FormLayout) targetEdge(ax axis, tb geom.Rect, align Edge, startSide bool) int {
	if ax == axisX {
		switch align {
		case EdgeLeft:
			return tb.X
		case EdgeRight:
			return tb.Right()
		case EdgeCenter:
			return tb.X + tb.W/2
		}
		if startSide {
			return tb.Right() + l.Spacing
		}
		return tb.X - l.Spacing
	}

	switch align {
	case EdgeTop:
		return tb.Y
	case EdgeBottom:
		return tb.Bottom()
	case EdgeCenter:
		return tb.Y + tb.H/2
	}
	if startSide {
		return tb.Bottom() + l.Spacing
	}
	return tb.Y - l.Spacing
}

// ComputeSize estimates the form's preferred size in a single pass per
// child, without resolving the attachment graph: percentage attachments are
// taken literally as fractions of the unknown extent, and control
// attachments contribute only their own offset. The estimate is intentionally
// loose for control-attached edges (exact resolution would need the full
// Layout machinery), but it still validates the graph, so a cyclic
// attachment set fails here exactly as it does in Layout.
func (l *FormLayout) ComputeSize(c Container, wHint, hHint int, flushCache bool) (geom.Point, error) {
	children := l.included(c)

	g, err := l.attachmentGraph(children)
	if err != nil {
		return geom.Point{}, err
	}
	if err := g.Validate(); err != nil {
		return geom.Point{}, fmt.Errorf("%w: %w", ErrCircularAttachment, err)
	}

	ml, mt, mr, mb := sideMargins(l.MarginWidth, l.MarginHeight, l.MarginLeft, l.MarginTop, l.MarginRight, l.MarginBottom)

	var size geom.Point
	for _, child := range children {
		data := formDataOf(child)
		pref, err := child.ComputeSize(data.Width, data.Height, flushCache)
		if err != nil {
			return geom.Point{}, err
		}
		size.X = max(size.X, requiredExtent(edgeExprOf(data.Left), edgeExprOf(data.Right), pref.X))
		size.Y = max(size.Y, requiredExtent(edgeExprOf(data.Top), edgeExprOf(data.Bottom), pref.Y))
	}
	size.X += ml + mr
	size.Y += mt + mb
	return overrideHints(size, wHint, hHint), nil
}

// edgeExpr is the estimated position of an attached edge as a linear
// function of the container extent: extent*num/den + off.
type edgeExpr struct {
	num, den int
	off      int
	set      bool
}

func edgeExprOf(att Attachment) edgeExpr {
	switch a := att.(type) {
	case PercentAttachment:
		den := a.Denominator
		if den == 0 {
			den = 100
		}
		return edgeExpr{num: a.Numerator, den: den, off: a.Offset, set: true}
	case ControlAttachment:
		return edgeExpr{den: 1, off: a.Offset, set: true}
	}
	return edgeExpr{den: 1}
}

// requiredExtent solves the smallest container extent that fits a child of
// the given preferred size between its two estimated edges. Degenerate
// fraction pairs (both edges moving at the same rate, or a start pinned at
// or past 100%) fall back to offset arithmetic.
func requiredExtent(start, end edgeExpr, pref int) int {
	switch {
	case start.set && end.set:
		// (end.num/end.den - start.num/start.den) * W >= pref - (end.off - start.off)
		coeff := end.num*start.den - start.num*end.den
		need := pref - end.off + start.off
		if coeff <= 0 {
			return max(start.off+pref, end.off, 0)
		}
		if need <= 0 {
			return 0
		}
		return ceilDiv(need*start.den*end.den, coeff)

	case start.set:
		// W >= start position + pref.
		if start.num >= start.den {
			return max(start.off+pref, 0)
		}
		return ceilDiv(start.den*(start.off+pref), start.den-start.num)

	case end.set:
		// The end edge must reach at least pref.
		if end.num <= 0 {
			return max(end.off, 0)
		}
		if pref-end.off <= 0 {
			return 0
		}
		return ceilDiv(end.den*(pref-end.off), end.num)

	default:
		return pref
	}
}

// ceilDiv divides non-negative a by positive b, rounding up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
