package layout

import (
	"github.com/matzehuels/sash/pkg/geom"
)

// RowData is the optional per-child constraint record for RowLayout.
// Construct with NewRowData so the hints start at Default; a zero-valued
// literal pins the child to 0x0.
type RowData struct {
	// Width is the child's flow-axis size, or Default for its natural size.
	Width int
	// Height is the child's cross-axis size, or Default for its natural size.
	Height int
	// Exclude removes the child from layout entirely: no space is reserved
	// and its bounds are left untouched.
	Exclude bool
}

// NewRowData returns a RowData with both hints set to Default.
func NewRowData() *RowData {
	return &RowData{Width: Default, Height: Default}
}

// rowDataOf returns the child's RowData, or defaults when the attached
// record is missing or of the wrong type.
func rowDataOf(ctl Control) RowData {
	switch d := ctl.LayoutData().(type) {
	case *RowData:
		if d != nil {
			return *d
		}
	case RowData:
		return d
	}
	return RowData{Width: Default, Height: Default}
}

// RowLayout places children at their preferred size along the flow axis,
// wrapping into a new row (or column) when the next child would overflow the
// available extent.
type RowLayout struct {
	// Type selects the flow axis. The default is Horizontal.
	Type Orientation

	// Wrap starts a new row when the next child would overflow the
	// available flow-axis extent. Without Wrap everything stays in one row.
	Wrap bool
	// Pack sizes each child individually. When false, every child is given
	// the extent of the largest child on both axes.
	Pack bool
	// Fill stretches each child to the row's full cross-axis extent.
	Fill bool
	// Center centers each child within the row's cross-axis extent.
	// Ignored when Fill is set.
	Center bool
	// Justify spreads leftover flow-axis space evenly before and between
	// the children of each row.
	Justify bool

	// Spacing is the space between adjacent children and between rows.
	Spacing int

	// MarginWidth and MarginHeight are symmetric margins; the per-side
	// fields below override them when nonzero.
	MarginWidth  int
	MarginHeight int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
}

// NewRowLayout returns a RowLayout flowing along the given axis with the
// standard defaults: wrapping and packing enabled, spacing 3, and a 3 pixel
// margin on every side.
func NewRowLayout(orientation Orientation) *RowLayout {
	return &RowLayout{
		Type:         orientation,
		Wrap:         true,
		Pack:         true,
		Spacing:      3,
		MarginLeft:   3,
		MarginTop:    3,
		MarginRight:  3,
		MarginBottom: 3,
	}
}

// Kind returns "row".
func (l *RowLayout) Kind() string { return "row" }

// rowItem pairs a child with its measured size for one pass.
type rowItem struct {
	ctl  Control
	size geom.Point
}

// measure computes the per-child sizes this pass will work with, honoring
// RowData hints and the Exclude flag. With Pack disabled every child is
// inflated to the largest measured extent.
func (l *RowLayout) measure(c Container, flushCache bool) ([]rowItem, error) {
	var items []rowItem
	for _, child := range c.Children() {
		if !child.Visible() {
			continue
		}
		data := rowDataOf(child)
		if data.Exclude {
			continue
		}
		size, err := child.ComputeSize(data.Width, data.Height, flushCache)
		if err != nil {
			return nil, err
		}
		items = append(items, rowItem{ctl: child, size: size})
	}

	if !l.Pack {
		var maxW, maxH int
		for _, it := range items {
			maxW = max(maxW, it.size.X)
			maxH = max(maxH, it.size.Y)
		}
		for i := range items {
			items[i].size = geom.Pt(maxW, maxH)
		}
	}
	return items, nil
}

func (l *RowLayout) flowExtent(size geom.Point) int {
	if l.Type == Horizontal {
		return size.X
	}
	return size.Y
}

func (l *RowLayout) crossExtent(size geom.Point) int {
	if l.Type == Horizontal {
		return size.Y
	}
	return size.X
}

// splitRows groups items into rows. A row closes when it already holds a
// child and the next one would push the running extent past limit.
func (l *RowLayout) splitRows(items []rowItem, limit int, wrap bool) [][]rowItem {
	var rows [][]rowItem
	var row []rowItem
	used := 0
	for _, it := range items {
		extent := l.flowExtent(it.size)
		next := used + extent
		if len(row) > 0 {
			next += l.Spacing
		}
		if wrap && len(row) > 0 && next > limit {
			rows = append(rows, row)
			row = nil
			next = extent
		}
		row = append(row, it)
		used = next
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// ComputeSize measures the children and simulates wrapping against the
// hinted extent (no hint means a single row). The result is the widest row
// by the summed row heights, plus margins.
func (l *RowLayout) ComputeSize(c Container, wHint, hHint int, flushCache bool) (geom.Point, error) {
	items, err := l.measure(c, flushCache)
	if err != nil {
		return geom.Point{}, err
	}
	ml, mt, mr, mb := sideMargins(l.MarginWidth, l.MarginHeight, l.MarginLeft, l.MarginTop, l.MarginRight, l.MarginBottom)

	limit := 0
	haveLimit := false
	if l.Type == Horizontal && wHint != Default {
		limit = wHint - ml - mr
		haveLimit = true
	}
	if l.Type == Vertical && hHint != Default {
		limit = hHint - mt - mb
		haveLimit = true
	}
	rows := l.splitRows(items, limit, l.Wrap && haveLimit)

	maxFlow, totalCross := 0, 0
	for i, row := range rows {
		flow, cross := 0, 0
		for j, it := range row {
			if j > 0 {
				flow += l.Spacing
			}
			flow += l.flowExtent(it.size)
			cross = max(cross, l.crossExtent(it.size))
		}
		maxFlow = max(maxFlow, flow)
		if i > 0 {
			totalCross += l.Spacing
		}
		totalCross += cross
	}

	var size geom.Point
	if l.Type == Horizontal {
		size = geom.Pt(maxFlow+ml+mr, totalCross+mt+mb)
	} else {
		size = geom.Pt(totalCross+ml+mr, maxFlow+mt+mb)
	}
	return overrideHints(size, wHint, hHint), nil
}

// Layout flows the children into rows within the client area and writes
// their bounds. Cross-axis placement follows Fill, then Center, then
// start-aligned; Justify pads leftover flow-axis space per row.
func (l *RowLayout) Layout(c Container, flushCache bool) error {
	items, err := l.measure(c, flushCache)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	client := c.ClientArea()
	ml, mt, mr, mb := sideMargins(l.MarginWidth, l.MarginHeight, l.MarginLeft, l.MarginTop, l.MarginRight, l.MarginBottom)
	horizontal := l.Type == Horizontal

	avail := client.W - ml - mr
	flowStart := client.X + ml
	crossCursor := client.Y + mt
	if !horizontal {
		avail = client.H - mt - mb
		flowStart = client.Y + mt
		crossCursor = client.X + ml
	}

	for _, row := range l.splitRows(items, avail, l.Wrap) {
		rowCross, rowUsed := 0, 0
		for j, it := range row {
			if j > 0 {
				rowUsed += l.Spacing
			}
			rowUsed += l.flowExtent(it.size)
			rowCross = max(rowCross, l.crossExtent(it.size))
		}

		gap := 0
		if l.Justify {
			if extra := avail - rowUsed; extra > 0 {
				gap = extra / (len(row) + 1)
			}
		}

		flowCursor := flowStart
		for _, it := range row {
			flowCursor += gap
			cross := l.crossExtent(it.size)
			crossPos := crossCursor
			switch {
			case l.Fill:
				cross = rowCross
			case l.Center:
				crossPos += (rowCross - cross) / 2
			}

			var bounds geom.Rect
			if horizontal {
				bounds = geom.Rect{X: flowCursor, Y: crossPos, W: it.size.X, H: cross}
			} else {
				bounds = geom.Rect{X: crossPos, Y: flowCursor, W: cross, H: it.size.Y}
			}
			it.ctl.SetBounds(bounds)
			flowCursor += l.flowExtent(it.size) + l.Spacing
		}
		crossCursor += rowCross + l.Spacing
	}
	return nil
}
