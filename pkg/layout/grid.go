package layout

import (
	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/observability"
)

// GridData is the per-child constraint record for GridLayout. Construct with
// NewGridData so the hints start at Default and the spans at 1; a zero-valued
// literal pins the child to 0x0 with Beginning alignment on both axes.
type GridData struct {
	// HorizontalAlignment positions the child within its cell along the x
	// axis. The default is Beginning.
	HorizontalAlignment Align
	// VerticalAlignment positions the child within its cell along the y
	// axis. The default is Center.
	VerticalAlignment Align

	// HorizontalSpan is the number of columns the child's cell occupies.
	// Values below 1 are clamped to 1; values past the row's remaining
	// columns are clamped to what is left.
	HorizontalSpan int
	// VerticalSpan is the number of rows the child's cell occupies.
	// Values below 1 are clamped to 1.
	VerticalSpan int

	// GrabExcessHorizontalSpace marks every column the child's cell covers
	// as eligible for surplus container width.
	GrabExcessHorizontalSpace bool
	// GrabExcessVerticalSpace marks every row the child's cell covers as
	// eligible for surplus container height.
	GrabExcessVerticalSpace bool

	// WidthHint is an absolute width override, or Default for the child's
	// natural width. It wins over alignment, including Fill.
	WidthHint int
	// HeightHint is an absolute height override, or Default.
	HeightHint int

	// MinimumWidth and MinimumHeight are floors applied after everything
	// else.
	MinimumWidth  int
	MinimumHeight int

	// HorizontalIndent shifts the child right within its cell, shrinking
	// the usable cell width. VerticalIndent is the same for the y axis.
	HorizontalIndent int
	VerticalIndent   int

	// Exclude removes the child from layout entirely: no cell is assigned,
	// no space is reserved, and its bounds are left untouched.
	Exclude bool
}

// NewGridData returns a GridData with the documented defaults: Beginning
// horizontal alignment, Center vertical alignment, spans of 1, and both
// hints set to Default.
func NewGridData() *GridData {
	return &GridData{
		HorizontalAlignment: Beginning,
		VerticalAlignment:   Center,
		HorizontalSpan:      1,
		VerticalSpan:        1,
		WidthHint:           Default,
		HeightHint:          Default,
	}
}

// gridDataOf returns the child's GridData, or the defaults when the attached
// record is missing or of the wrong type.
func gridDataOf(ctl Control) GridData {
	switch d := ctl.LayoutData().(type) {
	case *GridData:
		if d != nil {
			return *d
		}
	case GridData:
		return d
	}
	return *NewGridData()
}

// GridLayout arranges children in a grid of NumColumns columns. Children are
// assigned to cells in list order, left to right and top to bottom, and a
// cell can span multiple columns and rows. Surplus container space beyond the
// grid's intrinsic size is split equally among the columns and rows that hold
// a grabbing child; the integer remainder of that split is dropped.
//
// The layout memoizes measured column widths, row heights, and the intrinsic
// total between passes. Pass flushCache or mutate through a container that
// tracks dirtiness to discard the memo; hinted ComputeSize calls bypass it.
type GridLayout struct {
	// NumColumns is the column count. Values below 1 are treated as 1.
	NumColumns int
	// MakeColumnsEqualWidth forces every column to the widest column's
	// intrinsic width.
	MakeColumnsEqualWidth bool

	// MarginWidth and MarginHeight are symmetric margins; the per-side
	// fields below override them when nonzero.
	MarginWidth  int
	MarginHeight int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int

	// HorizontalSpacing is the gap between adjacent columns,
	// VerticalSpacing the gap between adjacent rows.
	HorizontalSpacing int
	VerticalSpacing   int

	cache gridCache
}

// NewGridLayout returns a GridLayout with the given column count and the
// standard defaults: 5 pixel margins and 5 pixel spacing on both axes.
func NewGridLayout(numColumns int) *GridLayout {
	return &GridLayout{
		NumColumns:        numColumns,
		MarginWidth:       5,
		MarginHeight:      5,
		HorizontalSpacing: 5,
		VerticalSpacing:   5,
	}
}

// Kind returns "grid".
func (l *GridLayout) Kind() string { return "grid" }

// gridItem is a placed-child record: the cell anchor, the clamped spans, and
// the measured size. The arena references these records by index.
type gridItem struct {
	ctl          Control
	data         GridData
	row, col     int
	hSpan, vSpan int
	size         geom.Point
}

// cellArena is a flat row-major occupancy table. Each cell holds an index
// into the item side-table, or freeCell. Rows grow on demand as vertical
// spans reach past the current bottom edge.
type cellArena struct {
	cols  int
	cells []int
}

const freeCell = -1

func newCellArena(cols int) *cellArena {
	return &cellArena{cols: cols}
}

func (a *cellArena) rows() int { return len(a.cells) / a.cols }

// ensureRows grows the arena to hold at least n rows.
func (a *cellArena) ensureRows(n int) {
	for a.rows() < n {
		for range a.cols {
			a.cells = append(a.cells, freeCell)
		}
	}
}

// at returns the item index occupying (row, col), or freeCell.
func (a *cellArena) at(row, col int) int {
	if row >= a.rows() || col >= a.cols {
		return freeCell
	}
	return a.cells[row*a.cols+col]
}

// claim marks the span rectangle anchored at (row, col) as occupied by item
// idx, growing the arena to cover the vertical span.
func (a *cellArena) claim(row, col, vSpan, hSpan, idx int) {
	a.ensureRows(row + vSpan)
	for r := row; r < row+vSpan; r++ {
		for c := col; c < col+hSpan && c < a.cols; c++ {
			a.cells[r*a.cols+c] = idx
		}
	}
}

// gridModel is one pass's view of the grid: the placed items, the occupancy
// arena, and the resulting grid dimensions.
type gridModel struct {
	items []gridItem
	arena *cellArena
	cols  int
}

func (m *gridModel) rows() int { return m.arena.rows() }

// buildModel assigns every included child to a cell. The cursor walks each
// row left to right, skipping occupied cells, and wraps to the next row when
// the current one is full. Spans are clamped here: the horizontal span to the
// columns remaining in the row, the vertical span to at least 1.
func (l *GridLayout) buildModel(c Container) *gridModel {
	cols := max(l.NumColumns, 1)
	m := &gridModel{arena: newCellArena(cols), cols: cols}

	row, col := 0, 0
	for _, child := range c.Children() {
		if !child.Visible() {
			continue
		}
		data := gridDataOf(child)
		if data.Exclude {
			continue
		}

		for {
			if col >= cols {
				row, col = row+1, 0
			}
			m.arena.ensureRows(row + 1)
			if m.arena.at(row, col) == freeCell {
				break
			}
			col++
		}

		hSpan := min(max(data.HorizontalSpan, 1), cols-col)
		vSpan := max(data.VerticalSpan, 1)

		idx := len(m.items)
		m.items = append(m.items, gridItem{
			ctl:   child,
			data:  data,
			row:   row,
			col:   col,
			hSpan: hSpan,
			vSpan: vSpan,
		})
		m.arena.claim(row, col, vSpan, hSpan, idx)
		col += hSpan
	}
	return m
}

// measureItems fills in each item's preferred size, honoring the GridData
// hints. The hints come back verbatim from the child, so a hinted axis needs
// no further handling here.
func (l *GridLayout) measureItems(m *gridModel, flushCache bool) error {
	for i := range m.items {
		it := &m.items[i]
		size, err := it.ctl.ComputeSize(it.data.WidthHint, it.data.HeightHint, flushCache)
		if err != nil {
			return err
		}
		it.size = size
	}
	return nil
}

// columnWidths computes the intrinsic width of every column: the widest
// single-column child (plus its indent) in that column. Spanning children do
// not constrain individual columns; a column with no single-column child
// keeps width zero. MakeColumnsEqualWidth then levels all columns up to the
// widest.
func (l *GridLayout) columnWidths(m *gridModel) []int {
	widths := make([]int, m.cols)
	for _, it := range m.items {
		if it.hSpan != 1 {
			continue
		}
		if w := it.size.X + it.data.HorizontalIndent; w > widths[it.col] {
			widths[it.col] = w
		}
	}
	if l.MakeColumnsEqualWidth {
		widest := 0
		for _, w := range widths {
			widest = max(widest, w)
		}
		for i := range widths {
			widths[i] = widest
		}
	}
	return widths
}

// rowHeights is the vertical counterpart of columnWidths. Rows are never
// leveled to equal heights.
func (l *GridLayout) rowHeights(m *gridModel) []int {
	heights := make([]int, m.rows())
	for _, it := range m.items {
		if it.vSpan != 1 {
			continue
		}
		if h := it.size.Y + it.data.VerticalIndent; h > heights[it.row] {
			heights[it.row] = h
		}
	}
	return heights
}

// gridCache memoizes one measurement pass: the intrinsic axis arrays, the
// per-item measured sizes in placement order, and the intrinsic total
// including margins. It is valid only for unhinted measurements.
type gridCache struct {
	valid   bool
	widths  []int
	heights []int
	sizes   []geom.Point
	size    geom.Point
}

// matches reports whether the memo still lines up with the model. A changed
// child list or column count without an intervening flush falls back to a
// fresh measurement instead of misapplying stale arrays.
func (ch *gridCache) matches(m *gridModel) bool {
	return ch.valid && len(ch.sizes) == len(m.items) && len(ch.widths) == m.cols && len(ch.heights) == m.rows()
}

func (l *GridLayout) invalidate(containerID string) {
	if l.cache.valid {
		l.cache = gridCache{}
		observability.Cache().OnGridCacheFlush(containerID)
	}
}

// axisSizes returns the intrinsic column widths and row heights for the
// model, serving them from the memo when it is still valid and refilling it
// otherwise.
func (l *GridLayout) axisSizes(c Container, m *gridModel, flushCache bool) (widths, heights []int, err error) {
	if l.cache.matches(m) {
		observability.Cache().OnGridCacheHit(c.ID())
		for i := range m.items {
			m.items[i].size = l.cache.sizes[i]
		}
		return l.cache.widths, l.cache.heights, nil
	}

	observability.Cache().OnGridCacheMiss(c.ID())
	if err := l.measureItems(m, flushCache); err != nil {
		return nil, nil, err
	}
	widths = l.columnWidths(m)
	heights = l.rowHeights(m)

	sizes := make([]geom.Point, len(m.items))
	for i, it := range m.items {
		sizes[i] = it.size
	}
	l.cache = gridCache{
		valid:   true,
		widths:  widths,
		heights: heights,
		sizes:   sizes,
		size:    l.intrinsicSize(widths, heights),
	}
	return widths, heights, nil
}

// intrinsicSize is the grid's natural extent: the axis sums plus inter-cell
// spacing plus margins.
func (l *GridLayout) intrinsicSize(widths, heights []int) geom.Point {
	ml, mt, mr, mb := sideMargins(l.MarginWidth, l.MarginHeight, l.MarginLeft, l.MarginTop, l.MarginRight, l.MarginBottom)
	size := geom.Pt(ml+mr, mt+mb)
	for _, w := range widths {
		size.X += w
	}
	if len(widths) > 1 {
		size.X += l.HorizontalSpacing * (len(widths) - 1)
	}
	for _, h := range heights {
		size.Y += h
	}
	if len(heights) > 1 {
		size.Y += l.VerticalSpacing * (len(heights) - 1)
	}
	return size
}

// ComputeSize measures the grid and returns its intrinsic size. Unhinted
// calls are served from and refill the memo; hinted calls bypass it, since
// their result is pinned on the hinted axis anyway.
func (l *GridLayout) ComputeSize(c Container, wHint, hHint int, flushCache bool) (geom.Point, error) {
	if flushCache {
		l.invalidate(c.ID())
	}
	hinted := wHint != Default || hHint != Default
	if !hinted && l.cache.valid {
		observability.Cache().OnGridCacheHit(c.ID())
		return l.cache.size, nil
	}

	m := l.buildModel(c)
	if hinted {
		if err := l.measureItems(m, flushCache); err != nil {
			return geom.Point{}, err
		}
		size := l.intrinsicSize(l.columnWidths(m), l.rowHeights(m))
		return overrideHints(size, wHint, hHint), nil
	}

	widths, heights, err := l.axisSizes(c, m, flushCache)
	if err != nil {
		return geom.Point{}, err
	}
	return l.intrinsicSize(widths, heights), nil
}

// Layout places every included child in its spanned cell. Surplus client
// space beyond the intrinsic grid is first distributed to grabbing columns
// and rows, then each child is aligned within its cell.
func (l *GridLayout) Layout(c Container, flushCache bool) error {
	if flushCache {
		l.invalidate(c.ID())
	}
	m := l.buildModel(c)
	if len(m.items) == 0 {
		return nil
	}
	intrinsicW, intrinsicH, err := l.axisSizes(c, m, flushCache)
	if err != nil {
		return err
	}

	client := c.ClientArea()
	ml, mt, mr, mb := sideMargins(l.MarginWidth, l.MarginHeight, l.MarginLeft, l.MarginTop, l.MarginRight, l.MarginBottom)

	// Distribution works on copies so the memoized intrinsic arrays stay
	// pristine for the next pass.
	widths := distribute(intrinsicW, l.grabColumns(m), client.W-ml-mr-l.HorizontalSpacing*(m.cols-1))
	heights := distribute(intrinsicH, l.grabRows(m), client.H-mt-mb-l.VerticalSpacing*(m.rows()-1))

	colX := axisOffsets(client.X+ml, widths, l.HorizontalSpacing)
	rowY := axisOffsets(client.Y+mt, heights, l.VerticalSpacing)

	for _, it := range m.items {
		cellW := spanExtent(widths, it.col, it.hSpan, l.HorizontalSpacing)
		cellH := spanExtent(heights, it.row, it.vSpan, l.VerticalSpacing)

		x, w := alignSpan(colX[it.col], cellW, it.size.X, it.data.HorizontalAlignment, it.data.HorizontalIndent)
		y, h := alignSpan(rowY[it.row], cellH, it.size.Y, it.data.VerticalAlignment, it.data.VerticalIndent)

		if it.data.WidthHint != Default {
			w = it.data.WidthHint
		}
		if it.data.HeightHint != Default {
			h = it.data.HeightHint
		}
		w = max(w, it.data.MinimumWidth)
		h = max(h, it.data.MinimumHeight)

		it.ctl.SetBounds(geom.Rect{X: x, Y: y, W: w, H: h})
	}
	return nil
}

// grabColumns reports which columns contain at least one grabbing child.
// A spanning grabber marks every column its cell covers.
func (l *GridLayout) grabColumns(m *gridModel) []bool {
	grab := make([]bool, m.cols)
	for _, it := range m.items {
		if !it.data.GrabExcessHorizontalSpace {
			continue
		}
		for c := it.col; c < it.col+it.hSpan; c++ {
			grab[c] = true
		}
	}
	return grab
}

func (l *GridLayout) grabRows(m *gridModel) []bool {
	grab := make([]bool, m.rows())
	for _, it := range m.items {
		if !it.data.GrabExcessVerticalSpace {
			continue
		}
		for r := it.row; r < it.row+it.vSpan; r++ {
			grab[r] = true
		}
	}
	return grab
}

// distribute splits the surplus between avail and the intrinsic sum equally
// among the grabbing slots. The integer remainder is dropped, and a deficit
// (negative surplus) leaves the intrinsic sizes untouched: the grid overflows
// rather than shrink below its preferred size.
func distribute(intrinsic []int, grab []bool, avail int) []int {
	out := make([]int, len(intrinsic))
	copy(out, intrinsic)

	total := 0
	for _, v := range intrinsic {
		total += v
	}
	surplus := avail - total
	if surplus <= 0 {
		return out
	}

	grabbers := 0
	for _, g := range grab {
		if g {
			grabbers++
		}
	}
	if grabbers == 0 {
		return out
	}

	share := surplus / grabbers
	for i, g := range grab {
		if g {
			out[i] += share
		}
	}
	return out
}

// axisOffsets returns the starting coordinate of every slot given the slot
// extents and the gap between adjacent slots.
func axisOffsets(origin int, extents []int, spacing int) []int {
	offsets := make([]int, len(extents))
	pos := origin
	for i, e := range extents {
		offsets[i] = pos
		pos += e + spacing
	}
	return offsets
}

// spanExtent is the total extent of a span: the covered slots plus the gaps
// between them.
func spanExtent(extents []int, start, span, spacing int) int {
	total := spacing * (span - 1)
	for i := start; i < start+span && i < len(extents); i++ {
		total += extents[i]
	}
	return total
}

// alignSpan positions a child of the measured extent within a cell. The
// indent shrinks the cell from its start edge first; Fill then takes the
// whole reduced cell, while the other alignments keep the measured extent
// clamped to it.
func alignSpan(cellPos, cellExtent, measured int, align Align, indent int) (pos, extent int) {
	cellPos += indent
	cellExtent = max(cellExtent-indent, 0)

	extent = min(measured, cellExtent)
	switch align {
	case Fill:
		extent = cellExtent
	case Center:
		cellPos += max((cellExtent-extent)/2, 0)
	case End:
		cellPos += max(cellExtent-extent, 0)
	}
	return cellPos, extent
}
