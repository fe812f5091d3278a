package layout

import (
	"testing"

	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/observability"
)

// bareGridLayout returns a GridLayout with margins and spacing zeroed, so the
// geometry assertions stay readable.
func bareGridLayout(cols int) *GridLayout {
	return &GridLayout{NumColumns: cols}
}

// gridChild builds a stub with a fresh GridData, mutated by fn.
func gridChild(id string, w, h int, fn func(*GridData)) *stubControl {
	s := newStub(id, w, h)
	data := NewGridData()
	if fn != nil {
		fn(data)
	}
	s.SetLayoutData(data)
	return s
}

func TestNewGridDataDefaults(t *testing.T) {
	d := NewGridData()

	if d.HorizontalAlignment != Beginning {
		t.Errorf("HorizontalAlignment = %v, want Beginning", d.HorizontalAlignment)
	}
	if d.VerticalAlignment != Center {
		t.Errorf("VerticalAlignment = %v, want Center", d.VerticalAlignment)
	}
	if d.HorizontalSpan != 1 || d.VerticalSpan != 1 {
		t.Errorf("spans = %d,%d, want 1,1", d.HorizontalSpan, d.VerticalSpan)
	}
	if d.WidthHint != Default || d.HeightHint != Default {
		t.Errorf("hints = %d,%d, want Default,Default", d.WidthHint, d.HeightHint)
	}
}

func TestNewGridLayoutDefaults(t *testing.T) {
	l := NewGridLayout(3)

	if l.NumColumns != 3 {
		t.Errorf("NumColumns = %d, want 3", l.NumColumns)
	}
	if l.MarginWidth != 5 || l.MarginHeight != 5 {
		t.Errorf("margins = %d,%d, want 5,5", l.MarginWidth, l.MarginHeight)
	}
	if l.HorizontalSpacing != 5 || l.VerticalSpacing != 5 {
		t.Errorf("spacing = %d,%d, want 5,5", l.HorizontalSpacing, l.VerticalSpacing)
	}
	if l.Kind() != "grid" {
		t.Errorf("Kind() = %q, want %q", l.Kind(), "grid")
	}
}

func TestGridLayoutPlacement(t *testing.T) {
	a := newStub("a", 50, 20)
	b := newStub("b", 50, 20)
	c := newStub("c", 50, 20)
	d := newStub("d", 50, 20)
	shell := newContainer(200, 100, a, b, c, d)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	wantBounds(t, a, geom.RectOf(0, 0, 50, 20))
	wantBounds(t, b, geom.RectOf(50, 0, 50, 20))
	wantBounds(t, c, geom.RectOf(0, 20, 50, 20))
	wantBounds(t, d, geom.RectOf(50, 20, 50, 20))
}

func TestGridLayoutHorizontalSpan(t *testing.T) {
	// a spans both columns of row 0, so b starts row 1.
	a := gridChild("a", 100, 20, func(d *GridData) { d.HorizontalSpan = 2 })
	b := newStub("b", 50, 20)
	shell := newContainer(200, 100, a, b)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	if got := b.Bounds(); got.X != 0 || got.Y != 20 {
		t.Errorf("b placed at (%d,%d), want row 1 column 0 (0,20)", got.X, got.Y)
	}
}

func TestGridLayoutVerticalSpan(t *testing.T) {
	a := gridChild("a", 50, 20, func(d *GridData) { d.VerticalSpan = 2 })
	b := newStub("b", 50, 20)
	c := newStub("c", 50, 20)
	shell := newContainer(200, 100, a, b, c)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// a's spanned cell is 40 tall; centered vertically by default.
	wantBounds(t, a, geom.RectOf(0, 10, 50, 20))
	wantBounds(t, b, geom.RectOf(50, 0, 50, 20))
	// row 1 column 0 is occupied by a's span, so c skips to column 1.
	wantBounds(t, c, geom.RectOf(50, 20, 50, 20))
}

func TestGridLayoutSpanClamping(t *testing.T) {
	// A span past the remaining columns is clamped to the row.
	a := gridChild("a", 50, 20, func(d *GridData) { d.HorizontalSpan = 5 })
	b := gridChild("b", 50, 20, func(d *GridData) { d.HorizontalSpan = 0; d.VerticalSpan = 0 })
	shell := newContainer(200, 100, a, b)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// a claimed all of row 0, so b lands at row 1 column 0 with span 1.
	if got := b.Bounds(); got.X != 0 || got.Y != 20 {
		t.Errorf("b placed at (%d,%d), want (0,20)", got.X, got.Y)
	}
}

func TestGridLayoutGrabDistribution(t *testing.T) {
	a := gridChild("a", 50, 20, func(d *GridData) {
		d.HorizontalAlignment = Fill
		d.GrabExcessHorizontalSpace = true
	})
	b := newStub("b", 50, 20)
	shell := newContainer(140, 50, a, b)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// 40 surplus pixels all go to the single grabbing column.
	wantBounds(t, a, geom.RectOf(0, 0, 90, 20))
	wantBounds(t, b, geom.RectOf(90, 0, 50, 20))
}

func TestGridLayoutSurplusRemainderDropped(t *testing.T) {
	grab := func(d *GridData) {
		d.HorizontalAlignment = Fill
		d.GrabExcessHorizontalSpace = true
	}
	a := gridChild("a", 50, 20, grab)
	b := gridChild("b", 50, 20, grab)
	shell := newContainer(105, 50, a, b)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// 5 surplus pixels split two ways: 2 each, 1 dropped.
	wantBounds(t, a, geom.RectOf(0, 0, 52, 20))
	wantBounds(t, b, geom.RectOf(52, 0, 52, 20))
}

func TestGridLayoutNoShrinkOnDeficit(t *testing.T) {
	grab := func(d *GridData) {
		d.HorizontalAlignment = Fill
		d.GrabExcessHorizontalSpace = true
	}
	a := gridChild("a", 50, 20, grab)
	b := gridChild("b", 50, 20, grab)
	shell := newContainer(60, 50, a, b)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// The grid overflows the client area rather than shrink below the
	// intrinsic column widths.
	wantBounds(t, a, geom.RectOf(0, 0, 50, 20))
	wantBounds(t, b, geom.RectOf(50, 0, 50, 20))
}

func TestGridLayoutEqualWidthColumns(t *testing.T) {
	a := newStub("a", 80, 20)
	b := newStub("b", 40, 20)
	shell := newContainer(200, 50, a, b)

	l := bareGridLayout(2)
	l.MakeColumnsEqualWidth = true
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// Column 1 is leveled up to 80, so b starts at x=80.
	wantBounds(t, b, geom.RectOf(80, 0, 40, 20))

	got, err := l.ComputeSize(shell, Default, Default, false)
	if err != nil {
		t.Fatalf("ComputeSize() = %v", err)
	}
	if got != geom.Pt(160, 20) {
		t.Errorf("ComputeSize() = %v, want (160, 20)", got)
	}
}

func TestGridLayoutCellAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		want  geom.Rect
	}{
		{"beginning", Beginning, geom.RectOf(0, 20, 40, 20)},
		{"center", Center, geom.RectOf(30, 20, 40, 20)},
		{"end", End, geom.RectOf(60, 20, 40, 20)},
		{"fill", Fill, geom.RectOf(0, 20, 100, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wide := newStub("wide", 100, 20)
			small := gridChild("small", 40, 20, func(d *GridData) {
				d.HorizontalAlignment = tt.align
			})
			shell := newContainer(200, 100, wide, small)

			l := bareGridLayout(1)
			if err := l.Layout(shell, false); err != nil {
				t.Fatalf("Layout() = %v", err)
			}
			wantBounds(t, small, tt.want)
		})
	}
}

func TestGridLayoutIndentShrinksCell(t *testing.T) {
	wide := newStub("wide", 100, 20)
	small := gridChild("small", 40, 20, func(d *GridData) {
		d.HorizontalAlignment = Fill
		d.HorizontalIndent = 10
	})
	shell := newContainer(200, 100, wide, small)

	l := bareGridLayout(1)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	wantBounds(t, small, geom.RectOf(10, 20, 90, 20))
}

func TestGridLayoutHintOverridesAlignment(t *testing.T) {
	wide := newStub("wide", 100, 20)
	small := gridChild("small", 40, 20, func(d *GridData) {
		d.HorizontalAlignment = Fill
		d.WidthHint = 30
	})
	shell := newContainer(200, 100, wide, small)

	l := bareGridLayout(1)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// The absolute hint wins over Fill.
	wantBounds(t, small, geom.RectOf(0, 20, 30, 20))
}

func TestGridLayoutMinimumFloor(t *testing.T) {
	wide := newStub("wide", 100, 20)
	small := gridChild("small", 40, 20, func(d *GridData) {
		d.MinimumWidth = 120
	})
	shell := newContainer(200, 100, wide, small)

	l := bareGridLayout(1)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// The floor applies last, even past the cell edge.
	wantBounds(t, small, geom.RectOf(0, 20, 120, 20))
}

func TestGridDataExclude(t *testing.T) {
	a := newStub("a", 50, 20)
	b := gridChild("b", 50, 20, func(d *GridData) { d.Exclude = true })
	c := newStub("c", 50, 20)
	shell := newContainer(200, 100, a, b, c)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	wantBounds(t, a, geom.RectOf(0, 0, 50, 20))
	wantBounds(t, c, geom.RectOf(50, 0, 50, 20))
	wantBounds(t, b, geom.Rect{}) // untouched
}

func TestGridDataWrongTypeFallsBack(t *testing.T) {
	a := newStub("a", 50, 20)
	a.SetLayoutData(&RowData{Width: 10}) // not GridData, ignored
	shell := newContainer(200, 100, a)

	l := bareGridLayout(1)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	wantBounds(t, a, geom.RectOf(0, 0, 50, 20))
}

func TestGridLayoutSpanDoesNotWidenColumns(t *testing.T) {
	// a is wider than both columns it spans; the columns keep the widths of
	// their single-column children.
	a := gridChild("a", 200, 20, func(d *GridData) { d.HorizontalSpan = 2 })
	b := newStub("b", 50, 20)
	c := newStub("c", 50, 20)
	shell := newContainer(300, 100, a, b, c)

	l := bareGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	wantBounds(t, b, geom.RectOf(0, 20, 50, 20))
	wantBounds(t, c, geom.RectOf(50, 20, 50, 20))
	// a is clipped to its spanned cell.
	wantBounds(t, a, geom.RectOf(0, 0, 100, 20))
}

func TestGridLayoutComputeSize(t *testing.T) {
	a := newStub("a", 50, 20)
	b := newStub("b", 30, 40)
	shell := newContainer(500, 500, a, b)

	l := NewGridLayout(2) // 5px margins and spacing
	got, err := l.ComputeSize(shell, Default, Default, false)
	if err != nil {
		t.Fatalf("ComputeSize() = %v", err)
	}
	if got != geom.Pt(95, 50) {
		t.Errorf("ComputeSize() = %v, want (95, 50)", got)
	}

	got, err = l.ComputeSize(shell, 200, Default, false)
	if err != nil {
		t.Fatalf("ComputeSize(200) = %v", err)
	}
	if got != geom.Pt(200, 50) {
		t.Errorf("ComputeSize(200) = %v, want (200, 50)", got)
	}
}

func TestGridLayoutZeroColumnsTreatedAsOne(t *testing.T) {
	a := newStub("a", 50, 20)
	b := newStub("b", 50, 20)
	shell := newContainer(200, 100, a, b)

	l := bareGridLayout(0)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	wantBounds(t, a, geom.RectOf(0, 0, 50, 20))
	wantBounds(t, b, geom.RectOf(0, 20, 50, 20))
}

func TestGridLayoutIdempotent(t *testing.T) {
	a := gridChild("a", 50, 20, func(d *GridData) {
		d.HorizontalAlignment = Fill
		d.GrabExcessHorizontalSpace = true
	})
	b := newStub("b", 50, 20)
	shell := newContainer(140, 50, a, b)

	l := NewGridLayout(2)
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	first := []geom.Rect{a.Bounds(), b.Bounds()}

	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if a.Bounds() != first[0] || b.Bounds() != first[1] {
		t.Errorf("second pass moved children: %v %v, want %v %v",
			a.Bounds(), b.Bounds(), first[0], first[1])
	}
}

// countingCacheHooks records grid cache activity for assertions.
type countingCacheHooks struct {
	hits, misses, flushes int
}

func (h *countingCacheHooks) OnGridCacheHit(string)   { h.hits++ }
func (h *countingCacheHooks) OnGridCacheMiss(string)  { h.misses++ }
func (h *countingCacheHooks) OnGridCacheFlush(string) { h.flushes++ }

func TestGridLayoutCache(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	a := newStub("a", 50, 20)
	b := newStub("b", 50, 20)
	shell := newContainer(200, 100, a, b)
	l := bareGridLayout(2)

	// First pass measures from scratch.
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if hooks.misses != 1 || hooks.hits != 0 {
		t.Fatalf("after first pass: misses=%d hits=%d, want 1, 0", hooks.misses, hooks.hits)
	}
	measured := a.sizeCalls

	// Second pass reuses the memo without re-measuring children.
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if hooks.hits != 1 {
		t.Errorf("after second pass: hits = %d, want 1", hooks.hits)
	}
	if a.sizeCalls != measured {
		t.Errorf("second pass re-measured child: %d calls, want %d", a.sizeCalls, measured)
	}

	// Unhinted ComputeSize is served from the same memo.
	if _, err := l.ComputeSize(shell, Default, Default, false); err != nil {
		t.Fatalf("ComputeSize() = %v", err)
	}
	if hooks.hits != 2 {
		t.Errorf("after ComputeSize: hits = %d, want 2", hooks.hits)
	}

	// flushCache discards the memo and measures again.
	if err := l.Layout(shell, true); err != nil {
		t.Fatalf("Layout(flush) = %v", err)
	}
	if hooks.flushes != 1 || hooks.misses != 2 {
		t.Errorf("after flush: flushes=%d misses=%d, want 1, 2", hooks.flushes, hooks.misses)
	}
}

func TestGridLayoutCacheStaleChildList(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	a := newStub("a", 50, 20)
	b := newStub("b", 50, 20)
	shell := newContainer(200, 100, a, b)
	l := bareGridLayout(2)

	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	// Growing the child list without a flush must not serve stale arrays.
	shell.children = append(shell.children, newStub("c", 50, 20))
	if err := l.Layout(shell, false); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if hooks.hits != 0 {
		t.Errorf("stale memo served: hits = %d, want 0", hooks.hits)
	}
	if hooks.misses != 2 {
		t.Errorf("misses = %d, want 2", hooks.misses)
	}
}

func TestGridLayoutHintedComputeSizeBypassesCache(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	a := newStub("a", 50, 20)
	shell := newContainer(200, 100, a)
	l := bareGridLayout(1)

	if _, err := l.ComputeSize(shell, 99, Default, false); err != nil {
		t.Fatalf("ComputeSize(99) = %v", err)
	}
	if hooks.hits != 0 || hooks.misses != 0 {
		t.Errorf("hinted call touched cache: hits=%d misses=%d", hooks.hits, hooks.misses)
	}
}
