package widget

import (
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/layout"
	"github.com/matzehuels/sash/pkg/observability"
)

func TestNewCompositeGeneratedID(t *testing.T) {
	a := NewComposite("")
	b := NewComposite("")

	if a.ID() == "" {
		t.Fatal("generated ID is empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("two generated IDs collide: %q", a.ID())
	}
}

func TestCompositeClientArea(t *testing.T) {
	c := NewComposite("shell")
	c.SetBounds(geom.RectOf(40, 30, 300, 200))

	if got := c.ClientArea(); got != geom.RectOf(0, 0, 300, 200) {
		t.Errorf("ClientArea() = %v, want (0, 0, 300, 200)", got)
	}
}

func TestCompositeChildrenIsCopy(t *testing.T) {
	c := NewComposite("shell")
	c.Add(NewBox("a"), NewBox("b"))

	kids := c.Children()
	kids[0] = nil
	if c.Children()[0] == nil {
		t.Error("mutating the returned slice changed the composite's child list")
	}
}

func TestCompositeRemove(t *testing.T) {
	a, b, d := NewBox("a"), NewBox("b"), NewBox("d")
	c := NewComposite("shell")
	c.Add(a, b, d)

	if !c.Remove("b") {
		t.Fatal("Remove(b) = false, want true")
	}
	if c.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}

	kids := c.Children()
	if len(kids) != 2 || kids[0].ID() != "a" || kids[1].ID() != "d" {
		t.Errorf("children after remove = %v, want [a d]", kids)
	}
}

func TestCompositeSetLayoutRunsImmediately(t *testing.T) {
	a := NewBox("a")
	b := NewBox("b")
	shell := NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 100, 40))
	shell.Add(a, b)

	if err := shell.SetLayout(layout.NewFillLayout(layout.Horizontal)); err != nil {
		t.Fatalf("SetLayout() = %v", err)
	}

	if a.Bounds() != geom.RectOf(0, 0, 50, 40) {
		t.Errorf("a bounds = %v, want (0, 0, 50, 40)", a.Bounds())
	}
	if b.Bounds() != geom.RectOf(50, 0, 50, 40) {
		t.Errorf("b bounds = %v, want (50, 0, 50, 40)", b.Bounds())
	}
}

func TestCompositeDoLayoutWithoutManager(t *testing.T) {
	shell := NewComposite("shell")
	shell.Add(NewBox("a"))

	if err := shell.DoLayout(false); err != nil {
		t.Errorf("DoLayout() = %v, want nil", err)
	}
}

func TestCompositeCircularAttachmentPropagates(t *testing.T) {
	a := NewBox("a")
	b := NewBox("b")
	da := layout.NewFormData()
	da.Left = layout.AttachControl(b, 0)
	a.SetLayoutData(da)
	db := layout.NewFormData()
	db.Left = layout.AttachControl(a, 0)
	b.SetLayoutData(db)

	shell := NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 200, 100))
	shell.Add(a, b)

	err := shell.SetLayout(layout.NewFormLayout())
	if !errors.Is(err, layout.ErrCircularAttachment) {
		t.Fatalf("SetLayout() = %v, want ErrCircularAttachment", err)
	}

	if _, err := shell.ComputeSize(layout.Default, layout.Default, false); !errors.Is(err, layout.ErrCircularAttachment) {
		t.Errorf("ComputeSize() = %v, want ErrCircularAttachment", err)
	}
}

func TestCompositeComputeSizeWithoutManager(t *testing.T) {
	c := NewComposite("shell")

	got, err := c.ComputeSize(layout.Default, layout.Default, false)
	if err != nil {
		t.Fatalf("ComputeSize() = %v", err)
	}
	if got != geom.Pt(DefaultWidth, DefaultHeight) {
		t.Errorf("ComputeSize() = %v, want (%d, %d)", got, DefaultWidth, DefaultHeight)
	}

	got, err = c.ComputeSize(320, layout.Default, false)
	if err != nil {
		t.Fatalf("ComputeSize(320) = %v", err)
	}
	if got != geom.Pt(320, DefaultHeight) {
		t.Errorf("ComputeSize(320) = %v, want (320, %d)", got, DefaultHeight)
	}
}

func TestCompositeComputeSizeDelegates(t *testing.T) {
	a := NewBox("a")
	a.SetPreferredSize(50, 20)
	b := NewBox("b")
	b.SetPreferredSize(30, 40)

	shell := NewComposite("shell")
	shell.Add(a, b)
	shell.manager = layout.NewGridLayout(2) // avoid the immediate pass; bounds are zero

	got, err := shell.ComputeSize(layout.Default, layout.Default, false)
	if err != nil {
		t.Fatalf("ComputeSize() = %v", err)
	}
	// 5px margins and spacing around a 50+30 by 40 grid.
	if got != geom.Pt(95, 50) {
		t.Errorf("ComputeSize() = %v, want (95, 50)", got)
	}
}

func TestCompositeLayoutTree(t *testing.T) {
	leaf1 := NewBox("leaf1")
	leaf2 := NewBox("leaf2")
	inner := NewComposite("inner")
	inner.Add(leaf1, leaf2)
	if err := inner.SetLayout(layout.NewFillLayout(layout.Vertical)); err != nil {
		t.Fatalf("inner.SetLayout() = %v", err)
	}

	sibling := NewBox("sibling")
	root := NewComposite("root")
	root.SetBounds(geom.RectOf(0, 0, 200, 100))
	root.Add(inner, sibling)
	if err := root.SetLayout(layout.NewFillLayout(layout.Horizontal)); err != nil {
		t.Fatalf("root.SetLayout() = %v", err)
	}

	if err := root.LayoutTree(false); err != nil {
		t.Fatalf("LayoutTree() = %v", err)
	}

	// Root split 200 in half; inner split its 100x100 share vertically.
	if inner.Bounds() != geom.RectOf(0, 0, 100, 100) {
		t.Errorf("inner bounds = %v, want (0, 0, 100, 100)", inner.Bounds())
	}
	if leaf1.Bounds() != geom.RectOf(0, 0, 100, 50) {
		t.Errorf("leaf1 bounds = %v, want (0, 0, 100, 50)", leaf1.Bounds())
	}
	if leaf2.Bounds() != geom.RectOf(0, 50, 100, 50) {
		t.Errorf("leaf2 bounds = %v, want (0, 50, 100, 50)", leaf2.Bounds())
	}
}

// recordingLayoutHooks captures layout pass events for assertions.
type recordingLayoutHooks struct {
	starts, completes int
	computeSizes      int
	lastKind          string
	lastCount         int
	lastErr           error
	lastDuration      time.Duration
}

func (h *recordingLayoutHooks) OnLayoutStart(id, kind string, count int) {
	h.starts++
	h.lastKind = kind
	h.lastCount = count
}

func (h *recordingLayoutHooks) OnLayoutComplete(id, kind string, d time.Duration, err error) {
	h.completes++
	h.lastErr = err
	h.lastDuration = d
}

func (h *recordingLayoutHooks) OnComputeSize(id, kind string, wHint, hHint int) {
	h.computeSizes++
}

func TestCompositeLayoutHooks(t *testing.T) {
	hooks := &recordingLayoutHooks{}
	observability.SetLayoutHooks(hooks)
	t.Cleanup(observability.Reset)

	shell := NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 100, 40))
	shell.Add(NewBox("a"), NewBox("b"))
	if err := shell.SetLayout(layout.NewFillLayout(layout.Horizontal)); err != nil {
		t.Fatalf("SetLayout() = %v", err)
	}

	if hooks.starts != 1 || hooks.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1, 1", hooks.starts, hooks.completes)
	}
	if hooks.lastKind != "fill" || hooks.lastCount != 2 {
		t.Errorf("kind=%q count=%d, want fill, 2", hooks.lastKind, hooks.lastCount)
	}
	if hooks.lastErr != nil {
		t.Errorf("lastErr = %v, want nil", hooks.lastErr)
	}

	if _, err := shell.ComputeSize(layout.Default, layout.Default, false); err != nil {
		t.Fatalf("ComputeSize() = %v", err)
	}
	if hooks.computeSizes != 1 {
		t.Errorf("computeSizes = %d, want 1", hooks.computeSizes)
	}
}

// countingCacheHooks counts grid cache activity.
type countingCacheHooks struct {
	hits, misses, flushes int
}

func (h *countingCacheHooks) OnGridCacheHit(string)   { h.hits++ }
func (h *countingCacheHooks) OnGridCacheMiss(string)  { h.misses++ }
func (h *countingCacheHooks) OnGridCacheFlush(string) { h.flushes++ }

func TestCompositeDirtyFlushesManagerCache(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	shell := NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 200, 100))
	shell.Add(NewBox("a"), NewBox("b"))
	if err := shell.SetLayout(layout.NewGridLayout(2)); err != nil {
		t.Fatalf("SetLayout() = %v", err)
	}

	// A clean repeat serves from the memo.
	if err := shell.DoLayout(false); err != nil {
		t.Fatalf("DoLayout() = %v", err)
	}
	if hooks.hits == 0 {
		t.Error("clean pass did not hit the cache")
	}

	// Adding a child marks the composite dirty; the next pass must flush.
	flushesBefore := hooks.flushes
	shell.Add(NewBox("c"))
	if err := shell.DoLayout(false); err != nil {
		t.Fatalf("DoLayout() = %v", err)
	}
	if hooks.flushes != flushesBefore+1 {
		t.Errorf("flushes = %d, want %d", hooks.flushes, flushesBefore+1)
	}

	// Resizing marks it dirty again.
	flushesBefore = hooks.flushes
	shell.SetBounds(geom.RectOf(0, 0, 300, 100))
	if err := shell.DoLayout(false); err != nil {
		t.Fatalf("DoLayout() = %v", err)
	}
	if hooks.flushes != flushesBefore+1 {
		t.Errorf("flushes after resize = %d, want %d", hooks.flushes, flushesBefore+1)
	}

	// Moving without resizing stays clean.
	flushesBefore = hooks.flushes
	shell.SetBounds(geom.RectOf(50, 50, 300, 100))
	if err := shell.DoLayout(false); err != nil {
		t.Fatalf("DoLayout() = %v", err)
	}
	if hooks.flushes != flushesBefore {
		t.Errorf("flushes after move = %d, want %d", hooks.flushes, flushesBefore)
	}
}
