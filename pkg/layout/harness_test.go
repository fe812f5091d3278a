package layout

import (
	"testing"

	"github.com/matzehuels/sash/pkg/geom"
)

// stubControl is a minimal Control for exercising the managers: a fixed
// preferred size, recorded bounds, and optional layout data.
type stubControl struct {
	id     string
	pref   geom.Point
	bounds geom.Rect
	data   any
	hidden bool

	sizeErr   error
	sizeCalls int
}

func newStub(id string, w, h int) *stubControl {
	return &stubControl{id: id, pref: geom.Pt(w, h)}
}

func (s *stubControl) ID() string            { return s.id }
func (s *stubControl) Visible() bool         { return !s.hidden }
func (s *stubControl) Bounds() geom.Rect     { return s.bounds }
func (s *stubControl) SetBounds(b geom.Rect) { s.bounds = b }
func (s *stubControl) LayoutData() any       { return s.data }
func (s *stubControl) SetLayoutData(d any)   { s.data = d }

func (s *stubControl) ComputeSize(wHint, hHint int, flushCache bool) (geom.Point, error) {
	s.sizeCalls++
	if s.sizeErr != nil {
		return geom.Point{}, s.sizeErr
	}
	return overrideHints(s.pref, wHint, hHint), nil
}

// stubContainer holds an ordered child list over a fixed client area at the
// local origin.
type stubContainer struct {
	stubControl
	children []Control
	area     geom.Rect
}

func newContainer(w, h int, children ...Control) *stubContainer {
	return &stubContainer{
		stubControl: stubControl{id: "shell", pref: geom.Pt(w, h)},
		children:    children,
		area:        geom.RectOf(0, 0, w, h),
	}
}

func (c *stubContainer) Children() []Control   { return c.children }
func (c *stubContainer) ClientArea() geom.Rect { return c.area }

// wantBounds fails the test when a control's bounds differ from the expected
// rectangle.
func wantBounds(t *testing.T, ctl Control, want geom.Rect) {
	t.Helper()
	if got := ctl.Bounds(); got != want {
		t.Errorf("%s bounds = %v, want %v", ctl.ID(), got, want)
	}
}
