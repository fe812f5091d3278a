package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(10, -2)

	if got := a.Add(b); got != Pt(13, 2) {
		t.Errorf("Add = %v, want (13, 2)", got)
	}
	if got := a.Sub(b); got != Pt(-7, 6) {
		t.Errorf("Sub = %v, want (-7, 6)", got)
	}
}

func TestPointIn(t *testing.T) {
	r := RectOf(10, 10, 20, 20)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(15, 15), true},
		{"top left corner", Pt(10, 10), true},
		{"right edge excluded", Pt(30, 15), false},
		{"bottom edge excluded", Pt(15, 30), false},
		{"outside", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.In(r); got != tt.want {
				t.Errorf("In = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := RectOf(5, 7, 100, 50)

	if got := r.Right(); got != 105 {
		t.Errorf("Right = %d, want 105", got)
	}
	if got := r.Bottom(); got != 57 {
		t.Errorf("Bottom = %d, want 57", got)
	}
	if got := r.Size(); got != Pt(100, 50) {
		t.Errorf("Size = %v, want (100, 50)", got)
	}
	if got := r.Origin(); got != Pt(5, 7) {
		t.Errorf("Origin = %v, want (5, 7)", got)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		margin int
		want   Rect
	}{
		{"uniform", RectOf(0, 0, 100, 80), 10, RectOf(10, 10, 80, 60)},
		{"zero margin", RectOf(5, 5, 40, 40), 0, RectOf(5, 5, 40, 40)},
		{"clamps to empty", RectOf(0, 0, 10, 10), 8, RectOf(8, 8, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.margin); got != tt.want {
				t.Errorf("Inset(%d) = %v, want %v", tt.margin, got, tt.want)
			}
		})
	}
}

func TestRectInsetBy(t *testing.T) {
	r := RectOf(0, 0, 100, 100)
	got := r.InsetBy(5, 10, 15, 20)
	want := RectOf(5, 10, 80, 70)
	if got != want {
		t.Errorf("InsetBy = %v, want %v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlapping", RectOf(0, 0, 10, 10), RectOf(5, 5, 10, 10), RectOf(0, 0, 15, 15)},
		{"disjoint", RectOf(0, 0, 5, 5), RectOf(20, 20, 5, 5), RectOf(0, 0, 25, 25)},
		{"empty left", Rect{}, RectOf(3, 3, 4, 4), RectOf(3, 3, 4, 4)},
		{"empty right", RectOf(3, 3, 4, 4), Rect{}, RectOf(3, 3, 4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlapping", RectOf(0, 0, 10, 10), RectOf(5, 5, 10, 10), RectOf(5, 5, 5, 5)},
		{"disjoint", RectOf(0, 0, 5, 5), RectOf(20, 20, 5, 5), Rect{}},
		{"touching edges", RectOf(0, 0, 5, 5), RectOf(5, 0, 5, 5), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !RectOf(0, 0, 0, 10).IsEmpty() {
		t.Error("zero width should be empty")
	}
	if !RectOf(0, 0, 10, -1).IsEmpty() {
		t.Error("negative height should be empty")
	}
	if RectOf(0, 0, 1, 1).IsEmpty() {
		t.Error("1x1 should not be empty")
	}
}

func TestStringForms(t *testing.T) {
	if got := Pt(1, 2).String(); got != "(1, 2)" {
		t.Errorf("Point.String = %q", got)
	}
	if got := RectOf(1, 2, 3, 4).String(); got != "(1, 2, 3, 4)" {
		t.Errorf("Rect.String = %q", got)
	}
}
