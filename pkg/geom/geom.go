// Package geom provides the integer geometry primitives shared by the layout
// engine: points (used interchangeably as positions and sizes) and
// rectangles (client areas and control bounds).
//
// Both types are plain value types with structural equality. All coordinates
// are in whatever unit the surrounding toolkit uses (typically pixels); the
// engine never interprets them beyond arithmetic.
package geom

import "fmt"

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Point is an (X, Y) coordinate pair. It doubles as a size, in which case
// X is a width and Y a height (the convention the layout managers use for
// preferred sizes).
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In reports whether the point lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// String returns the point in "(x, y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle described by its top-left corner and its
// extent. A rectangle with W <= 0 or H <= 0 is empty.
type Rect struct {
	X, Y, W, H int
}

// RectOf is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func RectOf(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Size returns the rectangle's extent as a Point.
func (r Rect) Size() Point { return Point{X: r.W, Y: r.H} }

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the right or bottom edge are outside, matching half-open
// interval semantics.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset returns the rectangle shrunk by the given margin on every side.
// The extent is clamped at zero so an oversized inset yields an empty
// rectangle rather than a negative one.
func (r Rect) Inset(margin int) Rect {
	return r.InsetBy(margin, margin, margin, margin)
}

// InsetBy returns the rectangle shrunk by individual margins per side.
// Extents are clamped at zero.
func (r Rect) InsetBy(left, top, right, bottom int) Rect {
	out := Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle does not contribute.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), other.Right()) - x,
		H: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Intersect returns the overlap of r and other, or the zero Rect if they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := min(r.Right(), other.Right()) - x
	h := min(r.Bottom(), other.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// String returns the rectangle in "(x, y, w, h)" form.
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}
