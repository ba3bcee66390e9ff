// Package geom provides the small float64 geometry vocabulary shared by the
// videotext packages: sizes, points and rectangles in layout units.
package geom

import (
	"image"
	"math"
)

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Degenerate reports whether the size has no positive area.
// NaN dimensions count as degenerate.
func (s Size) Degenerate() bool {
	return !(s.W > 0) || !(s.H > 0)
}

// Mul returns the size scaled by f.
func (s Size) Mul(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}

// Ceil returns the integer pixel dimensions covering s.
func (s Size) Ceil() (w, h int) {
	return int(math.Ceil(s.W)), int(math.Ceil(s.H))
}

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool {
	return r.Size().Degenerate()
}

// Mul scales origin and size by f.
func (r Rect) Mul(f float64) Rect {
	return Rect{X: r.X * f, Y: r.Y * f, W: r.W * f, H: r.H * f}
}

// Div scales origin and size by 1/f. A zero f returns r unchanged.
func (r Rect) Div(f float64) Rect {
	if f == 0 {
		return r
	}
	return Rect{X: r.X / f, Y: r.Y / f, W: r.W / f, H: r.H / f}
}

// Translate offsets the origin by p.
func (r Rect) Translate(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Image returns the smallest integer rectangle containing r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.MaxX())),
		int(math.Ceil(r.MaxY())),
	)
}
