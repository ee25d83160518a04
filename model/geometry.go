package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle given by two corners,
// (X0, Y0) and (X1, Y1). A well-formed rectangle has X0 <= X1 and
// Y0 <= Y1, but nothing in this package enforces that: malformed
// rectangles coming out of a document parser are carried through
// unchanged, and validation is the caller's responsibility.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsWellFormed reports whether both corner pairs are ordered
// (X0 <= X1 and Y0 <= Y1).
func (r Rect) IsWellFormed() bool {
	return r.X0 <= r.X1 && r.Y0 <= r.Y1
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Y1 < other.Y0 ||
		r.Y0 > other.Y1)
}

// Expand grows the rectangle by a margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X0: r.X0 - margin,
		Y0: r.Y0 - margin,
		X1: r.X1 + margin,
		Y1: r.Y1 + margin,
	}
}

// Transform is an axis-aligned affine transform: independent x and y
// scale factors followed by an offset. It projects coordinates from a
// document's native unit space into a target layout space, for example
// placing a source page inside a side-by-side report page.
type Transform struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// ApplyPoint maps a single point through the transform.
func (t Transform) ApplyPoint(p Point) Point {
	return Point{
		X: p.X*t.ScaleX + t.OffsetX,
		Y: p.Y*t.ScaleY + t.OffsetY,
	}
}

// Apply maps a rectangle through the transform. Both corners are mapped
// independently; a malformed rectangle stays malformed rather than being
// normalized, matching the pass-through contract of Rect.
func (t Transform) Apply(r Rect) Rect {
	return Rect{
		X0: r.X0*t.ScaleX + t.OffsetX,
		Y0: r.Y0*t.ScaleY + t.OffsetY,
		X1: r.X1*t.ScaleX + t.OffsetX,
		Y1: r.Y1*t.ScaleY + t.OffsetY,
	}
}

// Compose returns the transform equivalent to applying t first and then
// next: scales multiply, and t's offset is carried through next's scale.
func (t Transform) Compose(next Transform) Transform {
	return Transform{
		ScaleX:  t.ScaleX * next.ScaleX,
		ScaleY:  t.ScaleY * next.ScaleY,
		OffsetX: t.OffsetX*next.ScaleX + next.OffsetX,
		OffsetY: t.OffsetY*next.ScaleY + next.OffsetY,
	}
}

// IsIdentity returns true if the transform maps every point to itself.
func (t Transform) IsIdentity() bool {
	return t.ScaleX == 1 && t.ScaleY == 1 && t.OffsetX == 0 && t.OffsetY == 0
}
