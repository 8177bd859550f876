package geom

import (
	"fmt"
	"math"
)

// Rect represents a rectangle by its four edge coordinates.
// Edges are not required to be sorted.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// NewRect creates a new Rect from edges in left, top, right, bottom order.
func NewRect(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// NewRectXYWH creates a new Rect with its top-left corner at (x, y) and the given size.
func NewRectXYWH(x, y, width, height float32) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// X returns the left edge.
func (r Rect) X() float32 {
	return r.Left
}

// Y returns the top edge.
func (r Rect) Y() float32 {
	return r.Top
}

// Width returns Right - Left. It is negative for horizontally inverted rects.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns Bottom - Top. It is negative for vertically inverted rects.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has zero or negative area.
// A rect with a NaN edge is empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// IsFinite returns true if no edge is infinite or NaN.
func (r Rect) IsFinite() bool {
	return isFinite(r.Left) && isFinite(r.Top) && isFinite(r.Right) && isFinite(r.Bottom)
}

// Offset moves the rectangle by (dx, dy).
func (r *Rect) Offset(dx, dy float32) {
	r.Left += dx
	r.Top += dy
	r.Right += dx
	r.Bottom += dy
}

// OffsetTo moves the rectangle so its top-left corner is (newLeft, newTop).
// Right and Bottom move by the same delta, so the size is kept.
func (r *Rect) OffsetTo(newLeft, newTop float32) {
	r.Right += newLeft - r.Left
	r.Bottom += newTop - r.Top
	r.Left = newLeft
	r.Top = newTop
}

// Offsetted returns a copy of r moved by (dx, dy).
func (r Rect) Offsetted(dx, dy float32) Rect {
	r.Offset(dx, dy)
	return r
}

// OffsettedTo returns a copy of r with its top-left corner at (x, y).
func (r Rect) OffsettedTo(x, y float32) Rect {
	r.OffsetTo(x, y)
	return r
}

// String formats the edges as "left, top, right, bottom".
func (r Rect) String() string {
	return fmt.Sprintf("%g, %g, %g, %g", r.Left, r.Top, r.Right, r.Bottom)
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
