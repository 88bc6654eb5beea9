package fig

import "fmt"

// Rect is an axis-aligned rectangle in Fig units. (X0, Y0) is the north-west
// corner and (X1, Y1) the south-east corner of a non-empty rectangle.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// emptyRect is the identity element for [Rect.Union].
var emptyRect = Rect{X0: maxInt, Y0: maxInt, X1: minInt, Y1: minInt}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d %d %d %d]", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Empty reports whether r encloses nothing, not even a single point.
func (r Rect) Empty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// NW returns the north-west corner.
func (r Rect) NW() Point { return Point{r.X0, r.Y0} }

// SE returns the south-east corner.
func (r Rect) SE() Point { return Point{r.X1, r.Y1} }

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Union returns the smallest rectangle enclosing r and o. The union with an
// empty rectangle is the other rectangle.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// an empty rectangle, yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	if r.Empty() {
		return Rect{pt.X, pt.Y, pt.X, pt.Y}
	}
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset returns r grown by d on every side. Negative values shrink it.
func (r Rect) Inset(d int) Rect {
	if r.Empty() {
		return r
	}
	return Rect{
		X0: r.X0 - d,
		Y0: r.Y0 - d,
		X1: r.X1 + d,
		Y1: r.Y1 + d,
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}
