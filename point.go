package fig

import (
	"fmt"
	"math"
)

// Point is a location in Fig units. Most files use 1200 units per inch, see
// [Settings.Resolution].
type Point struct {
	X int
	Y int
}

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d, %d)", pt.X, pt.Y)
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: float64(pt.X - o.X),
		Y: float64(pt.Y - o.Y),
	}
}

// Translate returns pt moved by (dx, dy).
func (pt Point) Translate(dx, dy int) Point {
	return Point{
		X: pt.X + dx,
		Y: pt.Y + dy,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// Vec2 converts the point to a vector from the origin.
func (pt Point) Vec2() Vec2 {
	return Vec2{X: float64(pt.X), Y: float64(pt.Y)}
}

// roundPt rounds half away from zero.
func roundPt(x, y float64) Point {
	return Point{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
	}
}
