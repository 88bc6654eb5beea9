package fig

import "math"

// EllipseType records how the user drew an ellipse. It does not change the
// geometry, which is always given by center, radii and angle.
type EllipseType int

const (
	EllipseByRadii     EllipseType = 1
	EllipseByDiameters EllipseType = 2
	CircleByRadius     EllipseType = 3
	CircleByDiameter   EllipseType = 4
)

// Ellipse is an ellipse or circle, possibly rotated.
type Ellipse struct {
	Attrs
	Type      EllipseType
	Direction int
	// Angle of the x radius in radians, counter-clockwise on paper.
	Angle  float64
	Center Point
	Radii  Point
	// Start and End are the points the user dragged between.
	Start    Point
	End      Point
	Comments []string
}

func (e *Ellipse) depth() int { return e.Depth }

// Bounds returns a tight bounding box of the ellipse, widened by half its
// thickness.
func (e *Ellipse) Bounds() Rect {
	// The extents of a rotated ellipse follow from the images of the two
	// radius vectors, see
	// https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
	rx := math.Abs(float64(e.Radii.X))
	ry := math.Abs(float64(e.Radii.Y))
	sin, cos := math.Sincos(e.Angle)
	a2 := (rx * cos) * (rx * cos)
	b2 := (rx * sin) * (rx * sin)
	c2 := (ry * sin) * (ry * sin)
	d2 := (ry * cos) * (ry * cos)
	rangeX := int(math.Ceil(math.Sqrt(a2 + c2)))
	rangeY := int(math.Ceil(math.Sqrt(b2 + d2)))
	r := Rect{
		X0: e.Center.X - rangeX,
		Y0: e.Center.Y - rangeY,
		X1: e.Center.X + rangeX,
		Y1: e.Center.Y + rangeY,
	}
	return r.Inset(int(e.Thickness / 2))
}
