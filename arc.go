package fig

import "math"

// ArcType distinguishes open arcs from pie wedges.
type ArcType int

const (
	ArcOpen     ArcType = 1
	ArcPieWedge ArcType = 2
)

// Arc directions.
const (
	Clockwise        = 0
	CounterClockwise = 1
)

// Arc is a circular arc through three points.
type Arc struct {
	Attrs
	Type     ArcType
	CapStyle int
	// Direction is [Clockwise] or [CounterClockwise], as seen on paper.
	Direction     int
	ForwardArrow  *Arrow
	BackwardArrow *Arrow
	// Center is not necessarily on the integer grid.
	Center   Vec2
	Points   [3]Point
	Comments []string
}

func (a *Arc) depth() int { return a.Depth }

// Radius returns the distance from the center to the first point.
func (a *Arc) Radius() float64 {
	return a.Points[0].Vec2().Sub(a.Center).Hypot()
}

// Angles returns the start angle and the signed sweep of the arc, in radians.
// Angles are measured counter-clockwise on paper, that is with the y axis
// flipped to point up.
func (a *Arc) Angles() (start, sweep float64) {
	angle := func(pt Point) float64 {
		v := pt.Vec2().Sub(a.Center)
		return math.Atan2(-v.Y, v.X)
	}
	start = angle(a.Points[0])
	end := angle(a.Points[2])
	sweep = end - start
	if a.Direction == CounterClockwise {
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		for sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	}
	return start, sweep
}

// sample returns the point of the arc's circle at angle th.
func (a *Arc) sample(th float64) Vec2 {
	r := a.Radius()
	sin, cos := math.Sincos(th)
	return a.Center.Add(Vec(r*cos, -r*sin))
}

// Bounds returns the box enclosing the arc, widened by half its thickness.
// Pie wedges include the center.
func (a *Arc) Bounds() Rect {
	r := emptyRect
	for _, pt := range a.Points {
		r = r.UnionPoint(pt)
	}
	start, sweep := a.Angles()
	lo, hi := start, start+sweep
	if lo > hi {
		lo, hi = hi, lo
	}
	// Include every axis extremum the sweep passes through.
	for q := math.Ceil(lo / (math.Pi / 2)); q*(math.Pi/2) <= hi; q++ {
		r = r.UnionPoint(a.sample(q * (math.Pi / 2)).Round())
	}
	if a.Type == ArcPieWedge {
		r = r.UnionPoint(a.Center.Round())
	}
	return r.Inset(int(a.Thickness / 2))
}
