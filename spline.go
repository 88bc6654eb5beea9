package fig

import (
	"fmt"
	"slices"
)

// SplineType encodes whether a spline is open or closed and how it relates to
// its control points. Bit 0 is set for closed splines.
type SplineType int

const (
	SplineOpenApprox    SplineType = 0
	SplineClosedApprox  SplineType = 1
	SplineOpenInterp    SplineType = 2
	SplineClosedInterp  SplineType = 3
	SplineOpenXSpline   SplineType = 4
	SplineClosedXSpline SplineType = 5
)

// Closed reports whether the spline is a closed curve.
func (typ SplineType) Closed() bool { return typ&1 == 1 }

// Approximated reports whether the curve only passes near its points.
func (typ SplineType) Approximated() bool { return typ == SplineOpenApprox || typ == SplineClosedApprox }

// Interpolated reports whether the curve passes through its points.
func (typ SplineType) Interpolated() bool { return typ == SplineOpenInterp || typ == SplineClosedInterp }

// XSpline reports whether every point carries its own shape factor.
func (typ SplineType) XSpline() bool { return typ == SplineOpenXSpline || typ == SplineClosedXSpline }

// Shape factors of X-spline control points.
const (
	// ShapeInterpolated makes the curve pass through a point, smoothly.
	ShapeInterpolated = -1.0
	// ShapeSharp makes the curve pass through a point, with a corner.
	ShapeSharp = 0.0
	// ShapeApproximated makes a point only attract the curve.
	ShapeApproximated = 1.0
)

// ControlPoint is the control data of one spline point.
//
// S is the X-spline shape factor in [-1, 1]. LX, LY, RX and RY are the tangent
// handles of interpolated splines in files older than 3.2, and are zero
// otherwise.
type ControlPoint struct {
	S      float64
	LX, LY float64
	RX, RY float64
}

// Spline is a curve defined by control points.
//
// Files of version 3.2 and later only contain X-splines, which [Read] turns
// into lines as it reads them. Splines of older files are kept as they are;
// Controls is empty for approximated splines and has one entry per point
// otherwise.
type Spline struct {
	Attrs
	Type          SplineType
	CapStyle      int
	ForwardArrow  *Arrow
	BackwardArrow *Arrow
	Points        []Point
	Controls      []ControlPoint
	Comments      []string
}

func (s *Spline) depth() int { return s.Depth }

// Bounds returns the box enclosing the control points, widened by half the
// spline's thickness. Approximated curves lie within their control polygon;
// interpolated curves may overshoot it slightly.
func (s *Spline) Bounds() Rect {
	r := emptyRect
	for _, pt := range s.Points {
		r = r.UnionPoint(pt)
	}
	return r.Inset(int(s.Thickness / 2))
}

// XSpline returns an equivalent X-spline, with one shape factor per point.
// The shape factors of X-splines are kept. Other splines get the factor of
// their kind on every point. Open curves always get sharp end points, so that
// the curve starts and ends exactly at them.
func (s *Spline) XSpline() *Spline {
	x := *s
	x.Comments = slices.Clone(s.Comments)
	x.Points = slices.Clone(s.Points)
	x.Controls = make([]ControlPoint, len(s.Points))

	shape := ShapeApproximated
	if s.Type.Interpolated() {
		shape = ShapeInterpolated
	}
	for i := range x.Controls {
		if s.Type.XSpline() && len(s.Controls) == len(s.Points) {
			x.Controls[i].S = s.Controls[i].S
		} else {
			x.Controls[i].S = shape
		}
	}
	if !s.Type.Closed() && len(x.Controls) > 0 {
		x.Controls[0].S = ShapeSharp
		x.Controls[len(x.Controls)-1].S = ShapeSharp
	}
	if s.Type.Closed() {
		x.Type = SplineClosedXSpline
	} else {
		x.Type = SplineOpenXSpline
	}
	return &x
}

// arrowTrim is the number of curve points dropped next to an end carrying an
// arrowhead. Near sharp end points the evaluator places points densely, and
// arrowheads should follow the direction of the curve, not that of the last
// few rounding steps.
const arrowTrim = 2

// CompileSpline converts an X-spline into a polyline, or a polygon for closed
// curves, that has the same appearance. s must have one control point per
// point; use [Spline.XSpline] for other splines.
//
// Evaluating the curve may exceed [MaxPoints]. In that case CompileSpline
// still returns the truncated line, together with [ErrTooManyPoints].
func CompileSpline(s *Spline, precision float64) (*Line, error) {
	if len(s.Controls) != len(s.Points) {
		return nil, fmt.Errorf("spline has %d points but %d control points", len(s.Points), len(s.Controls))
	}
	shape := make([]float64, len(s.Controls))
	for i, c := range s.Controls {
		shape[i] = c.S
	}

	var (
		pts     []Point
		evalErr error
	)
	closed := s.Type.Closed()
	if closed {
		pts, evalErr = EvalClosedXSpline(s.Points, shape, precision)
	} else {
		pts, evalErr = EvalOpenXSpline(s.Points, shape, precision)
	}
	if len(pts) == 0 {
		if evalErr == nil {
			evalErr = ErrTooFewPoints
		}
		return nil, evalErr
	}

	if !closed {
		if s.BackwardArrow != nil {
			pts = trimAfterStart(pts, arrowTrim)
		}
		if s.ForwardArrow != nil {
			slices.Reverse(pts)
			pts = trimAfterStart(pts, arrowTrim)
			slices.Reverse(pts)
		}
	}

	l := &Line{
		Attrs:         s.Attrs,
		Type:          LinePolyline,
		JoinStyle:     JoinRound,
		CapStyle:      s.CapStyle,
		ForwardArrow:  cloneArrow(s.ForwardArrow),
		BackwardArrow: cloneArrow(s.BackwardArrow),
		Points:        pts,
		Comments:      slices.Clone(s.Comments),
	}
	if closed {
		l.Type = LinePolygon
	}
	return l, evalErr
}

// trimAfterStart removes up to n points following the first one, keeping at
// least two points.
func trimAfterStart(pts []Point, n int) []Point {
	n = min(n, len(pts)-2)
	if n <= 0 {
		return pts
	}
	return slices.Delete(pts, 1, 1+n)
}
