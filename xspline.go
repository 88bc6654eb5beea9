package fig

import (
	"fmt"
	"math"
)

// Precisions for [EvalOpenXSpline] and [EvalClosedXSpline]. Smaller values
// produce more points.
const (
	HighPrecision = 0.5
	LowPrecision  = 1.0
)

// MinPrecision is the smallest precision in effect. Smaller positive
// precisions are raised to it.
const MinPrecision = 0.01

// MaxSplineStep is the largest parameter increment used when sampling one
// segment of an X-spline. Every segment gets at least 1/MaxSplineStep samples
// unless it is a straight line.
const MaxSplineStep = 0.2

// MaxPoints is the largest number of points an X-spline evaluates to.
const MaxPoints = 25000

// initialPoints is the initial capacity of the point buffer.
const initialPoints = 300

// pointBuffer accumulates the points of one curve.
type pointBuffer struct {
	pts  []Point
	full bool
}

// add appends pt unless it repeats the previous point. It reports false once
// the buffer holds MaxPoints points.
func (b *pointBuffer) add(pt Point) bool {
	if n := len(b.pts); n > 0 && b.pts[n-1] == pt {
		return true
	}
	if len(b.pts) >= MaxPoints {
		b.full = true
		return false
	}
	b.pts = append(b.pts, pt)
	return true
}

func (b *pointBuffer) result() ([]Point, error) {
	if b.full {
		return b.pts, ErrTooManyPoints
	}
	return b.pts, nil
}

// X-splines, as described by Blanc and Schlick in "X-splines: A Spline Model
// Designed for the End-User" (SIGGRAPH 1995). Each segment between P1 and P2
// blends the four points P0 to P3 with weights that depend on the shape
// factors s1 and s2 of P1 and P2.

// qTransform maps a shape factor to the q parameter of gBlend and hBlend.
func qTransform(s float64) float64 { return -s }

// fBlend is the blending function of positive shape factors.
func fBlend(numerator, denominator float64) float64 {
	p := 2 * denominator * denominator
	u := numerator / denominator
	return u * u * u * (10 - p + (2*p-15)*u + (6-p)*u*u)
}

// gBlend and hBlend are the blending functions of negative shape factors,
// with p fixed at 2.
func gBlend(u, q float64) float64 {
	const p = 2
	return u * (q + u*(2*q+u*(10-12*q-p+u*(2*p+14*q-15+u*(6-5*q-p)))))
}

func hBlend(u, q float64) float64 {
	u2 := u * u
	return u * (q + u*(2*q+u2*(-2*q-u*q)))
}

func negativeS1Influence(t, s1 float64, a0, a2 *float64) {
	*a0 = hBlend(-t, qTransform(s1))
	*a2 = gBlend(t, qTransform(s1))
}

func negativeS2Influence(t, s2 float64, a1, a3 *float64) {
	*a1 = gBlend(1-t, qTransform(s2))
	*a3 = hBlend(t-1, qTransform(s2))
}

// positiveS1Influence and positiveS2Influence place the knots of the global
// B-spline-like basis relative to segment k.
func positiveS1Influence(k, t, s1 float64, a0, a2 *float64) {
	tk := k + 1 + s1
	if t+k+1 < tk {
		*a0 = fBlend(t+k+1-tk, k-tk)
	} else {
		*a0 = 0
	}

	tk = k + 1 - s1
	*a2 = fBlend(t+k+1-tk, k+2-tk)
}

func positiveS2Influence(k, t, s2 float64, a1, a3 *float64) {
	tk := k + 2 + s2
	*a1 = fBlend(t+k+1-tk, k+1-tk)

	tk = k + 2 - s2
	if t+k+1 > tk {
		*a3 = fBlend(t+k+1-tk, k+3-tk)
	} else {
		*a3 = 0
	}
}

// xsegment is the part of an X-spline between p1 and p2.
type xsegment struct {
	k              int
	p0, p1, p2, p3 Point
	s1, s2         float64
}

// weights returns the blending weights of p0 to p3 at t.
func (seg *xsegment) weights(t float64) [4]float64 {
	var a [4]float64
	k := float64(seg.k)
	if seg.s1 < 0 {
		negativeS1Influence(t, seg.s1, &a[0], &a[2])
	} else {
		positiveS1Influence(k, t, seg.s1, &a[0], &a[2])
	}
	if seg.s2 < 0 {
		negativeS2Influence(t, seg.s2, &a[1], &a[3])
	} else {
		positiveS2Influence(k, t, seg.s2, &a[1], &a[3])
	}
	return a
}

// eval returns the point of the segment at t. The weights of X-splines do
// not sum to one, so the weighted sum is normalized.
func (seg *xsegment) eval(t float64) Point {
	a := seg.weights(t)
	sum := a[0] + a[1] + a[2] + a[3]
	if sum == 0 {
		return seg.p1
	}
	x := a[0]*float64(seg.p0.X) + a[1]*float64(seg.p1.X) + a[2]*float64(seg.p2.X) + a[3]*float64(seg.p3.X)
	y := a[0]*float64(seg.p0.Y) + a[1]*float64(seg.p1.Y) + a[2]*float64(seg.p2.Y) + a[3]*float64(seg.p3.Y)
	return roundPt(x/sum, y/sum)
}

// linear reports whether both shape factors are sharp, in which case the
// segment is the straight line from p1 to p2.
func (seg *xsegment) linear() bool {
	return seg.s1 == 0 && seg.s2 == 0
}

// step estimates the parameter increment for sampling the segment. Long
// segments and segments that bend sharply get smaller steps. The result is
// always in (0, MaxSplineStep].
func (seg *xsegment) step(precision float64) float64 {
	precision = max(precision, MinPrecision)
	start := seg.eval(0)
	mid := seg.eval(0.5)
	end := seg.eval(1)

	// The angle start-mid-end approximates the curvature of the segment.
	v1 := start.Sub(mid)
	v2 := end.Sub(mid)
	var cos float64
	if l := math.Sqrt(v1.Hypot2() * v2.Hypot2()); l != 0 {
		cos = v1.Dot(v2) / l
	}

	dist := int(end.Distance(start))
	n := int(math.Sqrt(float64(dist)) / 2)
	n += int((1 + cos) * 10)

	step := MaxSplineStep
	if n != 0 {
		step = precision / float64(n)
	}
	if step > MaxSplineStep || step <= 0 {
		step = MaxSplineStep
	}
	return step
}

// emit appends the samples of the segment, excluding t = 1, which is the
// start of the following segment.
func (seg *xsegment) emit(b *pointBuffer, precision float64) bool {
	if seg.linear() {
		return b.add(seg.p1)
	}
	step := seg.step(precision)
	for i := 0; float64(i)*step < 1; i++ {
		if !b.add(seg.eval(float64(i) * step)) {
			return false
		}
	}
	return true
}

// checkPrecision validates a precision and raises it to [MinPrecision].
func checkPrecision(precision float64) (float64, error) {
	if !(precision > 0) || math.IsInf(precision, 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrecision, precision)
	}
	return max(precision, MinPrecision), nil
}

func checkShape(pts []Point, shape []float64, minPoints int) error {
	if len(pts) < minPoints || len(shape) != len(pts) {
		return ErrTooFewPoints
	}
	return nil
}

// EvalOpenXSpline approximates the open X-spline with control points pts and
// shape factors shape by a polyline. The curve starts at the first and ends
// at the last point. Consecutive duplicate points are dropped.
//
// It needs at least two points and one shape factor per point. Two points
// always evaluate to themselves. The precision has to be positive and finite. If the curve needs more than [MaxPoints]
// points, the points computed so far are returned with [ErrTooManyPoints].
func EvalOpenXSpline(pts []Point, shape []float64, precision float64) ([]Point, error) {
	precision, err := checkPrecision(precision)
	if err != nil {
		return nil, err
	}
	if err := checkShape(pts, shape, 2); err != nil {
		return nil, err
	}
	n := len(pts)
	if n == 2 {
		return []Point{pts[0], pts[1]}, nil
	}

	b := &pointBuffer{pts: make([]Point, 0, initialPoints)}
	seg := func(k, i0, i1, i2, i3 int) bool {
		s := xsegment{
			k:  k,
			p0: pts[i0], p1: pts[i1], p2: pts[i2], p3: pts[i3],
			s1: shape[i1], s2: shape[i2],
		}
		return s.emit(b, precision)
	}

	// The first point is used twice so that the first segment starts at it.
	i0, i1, i2, i3 := 0, 0, 1, 2
	k := 0
	for ; ; k++ {
		if !seg(k, i0, i1, i2, i3) {
			return b.result()
		}
		if i3 == n-1 {
			break
		}
		i0, i1, i2, i3 = i1, i2, i3, i3+1
	}
	// Likewise the last point, for the last segment.
	if !seg(k, i1, i2, i3, i3) {
		return b.result()
	}
	b.add(pts[n-1])
	return b.result()
}

// EvalClosedXSpline approximates the closed X-spline with control points pts
// and shape factors shape by a polygon. The first point is repeated at the
// end, so the result is explicitly closed.
//
// It needs at least three points and one shape factor per point. If the
// curve needs more than [MaxPoints] points, the points computed so far are
// returned with [ErrTooManyPoints]; they are closed as well.
func EvalClosedXSpline(pts []Point, shape []float64, precision float64) ([]Point, error) {
	precision, err := checkPrecision(precision)
	if err != nil {
		return nil, err
	}
	if err := checkShape(pts, shape, 3); err != nil {
		return nil, err
	}
	n := len(pts)
	b := &pointBuffer{pts: make([]Point, 0, initialPoints)}
	// Segment k runs from point k+1 to point k+2. Wrapping around reuses the
	// first three points.
	for k := range n {
		s := xsegment{
			k:  k,
			p0: pts[k],
			p1: pts[(k+1)%n],
			p2: pts[(k+2)%n],
			p3: pts[(k+3)%n],
			s1: shape[(k+1)%n],
			s2: shape[(k+2)%n],
		}
		if !s.emit(b, precision) {
			break
		}
	}
	first := b.pts[0]
	if !b.add(first) {
		b.pts[len(b.pts)-1] = first
	}
	return b.result()
}
