package fig

import (
	"errors"
	"testing"
)

func TestSplineXSpline(t *testing.T) {
	f := func(typ SplineType, want []float64, wantType SplineType) {
		t.Helper()
		s := &Spline{Type: typ, Points: []Point{Pt(0, 0), Pt(10, 10), Pt(20, 0)}}
		x := s.XSpline()
		if x.Type != wantType {
			t.Errorf("got type %d, want %d", x.Type, wantType)
		}
		got := make([]float64, len(x.Controls))
		for i, c := range x.Controls {
			got[i] = c.S
		}
		diff(t, want, got)
	}
	f(SplineOpenApprox, []float64{0, 1, 0}, SplineOpenXSpline)
	f(SplineClosedApprox, []float64{1, 1, 1}, SplineClosedXSpline)
	f(SplineOpenInterp, []float64{0, -1, 0}, SplineOpenXSpline)
	f(SplineClosedInterp, []float64{-1, -1, -1}, SplineClosedXSpline)

	// Shape factors of X-splines are kept.
	s := &Spline{
		Type:     SplineClosedXSpline,
		Points:   []Point{Pt(0, 0), Pt(10, 10), Pt(20, 0)},
		Controls: []ControlPoint{{S: 0.5}, {S: -0.5}, {S: 0}},
	}
	x := s.XSpline()
	diff(t, s.Controls, x.Controls)
	// The result doesn't share memory with the original.
	x.Points[0] = Pt(-1, -1)
	if s.Points[0] != Pt(0, 0) {
		t.Error("XSpline modified the original spline")
	}
}

func TestCompileSpline(t *testing.T) {
	s := &Spline{
		Attrs:    Attrs{Thickness: 15, PenColor: Blue, Depth: 10, FillStyle: Unfilled},
		Type:     SplineOpenApprox,
		CapStyle: CapRound,
		Points:   []Point{Pt(0, 0), Pt(600, 900), Pt(1200, 0)},
		Comments: []string{"a curve"},
	}
	l, err := CompileSpline(s.XSpline(), HighPrecision)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if l.Type != LinePolyline {
		t.Errorf("got type %s, want polyline", l.Type)
	}
	if l.JoinStyle != JoinRound {
		t.Errorf("got join style %d, want round", l.JoinStyle)
	}
	diff(t, s.Attrs, l.Attrs)
	diff(t, s.Comments, l.Comments)
	if l.CapStyle != CapRound {
		t.Errorf("got cap style %d, want round", l.CapStyle)
	}
	n := len(l.Points)

	// Arrowheads cost points next to their tip, but never the tip itself.
	s.ForwardArrow = &Arrow{Type: 1, Width: 60, Height: 120}
	s.BackwardArrow = &Arrow{Type: 2, Width: 60, Height: 120}
	l, err = CompileSpline(s.XSpline(), HighPrecision)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, want := len(l.Points), n-2*arrowTrim; got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
	if first, last := l.Points[0], l.Points[len(l.Points)-1]; first != Pt(0, 0) || last != Pt(1200, 0) {
		t.Errorf("got curve from %v to %v", first, last)
	}
	diff(t, s.ForwardArrow, l.ForwardArrow)
	if l.ForwardArrow == s.ForwardArrow {
		t.Error("arrows should be copied, not shared")
	}

	// Closed splines become polygons.
	s.Type = SplineClosedInterp
	l, err = CompileSpline(s.XSpline(), HighPrecision)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if l.Type != LinePolygon {
		t.Errorf("got type %s, want polygon", l.Type)
	}
	if l.Points[0] != l.Points[len(l.Points)-1] {
		t.Error("polygon isn't closed")
	}
}

func TestCompileSplineShortWithArrows(t *testing.T) {
	s := &Spline{
		Type:          SplineOpenXSpline,
		ForwardArrow:  &Arrow{},
		BackwardArrow: &Arrow{},
		Points:        []Point{Pt(0, 0), Pt(100, 0)},
		Controls:      make([]ControlPoint, 2),
	}
	l, err := CompileSpline(s, HighPrecision)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	diff(t, []Point{Pt(0, 0), Pt(100, 0)}, l.Points)
}

func TestCompileSplineErrors(t *testing.T) {
	s := &Spline{Type: SplineOpenXSpline, Points: []Point{Pt(0, 0), Pt(10, 0)}}
	if _, err := CompileSpline(s, HighPrecision); err == nil {
		t.Error("expected an error for missing shape factors")
	}

	s = &Spline{Type: SplineClosedXSpline, Points: []Point{Pt(0, 0), Pt(10, 0)}, Controls: make([]ControlPoint, 2)}
	l, err := CompileSpline(s, HighPrecision)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
	if l != nil {
		t.Errorf("got line %v, want none", l)
	}
}

func TestTrimAfterStart(t *testing.T) {
	pts := func(n int) []Point {
		out := make([]Point, n)
		for i := range out {
			out[i] = Pt(i, 0)
		}
		return out
	}
	diff(t, []Point{Pt(0, 0), Pt(3, 0), Pt(4, 0)}, trimAfterStart(pts(5), 2))
	diff(t, []Point{Pt(0, 0), Pt(2, 0)}, trimAfterStart(pts(3), 2))
	diff(t, []Point{Pt(0, 0), Pt(1, 0)}, trimAfterStart(pts(2), 2))
}
