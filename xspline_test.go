package fig

import (
	"errors"
	"math"
	"testing"
)

func TestEvalTwoPoints(t *testing.T) {
	pts := []Point{Pt(10, 20), Pt(300, -40)}
	for _, s := range []float64{ShapeInterpolated, ShapeSharp, ShapeApproximated} {
		got, err := EvalOpenXSpline(pts, []float64{s, s}, HighPrecision)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		diff(t, pts, got)
	}
}

func TestEvalTooFewPoints(t *testing.T) {
	if _, err := EvalOpenXSpline([]Point{Pt(0, 0)}, []float64{0}, HighPrecision); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
	if _, err := EvalClosedXSpline([]Point{Pt(0, 0), Pt(1, 1)}, []float64{1, 1}, HighPrecision); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
	// One shape factor per point.
	if _, err := EvalOpenXSpline([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, []float64{0, 0}, HighPrecision); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
}

func TestEvalSharp(t *testing.T) {
	// Sharp control points turn the curve into its control polygon.
	pts := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
	got, err := EvalOpenXSpline(pts, []float64{0, 0, 0, 0}, HighPrecision)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	diff(t, pts, got)

	got, err = EvalClosedXSpline(pts, []float64{0, 0, 0, 0}, HighPrecision)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	diff(t, []Point{Pt(100, 0), Pt(100, 100), Pt(0, 100), Pt(0, 0), Pt(100, 0)}, got)
}

func TestEvalOpen(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(200, 400), Pt(600, 400), Pt(800, 0)}
	for _, s := range []float64{ShapeInterpolated, -0.5, 0.5, ShapeApproximated} {
		shape := []float64{0, s, s, 0}
		got, err := EvalOpenXSpline(pts, shape, HighPrecision)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got[0] != pts[0] || got[len(got)-1] != pts[3] {
			t.Errorf("s=%v: curve runs from %v to %v, want from %v to %v", s, got[0], got[len(got)-1], pts[0], pts[3])
		}
		if len(got) <= len(pts) {
			t.Errorf("s=%v: got only %d points", s, len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i] == got[i-1] {
				t.Errorf("s=%v: point %v repeats at index %d", s, got[i], i)
			}
		}
	}

	// Interpolating curves pass through their control points.
	got, _ := EvalOpenXSpline(pts, []float64{0, -1, -1, 0}, HighPrecision)
	for _, pt := range pts {
		found := false
		for _, p := range got {
			if p.Distance(pt) <= 1 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("interpolating curve misses %v", pt)
		}
	}
}

func TestEvalPrecision(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(2000, 4000), Pt(6000, 4000), Pt(8000, 0)}
	shape := []float64{0, 1, 1, 0}
	high, _ := EvalOpenXSpline(pts, shape, HighPrecision)
	low, _ := EvalOpenXSpline(pts, shape, LowPrecision)
	if len(high) <= len(low) {
		t.Errorf("high precision produced %d points, low precision %d", len(high), len(low))
	}
}

func TestEvalInvalidPrecision(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(600, 900), Pt(1200, 0)}
	for _, p := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		if _, err := EvalOpenXSpline(pts, []float64{0, 1, 0}, p); !errors.Is(err, ErrInvalidPrecision) {
			t.Errorf("precision %v: got error %v, want %v", p, err, ErrInvalidPrecision)
		}
		if _, err := EvalClosedXSpline(pts, []float64{1, 1, 1}, p); !errors.Is(err, ErrInvalidPrecision) {
			t.Errorf("precision %v: got error %v, want %v", p, err, ErrInvalidPrecision)
		}
	}

	// Tiny precisions behave like MinPrecision.
	tiny, err := EvalOpenXSpline(pts, []float64{0, 1, 0}, 1e-20)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	floor, _ := EvalOpenXSpline(pts, []float64{0, 1, 0}, MinPrecision)
	diff(t, floor, tiny)

	// Sampling a segment terminates even when asked for a tiny step.
	seg := xsegment{p0: Pt(0, 0), p1: Pt(0, 0), p2: Pt(600, 900), p3: Pt(1200, 0), s1: 0, s2: 1}
	b := &pointBuffer{}
	if !seg.emit(b, 1e-20) {
		t.Fatal("segment overflowed the point buffer")
	}
	if len(b.pts) == 0 {
		t.Error("got no points")
	}
}

func TestEvalClosed(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1000, 0), Pt(1000, 1000), Pt(0, 1000)}
	for _, s := range []float64{ShapeInterpolated, ShapeApproximated} {
		got, err := EvalClosedXSpline(pts, []float64{s, s, s, s}, HighPrecision)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got[0] != got[len(got)-1] {
			t.Errorf("s=%v: curve isn't closed: %v != %v", s, got[0], got[len(got)-1])
		}
	}
}

func TestEvalTooManyPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(4e9, 4e9), Pt(8e9, 0)}
	got, err := EvalOpenXSpline(pts, []float64{0, 1, 0}, HighPrecision)
	if !errors.Is(err, ErrTooManyPoints) {
		t.Fatalf("got error %v, want %v", err, ErrTooManyPoints)
	}
	if len(got) != MaxPoints {
		t.Errorf("got %d points, want %d", len(got), MaxPoints)
	}

	pts = append(pts, Pt(4e9, -4e9))
	got, err = EvalClosedXSpline(pts, []float64{1, 1, 1, 1}, HighPrecision)
	if !errors.Is(err, ErrTooManyPoints) {
		t.Fatalf("got error %v, want %v", err, ErrTooManyPoints)
	}
	if len(got) != MaxPoints {
		t.Errorf("got %d points, want %d", len(got), MaxPoints)
	}
	if got[0] != got[len(got)-1] {
		t.Errorf("truncated curve isn't closed: %v != %v", got[0], got[len(got)-1])
	}
}

func TestSegmentStep(t *testing.T) {
	segs := []xsegment{
		// Degenerate segments.
		{p0: Pt(0, 0), p1: Pt(0, 0), p2: Pt(0, 0), p3: Pt(0, 0), s1: 1, s2: 1},
		{p0: Pt(0, 0), p1: Pt(0, 0), p2: Pt(0, 0), p3: Pt(0, 0), s1: -1, s2: -1},
		// Short and long, straight and bent.
		{p0: Pt(0, 0), p1: Pt(0, 0), p2: Pt(5, 5), p3: Pt(10, 0), s1: 0, s2: -1},
		{p0: Pt(0, 0), p1: Pt(100, 0), p2: Pt(200, 0), p3: Pt(300, 0), s1: 1, s2: 1},
		{p0: Pt(0, 0), p1: Pt(0, 0), p2: Pt(100000, 100000), p3: Pt(0, 200000), s1: 0, s2: 1},
		{k: 3, p0: Pt(0, 0), p1: Pt(1000, 0), p2: Pt(1000, 1000), p3: Pt(0, 1000), s1: 0.5, s2: -0.5},
	}
	for _, seg := range segs {
		for _, precision := range []float64{HighPrecision, LowPrecision, 100} {
			step := seg.step(precision)
			if step <= 0 || step > MaxSplineStep {
				t.Errorf("%+v: got step %v at precision %v, want a step in (0, %v]", seg, step, precision, MaxSplineStep)
			}
		}
	}
}

func TestBlends(t *testing.T) {
	// At the ends of a segment, the blending functions of sharp points put
	// all weight on the segment's end points.
	seg := xsegment{p0: Pt(0, 0), p1: Pt(10, 0), p2: Pt(20, 0), p3: Pt(30, 0), s1: 0, s2: 1}
	if got := seg.eval(0); got != seg.p1 {
		t.Errorf("got %v at t=0, want %v", got, seg.p1)
	}
	seg = xsegment{p0: Pt(0, 0), p1: Pt(10, 0), p2: Pt(20, 0), p3: Pt(30, 0), s1: -1, s2: -1}
	if got := seg.eval(0); got != seg.p1 {
		t.Errorf("got %v at t=0, want %v", got, seg.p1)
	}
	if got := seg.eval(1); got != seg.p2 {
		t.Errorf("got %v at t=1, want %v", got, seg.p2)
	}
}
