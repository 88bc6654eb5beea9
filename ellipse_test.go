package fig

import (
	"math"
	"testing"
)

func TestEllipseBounds(t *testing.T) {
	f := func(e Ellipse, want Rect) {
		t.Helper()
		if got := e.Bounds(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	f(Ellipse{Center: Pt(100, 100), Radii: Pt(50, 20)}, Rect{50, 80, 150, 120})
	// Rotating by a quarter turn swaps the extents.
	f(Ellipse{Center: Pt(100, 100), Radii: Pt(50, 20), Angle: math.Pi / 2}, Rect{80, 50, 120, 150})
	// Circles don't care about rotation.
	f(Ellipse{Center: Pt(0, 0), Radii: Pt(30, 30), Angle: 1}, Rect{-30, -30, 30, 30})
	// The outline is centered on the ellipse.
	f(Ellipse{Attrs: Attrs{Thickness: 15}, Center: Pt(0, 0), Radii: Pt(30, 30)}, Rect{-37, -37, 37, 37})
}

func TestArcAngles(t *testing.T) {
	// A quarter circle from the right to the top, as seen on paper.
	a := Arc{
		Direction: CounterClockwise,
		Center:    Vec(0, 0),
		Points:    [3]Point{Pt(100, 0), Pt(71, -71), Pt(0, -100)},
	}
	start, sweep := a.Angles()
	if start != 0 || math.Abs(sweep-math.Pi/2) > 1e-9 {
		t.Errorf("got angles (%v, %v), want (0, π/2)", start, sweep)
	}
	if r := a.Radius(); r != 100 {
		t.Errorf("got radius %v, want 100", r)
	}
	diff(t, Rect{0, -100, 100, 0}, a.Bounds())

	// The same points clockwise cover the other three quarters.
	a.Direction = Clockwise
	if _, sweep := a.Angles(); math.Abs(sweep+3*math.Pi/2) > 1e-9 {
		t.Errorf("got sweep %v, want -3π/2", sweep)
	}
	diff(t, Rect{-100, -100, 100, 100}, a.Bounds())

	// Pie wedges include their center.
	b := Arc{
		Type:      ArcPieWedge,
		Direction: CounterClockwise,
		Center:    Vec(0, 0),
		Points:    [3]Point{Pt(100, -100), Pt(100, -120), Pt(90, -130)},
	}
	if r := b.Bounds(); !r.Contains(Pt(0, 0)) {
		t.Errorf("%v doesn't contain the center", r)
	}
}

func TestTextBounds(t *testing.T) {
	f := func(typ Justification, angle float64, want Rect) {
		t.Helper()
		txt := Text{Type: typ, Angle: angle, Height: 100, Length: 400, Base: Pt(1000, 1000)}
		if got := txt.Bounds(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	f(JustifyLeft, 0, Rect{1000, 900, 1400, 1000})
	f(JustifyCenter, 0, Rect{800, 900, 1200, 1000})
	f(JustifyRight, 0, Rect{600, 900, 1000, 1000})
	// Rotated a quarter turn, the text runs upwards.
	f(JustifyLeft, math.Pi/2, Rect{900, 600, 1000, 1000})
}
