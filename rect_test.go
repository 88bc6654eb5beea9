package fig

import (
	"testing"
)

func TestRectEmpty(t *testing.T) {
	if !emptyRect.Empty() {
		t.Error("emptyRect isn't empty")
	}
	if r := (Rect{0, 0, 0, 0}); r.Empty() {
		t.Errorf("%v is a point and shouldn't be empty", r)
	}
	// Growing or shrinking an empty rectangle leaves it empty.
	if r := emptyRect.Inset(10); !r.Empty() {
		t.Errorf("got %v, want empty rectangle", r)
	}
}

func TestRectUnion(t *testing.T) {
	f := func(a, b, want Rect) {
		t.Helper()
		if got := a.Union(b); got != want {
			t.Errorf("%v ∪ %v: got %v, want %v", a, b, got, want)
		}
	}
	f(Rect{0, 0, 10, 10}, Rect{5, -5, 20, 5}, Rect{0, -5, 20, 10})
	f(Rect{0, 0, 10, 10}, emptyRect, Rect{0, 0, 10, 10})
	f(emptyRect, Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10})
	f(emptyRect, emptyRect, emptyRect)

	r := emptyRect.UnionPoint(Pt(3, 4))
	diff(t, Rect{3, 4, 3, 4}, r)
	r = r.UnionPoint(Pt(-1, 10))
	diff(t, Rect{-1, 4, 3, 10}, r)
}

func TestRectGeometry(t *testing.T) {
	diff(t, Rect{0, 0, 10, 20}, Rect{10, 20, 0, 0}.Abs())
	r := NewRectFromPoints(Pt(10, 20), Pt(0, 0))
	diff(t, Rect{0, 0, 10, 20}, r)
	if w, h := r.Width(), r.Height(); w != 10 || h != 20 {
		t.Errorf("got size %dx%d, want 10x20", w, h)
	}
	diff(t, Pt(0, 0), r.NW())
	diff(t, Pt(10, 20), r.SE())
	diff(t, Rect{-2, -2, 12, 22}, r.Inset(2))
	diff(t, Rect{2, 2, 8, 18}, r.Inset(-2))

	for _, pt := range []Point{Pt(0, 0), Pt(10, 20), Pt(5, 5)} {
		if !r.Contains(pt) {
			t.Errorf("%v should contain %v", r, pt)
		}
	}
	if r.Contains(Pt(11, 5)) {
		t.Errorf("%v shouldn't contain %v", r, Pt(11, 5))
	}
}
