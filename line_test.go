package fig

import (
	"testing"
)

func TestLineBounds(t *testing.T) {
	l := Line{
		Attrs:  Attrs{Thickness: 30},
		Type:   LinePolyline,
		Points: []Point{Pt(0, 0), Pt(100, 50), Pt(-20, 80)},
	}
	diff(t, Rect{-35, -15, 115, 95}, l.Bounds())

	if got := (&Line{}).Bounds(); !got.Empty() {
		t.Errorf("got %v, want empty rectangle", got)
	}
}

func TestLineTypeClosed(t *testing.T) {
	for _, typ := range []LineType{LineBox, LinePolygon, LineArcBox, LinePictureBox} {
		if !typ.Closed() {
			t.Errorf("%s should be closed", typ)
		}
	}
	if LinePolyline.Closed() {
		t.Error("polylines shouldn't be closed")
	}
}

func TestCompoundBounds(t *testing.T) {
	c := &Compound{
		Lines: []*Line{{Points: []Point{Pt(0, 0), Pt(10, 10)}}},
		Compounds: []*Compound{{
			Ellipses: []*Ellipse{{Center: Pt(100, 100), Radii: Pt(10, 20)}},
		}},
	}
	diff(t, Rect{0, 0, 110, 120}, c.Bounds())

	if got := (&Compound{}).Bounds(); !got.Empty() {
		t.Errorf("got %v, want empty rectangle", got)
	}
}
