package fig

// LineType distinguishes the members of the line family.
type LineType int

const (
	LinePolyline   LineType = 1
	LineBox        LineType = 2
	LinePolygon    LineType = 3
	LineArcBox     LineType = 4
	LinePictureBox LineType = 5
)

func (typ LineType) String() string {
	switch typ {
	case LinePolyline:
		return "polyline"
	case LineBox:
		return "box"
	case LinePolygon:
		return "polygon"
	case LineArcBox:
		return "arc-box"
	case LinePictureBox:
		return "picture"
	default:
		return "unknown"
	}
}

// Closed reports whether lines of this type form a closed outline. Closed
// lines repeat their first point at the end.
func (typ LineType) Closed() bool {
	return typ != LinePolyline
}

// Picture is the imported image of a [LinePictureBox].
type Picture struct {
	Flipped bool
	File    string
}

// Line is a polyline, polygon, box, rounded box or picture box.
//
// Boxes are stored as five points, with the last point repeating the first.
type Line struct {
	Attrs
	Type      LineType
	JoinStyle int
	CapStyle  int
	// Radius of the corners of a [LineArcBox], in Fig units.
	Radius        float64
	ForwardArrow  *Arrow
	BackwardArrow *Arrow
	Picture       *Picture
	Points        []Point
	Comments      []string
}

func (l *Line) depth() int { return l.Depth }

// Bounds returns the box enclosing the line's points, widened by half its
// thickness.
func (l *Line) Bounds() Rect {
	r := emptyRect
	for _, pt := range l.Points {
		r = r.UnionPoint(pt)
	}
	return r.Inset(int(l.Thickness / 2))
}
