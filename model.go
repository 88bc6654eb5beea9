package fig

// Object is one drawable primitive: a [*Line], [*Spline], [*Ellipse], [*Arc] or
// [*Text]. Compounds are containers, not objects.
type Object interface {
	depth() int
}

var (
	_ Object = (*Line)(nil)
	_ Object = (*Spline)(nil)
	_ Object = (*Ellipse)(nil)
	_ Object = (*Arc)(nil)
	_ Object = (*Text)(nil)
)

// LineStyle selects how an outline is stroked.
type LineStyle int

const (
	StyleDefault LineStyle = -1
	StyleSolid   LineStyle = iota - 1
	StyleDashed
	StyleDotted
	StyleDashDotted
	StyleDashDoubleDotted
	StyleDashTripleDotted
)

// Join styles.
const (
	JoinMiter = 0
	JoinRound = 1
	JoinBevel = 2
)

// Cap styles.
const (
	CapButt       = 0
	CapRound      = 1
	CapProjecting = 2
)

// Unfilled is the fill style of objects without a fill.
const Unfilled = -1

// Attrs are the drawing attributes shared by lines, splines, ellipses and arcs.
type Attrs struct {
	Style LineStyle
	// Thickness of the outline in Fig units.
	Thickness float64
	PenColor  Color
	FillColor Color
	// Depth orders objects back to front. Larger depths are drawn first.
	Depth int
	// Pen is unused by every known writer but kept for round-tripping.
	Pen       int
	FillStyle int
	// StyleVal is the dash length or dot gap, in 1/80 inch.
	StyleVal float64
}

// Arrow is an arrowhead at one end of a line, spline or arc.
type Arrow struct {
	Type      int
	Style     int
	Thickness float64
	Width     float64
	Height    float64
}

func cloneArrow(a *Arrow) *Arrow {
	if a == nil {
		return nil
	}
	b := *a
	return &b
}
