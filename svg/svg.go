// Package svg renders Fig documents as SVG.
//
// Importing the package registers the driver under the name "svg". The
// output uses Fig units in its view box, so coordinates are copied verbatim,
// and its width and height are given in points.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"honnef.co/go/fig"
)

func init() {
	fig.Register("svg", func(w io.Writer) fig.Driver { return New(w) })
}

// Driver writes SVG. Create it with [New].
type Driver struct {
	w      *errWriter
	canvas *svgo.SVG
	doc    *fig.Document
	res    float64
	bounds fig.Rect

	// margin around the drawing, in points.
	margin float64
	// precision of splines turned into lines.
	precision float64
	decoder   *encoding.Decoder
}

var _ fig.Driver = (*Driver)(nil)

// New returns a driver writing to w. Fig texts are decoded as ISO 8859-1.
func New(w io.Writer) *Driver {
	ew := &errWriter{w: w}
	return &Driver{
		w:         ew,
		canvas:    svgo.New(ew),
		precision: fig.HighPrecision,
		decoder:   charmap.ISO8859_1.NewDecoder(),
	}
}

// errWriter remembers the first write error. svgo does not report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// Option implements fig.Driver. It supports
//
//   - margin: the margin around the drawing, in points
//   - precision: the precision of splines, see [fig.HighPrecision]
//   - encoding: the encoding of texts, "latin1" or "utf8"
func (d *Driver) Option(name, value string) error {
	switch name {
	case "margin":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("svg: invalid margin %q", value)
		}
		d.margin = v
	case "precision":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("svg: invalid precision %q", value)
		}
		d.precision = v
	case "encoding":
		switch strings.ToLower(value) {
		case "latin1", "iso-8859-1":
			d.decoder = charmap.ISO8859_1.NewDecoder()
		case "utf8", "utf-8":
			d.decoder = nil
		default:
			return fmt.Errorf("svg: unsupported encoding %q", value)
		}
	default:
		return fmt.Errorf("svg: unknown option %q", name)
	}
	return nil
}

// units converts a length in points to Fig units.
func (d *Driver) units(pt float64) float64 {
	return pt * d.res / 72
}

// Start implements fig.Driver.
func (d *Driver) Start(doc *fig.Document) error {
	d.doc = doc
	d.res = doc.Settings.Resolution
	if d.res <= 0 {
		d.res = 1200
	}
	b := doc.Root.Bounds()
	if b.Empty() {
		b = fig.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	}
	d.bounds = b.Inset(int(math.Round(d.units(d.margin))))

	mag := doc.Settings.Magnification
	if mag <= 0 {
		mag = 100
	}
	scale := 72 / d.res * mag / 100
	width := int(math.Ceil(float64(d.bounds.Width()) * scale))
	height := int(math.Ceil(float64(d.bounds.Height()) * scale))
	d.canvas.Startview(width, height, d.bounds.X0, d.bounds.Y0, d.bounds.Width(), d.bounds.Height())
	if len(doc.Root.Comments) > 0 {
		d.canvas.Desc(strings.Join(doc.Root.Comments, "\n"))
	}
	return d.w.err
}

// Grid implements fig.Driver.
func (d *Driver) Grid(major, minor float64) error {
	b := d.bounds
	if minor > 0 {
		d.canvas.Grid(b.X0, b.Y0, b.Width(), b.Height(), int(minor), d.gridStyle(0.5))
	}
	if major > 0 {
		d.canvas.Grid(b.X0, b.Y0, b.Width(), b.Height(), int(major), d.gridStyle(1))
	}
	return d.w.err
}

func (d *Driver) gridStyle(width float64) string {
	return fmt.Sprintf("stroke:#c0c0c0;stroke-width:%g", d.units(width))
}

// comment writes the comments of an object as an XML comment.
func (d *Driver) comment(comments []string) {
	if len(comments) == 0 {
		return
	}
	text := strings.Join(comments, "\n")
	// "--" may not occur in XML comments.
	text = strings.ReplaceAll(text, "--", "- -")
	fmt.Fprintf(d.w, "<!-- %s -->\n", text)
}

// Line implements fig.Driver.
func (d *Driver) Line(l *fig.Line) error {
	d.comment(l.Comments)
	if len(l.Points) == 0 {
		return d.w.err
	}
	style := d.style(l.Attrs, l.JoinStyle, l.CapStyle, l.Type.Closed())
	xs, ys := coords(l.Points)

	switch l.Type {
	case fig.LinePolyline:
		if len(l.Points) == 1 {
			// A single point is drawn as a dot.
			p := l.Points[0]
			d.canvas.Circle(p.X, p.Y, max(int(l.Thickness/2), 1), "fill:"+d.hex(l.PenColor))
			break
		}
		d.canvas.Polyline(xs, ys, style)
	case fig.LineArcBox:
		b := l.Bounds().Inset(-int(l.Thickness / 2))
		r := int(math.Round(l.Radius))
		d.canvas.Roundrect(b.X0, b.Y0, b.Width(), b.Height(), r, r, style)
	case fig.LinePictureBox:
		b := l.Bounds().Inset(-int(l.Thickness / 2))
		if l.Picture != nil && l.Picture.File != "" {
			d.canvas.Image(b.X0, b.Y0, b.Width(), b.Height(), l.Picture.File, `preserveAspectRatio="none"`)
		}
		d.canvas.Polygon(xs, ys, style)
	default:
		d.canvas.Polygon(xs, ys, style)
	}

	if n := len(l.Points); n >= 2 && !l.Type.Closed() {
		if l.ForwardArrow != nil {
			d.arrow(l.ForwardArrow, l.Points[n-1], l.Points[n-1].Sub(l.Points[n-2]), l.PenColor)
		}
		if l.BackwardArrow != nil {
			d.arrow(l.BackwardArrow, l.Points[0], l.Points[0].Sub(l.Points[1]), l.PenColor)
		}
	}
	return d.w.err
}

// Spline implements fig.Driver. Splines are drawn as the lines they evaluate
// to.
func (d *Driver) Spline(s *fig.Spline) error {
	l, err := fig.CompileSpline(s.XSpline(), d.precision)
	if l == nil {
		return fmt.Errorf("svg: %w", err)
	}
	return d.Line(l)
}

// Ellipse implements fig.Driver.
func (d *Driver) Ellipse(e *fig.Ellipse) error {
	d.comment(e.Comments)
	style := d.style(e.Attrs, fig.JoinMiter, fig.CapButt, true)
	rx, ry := abs(e.Radii.X), abs(e.Radii.Y)
	if e.Angle == 0 {
		d.canvas.Ellipse(e.Center.X, e.Center.Y, rx, ry, style)
	} else {
		d.canvas.Ellipse(e.Center.X, e.Center.Y, rx, ry, style, rotate(e.Angle, e.Center))
	}
	return d.w.err
}

// Arc implements fig.Driver.
func (d *Driver) Arc(a *fig.Arc) error {
	d.comment(a.Comments)
	closed := a.Type == fig.ArcPieWedge
	style := d.style(a.Attrs, fig.JoinMiter, a.CapStyle, closed)

	_, sweep := a.Angles()
	r := a.Radius()
	large := 0
	if math.Abs(sweep) > math.Pi {
		large = 1
	}
	// SVG sweeps clockwise on screen for a sweep flag of 1.
	clockwise := 0
	if a.Direction == fig.Clockwise {
		clockwise = 1
	}
	p0, p2 := a.Points[0], a.Points[2]
	var path strings.Builder
	if closed {
		c := a.Center.Round()
		fmt.Fprintf(&path, "M%d,%d L%d,%d ", c.X, c.Y, p0.X, p0.Y)
	} else {
		fmt.Fprintf(&path, "M%d,%d ", p0.X, p0.Y)
	}
	fmt.Fprintf(&path, "A%g,%g 0 %d,%d %d,%d", r, r, large, clockwise, p2.X, p2.Y)
	if closed {
		path.WriteString(" Z")
	}
	d.canvas.Path(path.String(), style)

	if !closed {
		if a.ForwardArrow != nil {
			d.arrow(a.ForwardArrow, p2, tangent(a, p2), a.PenColor)
		}
		if a.BackwardArrow != nil {
			d.arrow(a.BackwardArrow, p0, tangent(a, p0).Negate(), a.PenColor)
		}
	}
	return d.w.err
}

// tangent returns the direction in which the arc passes through pt.
func tangent(a *fig.Arc, pt fig.Point) fig.Vec2 {
	v := pt.Vec2().Sub(a.Center)
	// Turn90 turns clockwise on paper.
	t := v.Turn90()
	if a.Direction == fig.CounterClockwise {
		t = t.Negate()
	}
	return t
}

// Text implements fig.Driver.
func (d *Driver) Text(t *fig.Text) error {
	d.comment(t.Comments)
	s := t.String
	if d.decoder != nil {
		dec, err := d.decoder.String(s)
		if err != nil {
			return fmt.Errorf("svg: decoding text: %w", err)
		}
		s = dec
	}

	size := d.units(t.Size)
	attrs := []string{d.fontStyle(t, size)}
	if t.Angle != 0 {
		attrs = append(attrs, rotate(t.Angle, t.Base))
	}
	for i, line := range strings.Split(s, "\n") {
		y := t.Base.Y + int(math.Round(float64(i)*size*1.2))
		d.canvas.Text(t.Base.X, y, line, attrs...)
	}
	return d.w.err
}

// End implements fig.Driver.
func (d *Driver) End() error {
	d.canvas.End()
	if d.w.err != nil {
		return fmt.Errorf("svg: %w", d.w.err)
	}
	return nil
}

// arrow draws an arrowhead with its tip at tip, pointing in direction dir.
func (d *Driver) arrow(a *fig.Arrow, tip fig.Point, dir fig.Vec2, pen fig.Color) {
	if dir.Hypot2() == 0 {
		return
	}
	dir = dir.Normalize()
	t := tip.Vec2()
	base := t.Sub(dir.Mul(a.Height))
	side := dir.Turn90().Mul(a.Width / 2)
	left := base.Add(side).Round()
	right := base.Sub(side).Round()

	stroke := fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linejoin:miter", d.hex(pen), max(a.Thickness, 1))
	if a.Type == 0 {
		// Stick arrow.
		d.canvas.Polyline([]int{left.X, tip.X, right.X}, []int{left.Y, tip.Y, right.Y}, stroke+";fill:none")
		return
	}
	// Style 0 arrows are hollow, style 1 arrows are filled with the pen
	// color.
	fill := "#ffffff"
	if a.Style != 0 {
		fill = d.hex(pen)
	}
	xs := []int{left.X, tip.X, right.X}
	ys := []int{left.Y, tip.Y, right.Y}
	if a.Type == 2 || a.Type == 3 {
		// Indented and pointed butts.
		f := 0.3
		if a.Type == 3 {
			f = -0.3
		}
		notch := base.Add(dir.Mul(a.Height * f)).Round()
		xs = append(xs, notch.X)
		ys = append(ys, notch.Y)
	}
	d.canvas.Polygon(xs, ys, stroke+";fill:"+fill)
}

// rotate returns a transform attribute rotating by a Fig angle about pt. Fig
// angles turn counter-clockwise on paper, SVG angles clockwise.
func rotate(angle float64, pt fig.Point) string {
	deg := -angle * 180 / math.Pi
	return fmt.Sprintf(`transform="rotate(%s %d %d)"`, strconv.FormatFloat(deg, 'g', 6, 64), pt.X, pt.Y)
}

func coords(pts []fig.Point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	return xs, ys
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rgb resolves a color, falling back to black for the default color.
func (d *Driver) rgb(c fig.Color) color.RGBA {
	if rgb, ok := d.doc.RGB(c); ok {
		return rgb
	}
	return color.RGBA{A: 0xff}
}

func (d *Driver) hex(c fig.Color) string {
	return hexRGB(d.rgb(c))
}

func hexRGB(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// fill returns the fill of an object with the given attributes, or "none".
//
// Fill styles 0 to 20 shade the fill color from black to full intensity,
// styles 21 to 40 tint it towards white. Patterns are drawn as solid fills.
func (d *Driver) fill(a fig.Attrs) string {
	if a.FillStyle == fig.Unfilled {
		return "none"
	}
	c := d.rgb(a.FillColor)
	switch {
	case a.FillStyle <= 20:
		f := float64(max(a.FillStyle, 0)) / 20
		if a.FillColor == fig.DefaultColor || a.FillColor == fig.Black {
			// Shades of black run from white to black.
			v := uint8(math.Round(255 * (1 - f)))
			c = color.RGBA{v, v, v, 0xff}
			break
		}
		c = mix(color.RGBA{A: 0xff}, c, f)
	case a.FillStyle <= 40:
		c = mix(c, color.RGBA{0xff, 0xff, 0xff, 0xff}, float64(a.FillStyle-20)/20)
	}
	return hexRGB(c)
}

// mix interpolates linearly between a and b.
func mix(a, b color.RGBA, f float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}

// dashes returns the dash array of a line style, or the empty string for solid
// lines.
func (d *Driver) dashes(a fig.Attrs) string {
	v := a.StyleVal * d.res / 80
	dot := max(a.Thickness, 1)
	var parts []float64
	switch a.Style {
	case fig.StyleDashed:
		parts = []float64{v, v}
	case fig.StyleDotted:
		parts = []float64{dot, v}
	case fig.StyleDashDotted:
		parts = []float64{v, v / 2, dot, v / 2}
	case fig.StyleDashDoubleDotted:
		parts = []float64{v, v / 2, dot, v / 3, dot, v / 2}
	case fig.StyleDashTripleDotted:
		parts = []float64{v, v / 2, dot, v / 4, dot, v / 4, dot, v / 2}
	default:
		return ""
	}
	if v <= 0 {
		return ""
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = strconv.FormatFloat(p, 'g', 6, 64)
	}
	return strings.Join(strs, ",")
}

var (
	joins = [...]string{fig.JoinMiter: "miter", fig.JoinRound: "round", fig.JoinBevel: "bevel"}
	caps  = [...]string{fig.CapButt: "butt", fig.CapRound: "round", fig.CapProjecting: "square"}
)

// style returns the CSS style of an outline.
func (d *Driver) style(a fig.Attrs, join, capStyle int, closed bool) string {
	var b strings.Builder
	if a.Thickness <= 0 {
		b.WriteString("stroke:none")
	} else {
		fmt.Fprintf(&b, "stroke:%s;stroke-width:%g", d.hex(a.PenColor), a.Thickness)
		if join >= 0 && join < len(joins) {
			fmt.Fprintf(&b, ";stroke-linejoin:%s", joins[join])
		}
		if !closed && capStyle >= 0 && capStyle < len(caps) {
			fmt.Fprintf(&b, ";stroke-linecap:%s", caps[capStyle])
		}
		if dash := d.dashes(a); dash != "" {
			fmt.Fprintf(&b, ";stroke-dasharray:%s", dash)
		}
	}
	fmt.Fprintf(&b, ";fill:%s", d.fill(a))
	return b.String()
}

// PostScript font families, four faces each. Fonts from 32 on are single
// faces.
var psFamilies = []string{
	"Times", "AvantGarde", "Bookman", "Courier", "Helvetica",
	"Helvetica Narrow", "New Century Schoolbook", "Palatino",
}

var psSingles = []string{"Symbol", "Zapf Chancery", "Zapf Dingbats"}

// LaTeX fonts: default, roman, bold, italic, sans serif, typewriter.
var texFonts = []string{"serif", "serif", "serif", "serif", "sans-serif", "monospace"}

func (d *Driver) fontStyle(t *fig.Text, size float64) string {
	family, weight, slant := "serif", "normal", "normal"
	font := t.Font
	if t.Flags&fig.TextPostScriptFont != 0 {
		switch {
		case font < 0:
			family = "Times"
		case font < 4*len(psFamilies):
			family = psFamilies[font/4]
			if font%4 >= 2 {
				weight = "bold"
			}
			if font%2 == 1 {
				slant = "italic"
			}
		case font-4*len(psFamilies) < len(psSingles):
			family = psSingles[font-4*len(psFamilies)]
		}
	} else if font >= 0 && font < len(texFonts) {
		family = texFonts[font]
		switch font {
		case 2:
			weight = "bold"
		case 3:
			slant = "italic"
		}
	}

	anchor := "start"
	switch t.Type {
	case fig.JustifyCenter:
		anchor = "middle"
	case fig.JustifyRight:
		anchor = "end"
	}
	return fmt.Sprintf("font-family:%s;font-size:%g;font-weight:%s;font-style:%s;text-anchor:%s;fill:%s",
		family, size, weight, slant, anchor, d.hex(t.Color))
}
