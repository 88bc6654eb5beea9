package fig

import (
	"errors"
	"io"
	"strings"
)

// oldFill converts the area fill of files older than 3.0, which ranges from
// 0 for no fill over 1 for white to 21 for the full pen color, into a fill
// style for the pen color.
func oldFill(f int) int {
	switch {
	case f <= 0:
		return Unfilled
	case f > 21:
		return 20
	default:
		// Tints 40 (white) down to 20 (full color).
		return 41 - f
	}
}

// readAttrs reads the attributes common to lines, splines, ellipses and arcs,
// starting at the line style. Files older than 3.0 have no fill color and use
// the old area fill.
func (r *reader) readAttrs(f *fields, a *Attrs) {
	a.Style = LineStyle(f.int())
	a.Thickness = float64(f.int()) * r.thickScale
	pen := f.int()
	fill := pen
	if r.version.HasFillColor() {
		fill = f.int()
	}
	a.Depth = f.int()
	a.Pen = f.int()
	a.FillStyle = f.int()
	a.StyleVal = f.float()
	if !f.ok {
		return
	}
	a.PenColor = r.color(pen)
	a.FillColor = r.color(fill)
	if !r.version.HasFillColor() {
		a.FillStyle = oldFill(a.FillStyle)
	}
}

func (r *reader) readArrow() (*Arrow, error) {
	ok, err := r.nextLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.errorf("missing arrow")
	}
	f := newFields(r.s.buf)
	a := &Arrow{
		Type:      f.int(),
		Style:     f.int(),
		Thickness: f.float() * r.thickScale,
		Width:     f.float(),
		Height:    f.float(),
	}
	if !f.ok {
		return nil, r.errorf("incorrect arrow format")
	}
	return a, nil
}

// readArrows reads the arrow lines that follow a record with nonzero arrow
// flags.
func (r *reader) readArrows(forward, backward int) (fa, ba *Arrow, err error) {
	if forward != 0 {
		if fa, err = r.readArrow(); err != nil {
			return nil, nil, err
		}
	}
	if backward != 0 {
		if ba, err = r.readArrow(); err != nil {
			return nil, nil, err
		}
	}
	return fa, ba, nil
}

// readPoints reads the point list following a record. In files of version
// 3.0 and later, count is the number of points given in the record. Older
// files end the list with a pair whose x coordinate is 9999. Data following
// the points may continue on the same line.
func (r *reader) readPoints(kind string, count int) ([]Point, error) {
	sentinel := !r.version.HasPointCount()
	if sentinel {
		count = maxInt
	} else if count < 1 {
		return nil, r.incomplete(kind)
	}

	next := func() (int, error) {
		v, ok, err := r.s.tokenInt()
		if err != nil {
			return 0, r.ioError(err)
		}
		if !ok {
			return 0, r.incomplete(kind)
		}
		return v, nil
	}

	pts := make([]Point, 0, min(count, 256))
	for ; count > 0; count-- {
		x, err := next()
		if err != nil {
			return nil, err
		}
		y, err := next()
		if err != nil {
			return nil, err
		}
		if sentinel && x == 9999 {
			break
		}
		pts = append(pts, Point{x, y})
	}
	if len(pts) == 0 {
		r.log.Warn("object without points", "object", kind, "line", r.s.line)
	}
	return pts, nil
}

func (r *reader) readLine() (*Line, error) {
	f := newFields(r.s.buf)
	f.skip()
	l := &Line{Type: LineType(f.int())}
	if l.Type < LinePolyline || l.Type > LinePictureBox {
		if !f.ok {
			return nil, r.incomplete("line")
		}
		return nil, r.errorf("invalid line type %d", l.Type)
	}

	var radius, fa, ba, npts int
	switch {
	case r.version.HasFillColor():
		r.readAttrs(f, &l.Attrs)
		l.JoinStyle = f.int()
		l.CapStyle = f.int()
		radius = f.int()
		fa = f.int()
		ba = f.int()
		npts = f.int()
	case r.version.HasRadius(), r.version == Version20 && l.Type == LineArcBox:
		r.readAttrs(f, &l.Attrs)
		radius = f.int()
		fa = f.int()
		ba = f.int()
	default:
		r.readAttrs(f, &l.Attrs)
		fa = f.int()
		ba = f.int()
		// The oldest files store the corner radius of arc boxes in the pen
		// field.
		if l.Type == LineArcBox {
			radius = l.Pen
			l.Pen = 0
		}
	}
	if !f.ok {
		return nil, r.incomplete("line")
	}
	l.Radius = float64(radius) * r.thickScale

	var err error
	if l.ForwardArrow, l.BackwardArrow, err = r.readArrows(fa, ba); err != nil {
		return nil, err
	}

	if l.Type == LinePictureBox {
		ok, err := r.nextLine()
		if err != nil {
			return nil, err
		}
		f := newFields(r.s.buf)
		flipped := f.int()
		file := f.string()
		if !ok || !f.ok {
			return nil, r.incomplete("picture")
		}
		l.Picture = &Picture{Flipped: flipped != 0, File: file}
	}

	if l.Points, err = r.readPoints("line", npts); err != nil {
		return nil, err
	}
	r.s.skipLine()
	l.Comments = r.s.takeComments()
	return l, nil
}

func (r *reader) readSpline() (*Spline, error) {
	f := newFields(r.s.buf)
	f.skip()
	s := &Spline{Type: SplineType(f.int())}
	if s.Type < SplineOpenApprox || s.Type > SplineClosedXSpline {
		if !f.ok {
			return nil, r.incomplete("spline")
		}
		return nil, r.errorf("invalid spline type %d", s.Type)
	}

	var fa, ba, npts int
	r.readAttrs(f, &s.Attrs)
	if r.version.HasFillColor() {
		s.CapStyle = f.int()
	}
	fa = f.int()
	ba = f.int()
	if r.version.HasPointCount() {
		npts = f.int()
	}
	if !f.ok {
		return nil, r.incomplete("spline")
	}

	var err error
	if s.ForwardArrow, s.BackwardArrow, err = r.readArrows(fa, ba); err != nil {
		return nil, err
	}
	if s.Points, err = r.readPoints("spline", npts); err != nil {
		return nil, err
	}

	switch {
	case r.version.HasShapeFactors():
		s.Controls = make([]ControlPoint, len(s.Points))
		for i := range s.Controls {
			v, ok, err := r.s.tokenFloat()
			if err != nil {
				return nil, r.ioError(err)
			}
			if !ok {
				return nil, r.incomplete("spline")
			}
			s.Controls[i].S = v
		}
		if n := len(s.Controls); !s.Type.Closed() && n > 0 {
			// Open curves have to end at their end points.
			if s.Controls[0].S != ShapeSharp || s.Controls[n-1].S != ShapeSharp {
				r.log.Debug("open spline with non-sharp end points", "line", r.s.line)
			}
			s.Controls[0].S = ShapeSharp
			s.Controls[n-1].S = ShapeSharp
		}

	case s.Type.Interpolated():
		// Interpolated splines of older files carry two tangent handles per
		// point.
		s.Controls = make([]ControlPoint, len(s.Points))
		for i := range s.Controls {
			var v [4]float64
			for j := range v {
				x, ok, err := r.s.tokenFloat()
				if err != nil {
					return nil, r.ioError(err)
				}
				if !ok {
					return nil, r.incomplete("spline")
				}
				v[j] = x
			}
			s.Controls[i] = ControlPoint{LX: v[0], LY: v[1], RX: v[2], RY: v[3]}
		}
	}
	r.s.skipLine()
	s.Comments = r.s.takeComments()
	return s, nil
}

func (r *reader) readEllipse() (*Ellipse, error) {
	f := newFields(r.s.buf)
	f.skip()
	e := &Ellipse{Type: EllipseType(f.int())}
	r.readAttrs(f, &e.Attrs)
	e.Direction = f.int()
	e.Angle = f.float()
	e.Center.X = f.int()
	e.Center.Y = f.int()
	e.Radii.X = f.int()
	e.Radii.Y = f.int()
	e.Start.X = f.int()
	e.Start.Y = f.int()
	e.End.X = f.int()
	e.End.Y = f.int()
	if !f.ok {
		return nil, r.incomplete("ellipse")
	}
	e.Comments = r.s.takeComments()
	return e, nil
}

func (r *reader) readArc() (*Arc, error) {
	f := newFields(r.s.buf)
	f.skip()
	a := &Arc{Type: ArcType(f.int())}
	r.readAttrs(f, &a.Attrs)
	if r.version.HasFillColor() {
		a.CapStyle = f.int()
	}
	a.Direction = f.int()
	fa := f.int()
	ba := f.int()
	a.Center.X = f.float()
	a.Center.Y = f.float()
	for i := range a.Points {
		a.Points[i].X = f.int()
		a.Points[i].Y = f.int()
	}
	if !f.ok {
		return nil, r.incomplete("arc")
	}

	var err error
	if a.ForwardArrow, a.BackwardArrow, err = r.readArrows(fa, ba); err != nil {
		return nil, err
	}
	a.Comments = r.s.takeComments()
	return a, nil
}

func (r *reader) readText() (*Text, error) {
	f := newFields(r.s.buf)
	f.skip()
	t := &Text{Type: Justification(f.int())}
	var color int
	if r.version.HasFillColor() {
		color = f.int()
		t.Depth = f.int()
		t.Pen = f.int()
		t.Font = f.int()
		t.Size = f.float()
		t.Angle = f.float()
		t.Flags = TextFlags(f.int())
	} else {
		t.Font = f.int()
		t.Size = f.float()
		t.Pen = f.int()
		color = f.int()
		t.Depth = f.int()
		t.Angle = f.float()
		t.Flags = TextFlags(f.int())
	}
	t.Height = f.float()
	t.Length = f.float()
	t.Base.X = f.int()
	t.Base.Y = f.int()
	if !f.ok {
		return nil, r.incomplete("text")
	}
	t.Color = r.color(color)

	// The string starts after the single blank following the last number
	// and may continue over several lines.
	text, _ := skipFields(r.s.buf, 13)
	for {
		var (
			body string
			ok   bool
		)
		if r.version.HasTextEscapes() {
			body, ok = cutTerminator(text)
		} else {
			body, ok = cutControlA(text)
		}
		if ok {
			text = body
			break
		}
		l, err := r.s.physical()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, r.incomplete("text")
			}
			return nil, r.ioError(err)
		}
		text += "\n" + l
	}
	if r.version.HasTextEscapes() {
		text = unescapeText(text)
	}
	t.String = text
	t.Comments = r.s.takeComments()
	return t, nil
}

// skipFields returns what follows the first n fields of line and the one
// separator after them.
func skipFields(line string, n int) (string, bool) {
	s := line
	for range n {
		s = strings.TrimLeft(s, " \t")
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			return "", false
		}
		s = s[i:]
	}
	return s[1:], true
}
