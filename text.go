package fig

import "strings"

// Justification is the horizontal alignment of a text relative to its base
// point.
type Justification int

const (
	JustifyLeft   Justification = 0
	JustifyCenter Justification = 1
	JustifyRight  Justification = 2
)

// TextFlags is a bit set of text properties.
type TextFlags int

const (
	// TextRigid texts do not scale with their compound.
	TextRigid TextFlags = 1 << iota
	// TextSpecial texts are passed to the output verbatim, for example as
	// LaTeX source.
	TextSpecial
	// TextPostScriptFont selects the PostScript font table for Font. Without
	// it, Font indexes the LaTeX font table.
	TextPostScriptFont
	// TextHidden texts are only shown as placeholders by editors.
	TextHidden
)

// Text is a string drawn at a base point.
type Text struct {
	Type  Justification
	Color Color
	Depth int
	Pen   int
	Font  int
	// Size in points.
	Size float64
	// Angle in radians, counter-clockwise on paper.
	Angle float64
	Flags TextFlags
	// Height and Length are the extents computed by the writer, in Fig units.
	Height float64
	Length float64
	Base   Point
	// String holds the raw bytes of the text. Writers use ISO 8859-1 unless
	// told otherwise. Multi-line texts separate lines with '\n'.
	String   string
	Comments []string
}

func (t *Text) depth() int { return t.Depth }

// Lines splits the text at its line separators.
func (t *Text) Lines() []string {
	return strings.Split(t.String, "\n")
}

// Bounds returns an estimate of the box covered by the text, based on the
// extents stored in the file.
func (t *Text) Bounds() Rect {
	var x0 float64
	switch t.Type {
	case JustifyCenter:
		x0 = -t.Length / 2
	case JustifyRight:
		x0 = -t.Length
	}
	corners := [4]Vec2{
		{x0, 0},
		{x0 + t.Length, 0},
		{x0, -t.Height},
		{x0 + t.Length, -t.Height},
	}
	r := emptyRect
	base := t.Base.Vec2()
	for _, c := range corners {
		// Fig angles turn counter-clockwise on paper, which is clockwise
		// in our y-down space.
		r = r.UnionPoint(base.Add(c.rotate(-t.Angle)).Round())
	}
	return r
}

// The text terminator of Fig 3.0 and later, an escaped control-A.
const textTerminator = `\001`

// cutTerminator reports whether s ends in a true text terminator and returns
// s without it. A terminator whose backslash is itself escaped, that is one
// preceded by an odd number of backslashes, is literal text.
func cutTerminator(s string) (string, bool) {
	body, ok := strings.CutSuffix(s, textTerminator)
	if !ok {
		return s, false
	}
	n := 0
	for i := len(body) - 1; i >= 0 && body[i] == '\\'; i-- {
		n++
	}
	if n%2 == 1 {
		return s, false
	}
	return body, true
}

// cutControlA cuts s at the first control-A, the text terminator of files
// older than 3.0.
func cutControlA(s string) (string, bool) {
	before, _, ok := strings.Cut(s, "\x01")
	return before, ok
}

// unescapeText decodes \ddd octal escapes and backslash escapes. Other bytes
// pass through unchanged.
func unescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		if i+3 < len(s) && isOctal(s[i+1]) && isOctal(s[i+2]) && isOctal(s[i+3]) {
			v := int(s[i+1]-'0')<<6 | int(s[i+2]-'0')<<3 | int(s[i+3]-'0')
			b.WriteByte(byte(v))
			i += 3
			continue
		}
		b.WriteByte(s[i+1])
		i++
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
