package fig

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is an index into the combined color table: the [NumStdColors]
// standard colors followed by the document's user colors.
type Color int

// DefaultColor lets the output driver pick, usually black for outlines and
// white for fills.
const DefaultColor Color = -1

// The standard colors.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
	Blue4
	Blue3
	Blue2
	LightBlue
	Green4
	Green3
	Green2
	Cyan4
	Cyan3
	Cyan2
	Red4
	Red3
	Red2
	Magenta4
	Magenta3
	Magenta2
	Brown4
	Brown3
	Brown2
	Pink4
	Pink3
	Pink2
	Pink
	Gold

	NumStdColors = int(iota)
)

// MaxUserColors is the number of user colors a document may define.
const MaxUserColors = 512

var stdColors = [NumStdColors]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
	{0x00, 0x00, 0x90, 0xff},
	{0x00, 0x00, 0xb0, 0xff},
	{0x00, 0x00, 0xd0, 0xff},
	{0x87, 0xce, 0xff, 0xff},
	{0x00, 0x90, 0x00, 0xff},
	{0x00, 0xb0, 0x00, 0xff},
	{0x00, 0xd0, 0x00, 0xff},
	{0x00, 0x90, 0x90, 0xff},
	{0x00, 0xb0, 0xb0, 0xff},
	{0x00, 0xd0, 0xd0, 0xff},
	{0x90, 0x00, 0x00, 0xff},
	{0xb0, 0x00, 0x00, 0xff},
	{0xd0, 0x00, 0x00, 0xff},
	{0x90, 0x00, 0x90, 0xff},
	{0xb0, 0x00, 0xb0, 0xff},
	{0xd0, 0x00, 0xd0, 0xff},
	{0x80, 0x30, 0x00, 0xff},
	{0xa0, 0x40, 0x00, 0xff},
	{0xc0, 0x60, 0x00, 0xff},
	{0xff, 0x80, 0x80, 0xff},
	{0xff, 0xa0, 0xa0, 0xff},
	{0xff, 0xc0, 0xc0, 0xff},
	{0xff, 0xe0, 0xe0, 0xff},
	{0xff, 0xd7, 0x00, 0xff},
}

// ColorDef is a user color defined in the file.
type ColorDef struct {
	// Index is the number the file assigned to the color. Objects in the
	// document refer to the color by its slot instead, see [Document.Colors].
	Index int
	RGB   color.RGBA
}

// parseHexColor parses #rrggbb.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// colorTable maps the color numbers used in a file to dense slots.
type colorTable struct {
	defs []ColorDef
}

func (t *colorTable) define(def ColorDef) bool {
	if len(t.defs) >= MaxUserColors {
		return false
	}
	t.defs = append(t.defs, def)
	return true
}

// remap translates a color number read from the file. Standard colors map
// to themselves, user colors to NumStdColors plus their slot. Unknown user
// colors report false.
func (t *colorTable) remap(c int) (Color, bool) {
	if c < NumStdColors {
		return Color(c), true
	}
	for i, def := range t.defs {
		if def.Index == c {
			return Color(NumStdColors + i), true
		}
	}
	return DefaultColor, false
}

// RGB resolves c using the document's user colors. It reports false for
// [DefaultColor] and for indices that name no color.
func (doc *Document) RGB(c Color) (color.RGBA, bool) {
	switch {
	case c < 0:
		return color.RGBA{}, false
	case int(c) < NumStdColors:
		return stdColors[c], true
	case int(c)-NumStdColors < len(doc.Colors):
		return doc.Colors[int(c)-NumStdColors].RGB, true
	default:
		return color.RGBA{}, false
	}
}
