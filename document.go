package fig

// Document is a parsed Fig file.
type Document struct {
	Version  Version
	Settings Settings
	// Colors holds the user colors in slot order. Color NumStdColors+i of
	// any object refers to Colors[i].
	Colors []ColorDef
	Root   *Compound
}

// Settings are the page and print settings from the file header. Files older
// than 3.2 do not store all of them; those fields have their zero value or
// the default noted below.
type Settings struct {
	Landscape bool
	// Center is false for flush left justification.
	Center bool
	Metric bool
	// PaperSize defaults to "Letter".
	PaperSize string
	// Magnification in percent, defaulting to 100.
	Magnification float64
	MultiPage     bool
	// Transparent is the color index used as the transparent color of GIF
	// output, or -2 for none.
	Transparent int
	// Resolution in Fig units per inch.
	Resolution float64
	// CoordSystem is 2 for an origin in the upper left corner. 1, a lower left
	// origin, was never used by any writer but is accepted.
	CoordSystem int
}

func defaultSettings() Settings {
	return Settings{
		Landscape:     true,
		Center:        true,
		PaperSize:     "Letter",
		Magnification: 100,
		Transparent:   -2,
	}
}

// Object counts, as returned by [Compound.Count].
type Counts struct {
	Lines     int
	Splines   int
	Ellipses  int
	Arcs      int
	Texts     int
	Compounds int
}

// Objects returns the total number of primitives, not counting compounds.
func (c Counts) Objects() int {
	return c.Lines + c.Splines + c.Ellipses + c.Arcs + c.Texts
}
