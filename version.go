package fig

import "strings"

// Version is the dialect of a Fig file. Each version adds to the header and
// record layouts of the ones before it, so versions compare with < and >.
type Version int

const (
	// Version13 files have no header line at all.
	Version13 Version = iota
	// Version14 covers headers older than 2.0.
	Version14
	Version20
	Version21
	// Version30 also covers 2.2, which is the same format.
	Version30
	// Version32 also covers 3.1, which is the same format.
	Version32
)

func (v Version) String() string {
	switch v {
	case Version13:
		return "1.3"
	case Version14:
		return "1.4"
	case Version20:
		return "2.0"
	case Version21:
		return "2.1"
	case Version30:
		return "3.0"
	case Version32:
		return "3.2"
	default:
		return "unknown"
	}
}

// HasHeader reports whether the file starts with a #FIG line.
func (v Version) HasHeader() bool { return v >= Version14 }

// HasPageSetup reports whether orientation, justification and units follow
// the #FIG line.
func (v Version) HasPageSetup() bool { return v >= Version30 }

// HasPrintSetup reports whether paper size, magnification, multi-page flag
// and transparent color follow the units line.
func (v Version) HasPrintSetup() bool { return v >= Version32 }

// HasRadius reports whether every line record carries a corner radius.
// Version 2.0 only has it for [LineArcBox].
func (v Version) HasRadius() bool { return v >= Version21 }

// HasFillColor reports whether records carry separate pen and fill colors,
// and cap styles. Lines also carry join styles.
func (v Version) HasFillColor() bool { return v >= Version30 }

// HasPointCount reports whether records give the length of their point list.
// Older files end point lists with an x coordinate of 9999 instead.
func (v Version) HasPointCount() bool { return v >= Version30 }

// HasShapeFactors reports whether splines are X-splines with one shape factor
// per point.
func (v Version) HasShapeFactors() bool { return v >= Version32 }

// HasTextEscapes reports whether texts end in a literal \001 and use
// backslash escapes, rather than ending in a raw control-A.
func (v Version) HasTextEscapes() bool { return v >= Version30 }

// parseVersion resolves the #FIG header line. The first six characters
// decide between the major formats; 3.x files must be one of the versions we
// know.
func parseVersion(header string) (Version, bool) {
	if !strings.HasPrefix(header, "#FIG") {
		return 0, false
	}
	switch {
	case strings.HasPrefix(header, "#FIG 3.1"), strings.HasPrefix(header, "#FIG 3.2"):
		return Version32, true
	case strings.HasPrefix(header, "#FIG 3.0"), strings.HasPrefix(header, "#FIG 2.2"):
		return Version30, true
	case strings.HasPrefix(header, "#FIG 3"):
		return 0, false
	case strings.HasPrefix(header, "#FIG 2.1"):
		return Version21, true
	case strings.HasPrefix(header, "#FIG 2"):
		return Version20, true
	default:
		return Version14, true
	}
}
