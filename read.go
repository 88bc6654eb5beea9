package fig

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Object codes at the start of each record.
const (
	codeColorDef    = 0
	codeEllipse     = 1
	codePolyline    = 2
	codeSpline      = 3
	codeText        = 4
	codeArc         = 5
	codeCompound    = 6
	codeEndCompound = -6
)

// ReadOptions configures [Read]. The zero value is ready to use.
type ReadOptions struct {
	// Logger receives diagnostics about recoverable problems, such as
	// references to undefined colors. If nil, they are discarded.
	Logger *slog.Logger
	// Precision used for turning X-splines into lines. Zero means
	// [HighPrecision]; other values have to be positive and finite.
	Precision float64
}

// ReadFile reads the Fig file with the given name.
func ReadFile(name string, opts *ReadOptions) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// Read parses a Fig file of any version.
//
// Input without any content results in [ErrEmpty]. Malformed input results in
// a [*ParseError] and no document; there is no partial recovery.
//
// Splines of version 3.2 files are X-splines. Read turns them into lines, so
// documents of that version never contain splines.
func Read(r io.Reader, opts *ReadOptions) (*Document, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	rd := &reader{
		s:         newScanner(r),
		log:       opts.Logger,
		precision: opts.Precision,
	}
	if rd.log == nil {
		rd.log = slog.New(slog.DiscardHandler)
	}
	if rd.precision == 0 {
		rd.precision = HighPrecision
	}
	var err error
	if rd.precision, err = checkPrecision(rd.precision); err != nil {
		return nil, err
	}
	return rd.read()
}

// reader holds the state of one call to Read. Nothing is shared between
// calls.
type reader struct {
	s         *scanner
	log       *slog.Logger
	precision float64
	doc       *Document
	version   Version
	// thickScale converts thicknesses from 1/80 inch to Fig units.
	thickScale float64
	colors     colorTable
	// numObjects counts the objects read so far, to reject late color
	// definitions.
	numObjects int
}

func (r *reader) errorf(format string, args ...any) error {
	return &ParseError{Line: r.s.line, Msg: fmt.Sprintf(format, args...)}
}

func (r *reader) incomplete(kind string) error {
	return r.errorf("incomplete %s object", kind)
}

func (r *reader) truncated(what string) error {
	return &ParseError{Line: r.s.line, Msg: "no " + what + " specification", Err: ErrTruncated}
}

func (r *reader) ioError(err error) error {
	return fmt.Errorf("reading line %d: %w", r.s.line+1, err)
}

// nextLine reads the next record line. It reports false at the end of the
// input.
func (r *reader) nextLine() (bool, error) {
	ok, err := r.s.next()
	if err != nil {
		return false, r.ioError(err)
	}
	return ok, nil
}

func (r *reader) read() (*Document, error) {
	c, err := r.s.skipSpace()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, r.ioError(err)
	}

	r.doc = &Document{
		Settings: defaultSettings(),
		Root:     &Compound{},
	}
	if c == '#' {
		hdr, err := r.s.physical()
		if err != nil {
			return nil, r.ioError(err)
		}
		v, ok := parseVersion(hdr)
		if !ok {
			return nil, r.errorf("unknown file format %q", hdr)
		}
		r.version = v
	} else {
		r.version = Version13
	}
	r.doc.Version = r.version

	if err := r.readHeader(); err != nil {
		return nil, err
	}
	if _, err := r.readObjects(r.doc.Root, false); err != nil {
		return nil, err
	}
	r.doc.Colors = r.colors.defs
	return r.doc, nil
}

// readHeader reads the lines between the #FIG line and the first object. Which
// lines exist depends on the version, but their order is fixed.
func (r *reader) readHeader() error {
	set := &r.doc.Settings
	if r.version.HasPageSetup() {
		if ok, err := r.nextLine(); err != nil {
			return err
		} else if !ok {
			return r.truncated("orientation")
		}
		set.Landscape = hasPrefixFold(r.s.buf, "land")

		if ok, err := r.nextLine(); err != nil {
			return err
		} else if !ok {
			return r.truncated("justification")
		}
		// Version 3.0 files may lack the justification line and go straight
		// to the units.
		if hasPrefixFold(r.s.buf, "center") || hasPrefixFold(r.s.buf, "flush") {
			set.Center = hasPrefixFold(r.s.buf, "center")
			if ok, err := r.nextLine(); err != nil {
				return err
			} else if !ok {
				return r.truncated("units")
			}
		}
		set.Metric = hasPrefixFold(r.s.buf, "metric")
	} else {
		set.Landscape = false
		set.Center = false
	}

	if r.version.HasPrintSetup() {
		if ok, err := r.nextLine(); err != nil {
			return err
		} else if !ok {
			return r.truncated("paper size")
		}
		set.PaperSize = strings.TrimSpace(r.s.buf)

		if ok, err := r.nextLine(); err != nil {
			return err
		} else if !ok {
			return r.truncated("magnification")
		}
		f := newFields(r.s.buf)
		mag := f.float()
		if !f.ok || mag <= 0 {
			return r.errorf("invalid magnification %q", r.s.buf)
		}
		set.Magnification = mag

		if ok, err := r.nextLine(); err != nil {
			return err
		} else if !ok {
			return r.truncated("multiple page")
		}
		set.MultiPage = hasPrefixFold(r.s.buf, "multiple")

		if ok, err := r.nextLine(); err != nil {
			return err
		} else if !ok {
			return r.truncated("transparent color")
		}
		f = newFields(r.s.buf)
		set.Transparent = f.int()
		if !f.ok {
			return r.errorf("invalid transparent color %q", r.s.buf)
		}
	}

	if ok, err := r.nextLine(); err != nil {
		return err
	} else if !ok {
		return r.truncated("resolution")
	}
	f := newFields(r.s.buf)
	ppi := f.float()
	coords := f.int()
	if !f.ok {
		return r.errorf("incomplete resolution information")
	}
	if ppi <= 0 {
		return r.errorf("invalid resolution %g", ppi)
	}
	if coords != 1 && coords != 2 {
		return r.errorf("invalid coordinate system %d", coords)
	}
	set.Resolution = ppi
	set.CoordSystem = coords
	r.thickScale = ppi / 80

	// Comments in the header describe the whole figure.
	r.doc.Root.Comments = r.s.takeComments()
	return nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// readObjects reads records into c until the end of the input or, in a
// compound, until the matching end of compound. It reports whether it saw
// the end of compound.
func (r *reader) readObjects(c *Compound, nested bool) (bool, error) {
	for {
		ok, err := r.nextLine()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}

		f := newFields(r.s.buf)
		code := f.int()
		if !f.ok {
			return false, r.errorf("incorrect format")
		}

		switch code {
		case codeColorDef:
			if r.numObjects > 0 || nested {
				return false, r.errorf("color definitions must come before other objects")
			}
			if err := r.readColorDef(); err != nil {
				return false, err
			}

		case codePolyline:
			l, err := r.readLine()
			if err != nil {
				return false, err
			}
			c.Lines = append(c.Lines, l)
			r.numObjects++

		case codeSpline:
			s, err := r.readSpline()
			if err != nil {
				return false, err
			}
			if r.version.HasShapeFactors() {
				l, err := CompileSpline(s, r.precision)
				if l == nil {
					return false, r.errorf("cannot convert spline: %s", err)
				}
				if err != nil {
					r.log.Warn("spline truncated", "line", r.s.line, "err", err)
				}
				c.Lines = append(c.Lines, l)
			} else {
				c.Splines = append(c.Splines, s)
			}
			r.numObjects++

		case codeEllipse:
			e, err := r.readEllipse()
			if err != nil {
				return false, err
			}
			c.Ellipses = append(c.Ellipses, e)
			r.numObjects++

		case codeArc:
			a, err := r.readArc()
			if err != nil {
				return false, err
			}
			c.Arcs = append(c.Arcs, a)
			r.numObjects++

		case codeText:
			t, err := r.readText()
			if err != nil {
				return false, err
			}
			c.Texts = append(c.Texts, t)
			r.numObjects++

		case codeCompound:
			r.numObjects++
			sub, err := r.readCompound()
			if err != nil {
				return false, err
			}
			c.Compounds = append(c.Compounds, sub)

		case codeEndCompound:
			if !nested {
				return false, r.errorf("incorrect object code %d", code)
			}
			return true, nil

		default:
			return false, r.errorf("incorrect object code %d", code)
		}
	}
}

func (r *reader) readCompound() (*Compound, error) {
	f := newFields(r.s.buf)
	f.skip()
	c := &Compound{}
	c.NW.X = f.int()
	c.NW.Y = f.int()
	c.SE.X = f.int()
	c.SE.Y = f.int()
	c.Comments = r.s.takeComments()
	if !f.ok {
		return nil, r.incomplete("compound")
	}
	start := r.s.line
	closed, err := r.readObjects(c, true)
	if err != nil {
		return nil, err
	}
	if !closed {
		r.log.Warn("compound not closed before end of file", "line", start)
	}
	return c, nil
}

func (r *reader) readColorDef() error {
	f := newFields(r.s.buf)
	f.skip()
	idx := f.int()
	hex := f.string()
	if !f.ok {
		return r.incomplete("color")
	}
	rgb, err := parseHexColor(hex)
	if err != nil || idx < NumStdColors {
		r.log.Warn("invalid color definition, using black", "line", r.s.line, "definition", r.s.buf)
		rgb.R, rgb.G, rgb.B, rgb.A = 0, 0, 0, 0xff
	}
	if !r.colors.define(ColorDef{Index: idx, RGB: rgb}) {
		return r.errorf("more than %d user colors", MaxUserColors)
	}
	return nil
}

// color remaps a color number read from the file, see colorTable.remap.
func (r *reader) color(c int) Color {
	col, ok := r.colors.remap(c)
	if !ok {
		r.log.Warn("undefined user color, using default color", "line", r.s.line, "color", c)
	}
	return col
}
