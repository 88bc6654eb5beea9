package fig

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Driver is an output format. [Render] calls Start, then Grid if a grid was
// requested, then one method per object in drawing order, and finally End.
//
// Drivers only see splines of files older than 3.2, and only if
// [RenderOptions.CompileSplines] is false.
type Driver interface {
	// Option sets a driver-specific option before rendering starts.
	Option(name, value string) error
	Start(doc *Document) error
	// Grid draws a grid with the given spacings in Fig units. Zero means no
	// grid of that kind.
	Grid(major, minor float64) error
	Line(l *Line) error
	Spline(s *Spline) error
	Ellipse(e *Ellipse) error
	Arc(a *Arc) error
	Text(t *Text) error
	// End finishes the output. Drivers that buffer output write it now.
	End() error
}

var (
	driversMu sync.RWMutex
	drivers   = map[string]func(w io.Writer) Driver{}
)

// Register makes a driver available under the given name. It panics if the
// name is already taken.
func Register(name string, fn func(w io.Writer) Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if fn == nil {
		panic("fig: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("fig: Register called twice for driver " + name)
	}
	drivers[name] = fn
}

// NewDriver returns a new instance of the named driver, writing to w.
func NewDriver(name string, w io.Writer) (Driver, error) {
	driversMu.RLock()
	fn, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, name)
	}
	return fn(w), nil
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RenderOptions configures [Render]. The zero value is ready to use.
type RenderOptions struct {
	// Grid spacings passed to [Driver.Grid]. The method is only called if at
	// least one is nonzero.
	MajorGrid float64
	MinorGrid float64
	// CompileSplines turns the splines of files older than 3.2 into lines
	// before handing them to the driver.
	CompileSplines bool
	// Precision of compiled splines. Zero means [HighPrecision]; other
	// values have to be positive and finite.
	Precision float64
	// Logger receives warnings about splines that could only be compiled
	// partially. If nil, they are discarded.
	Logger *slog.Logger
}

// DrawingOrder returns the objects of c and its descendants in the order
// they should be drawn: by decreasing depth, and in tree order for equal
// depths.
func DrawingOrder(c *Compound) []Object {
	objs := slices.Collect(c.Objects())
	slices.SortStableFunc(objs, func(a, b Object) int {
		return cmp.Compare(b.depth(), a.depth())
	})
	return objs
}

// Render draws doc with drv.
func Render(doc *Document, drv Driver, opts *RenderOptions) error {
	if opts == nil {
		opts = &RenderOptions{}
	}
	precision := opts.Precision
	if precision == 0 {
		precision = HighPrecision
	}
	precision, err := checkPrecision(precision)
	if err != nil {
		return err
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if err := drv.Start(doc); err != nil {
		return err
	}
	if opts.MajorGrid != 0 || opts.MinorGrid != 0 {
		if err := drv.Grid(opts.MajorGrid, opts.MinorGrid); err != nil {
			return err
		}
	}
	for _, obj := range DrawingOrder(doc.Root) {
		var err error
		switch obj := obj.(type) {
		case *Line:
			err = drv.Line(obj)
		case *Spline:
			if opts.CompileSplines {
				l, cerr := CompileSpline(obj.XSpline(), precision)
				if l == nil {
					err = cerr
					break
				}
				if cerr != nil {
					log.Warn("spline truncated", "depth", obj.Depth, "err", cerr)
				}
				err = drv.Line(l)
			} else {
				err = drv.Spline(obj)
			}
		case *Ellipse:
			err = drv.Ellipse(obj)
		case *Arc:
			err = drv.Arc(obj)
		case *Text:
			err = drv.Text(obj)
		}
		if err != nil {
			return err
		}
	}
	return drv.End()
}
