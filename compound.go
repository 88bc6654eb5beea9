package fig

import "iter"

// Compound groups objects and other compounds. The root of every document is
// a compound.
//
// Each list keeps the order of the file, but there is no order between
// objects of different kinds. Drawing order is decided by depth alone.
type Compound struct {
	// NW and SE are the corners the writer recorded. Use [Compound.Bounds]
	// for the actual extents.
	NW        Point
	SE        Point
	Lines     []*Line
	Splines   []*Spline
	Ellipses  []*Ellipse
	Arcs      []*Arc
	Texts     []*Text
	Compounds []*Compound
	Comments  []string
}

// Objects returns all primitives of c and its descendants. Every object of
// c is yielded before any object of its child compounds.
func (c *Compound) Objects() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		c.walk(yield)
	}
}

func (c *Compound) walk(yield func(Object) bool) bool {
	for _, l := range c.Lines {
		if !yield(l) {
			return false
		}
	}
	for _, s := range c.Splines {
		if !yield(s) {
			return false
		}
	}
	for _, e := range c.Ellipses {
		if !yield(e) {
			return false
		}
	}
	for _, a := range c.Arcs {
		if !yield(a) {
			return false
		}
	}
	for _, t := range c.Texts {
		if !yield(t) {
			return false
		}
	}
	for _, sub := range c.Compounds {
		if !sub.walk(yield) {
			return false
		}
	}
	return true
}

// Count returns the number of objects and compounds in c and its
// descendants. c itself is not counted.
func (c *Compound) Count() Counts {
	n := Counts{
		Lines:     len(c.Lines),
		Splines:   len(c.Splines),
		Ellipses:  len(c.Ellipses),
		Arcs:      len(c.Arcs),
		Texts:     len(c.Texts),
		Compounds: len(c.Compounds),
	}
	for _, sub := range c.Compounds {
		m := sub.Count()
		n.Lines += m.Lines
		n.Splines += m.Splines
		n.Ellipses += m.Ellipses
		n.Arcs += m.Arcs
		n.Texts += m.Texts
		n.Compounds += m.Compounds
	}
	return n
}

// Bounds returns the box enclosing every object of c and its descendants.
// The result is empty if there are no objects.
func (c *Compound) Bounds() Rect {
	r := emptyRect
	for obj := range c.Objects() {
		r = r.Union(Bounds(obj))
	}
	return r
}

// Bounds returns the bounding box of any object.
func Bounds(obj Object) Rect {
	switch obj := obj.(type) {
	case *Line:
		return obj.Bounds()
	case *Spline:
		return obj.Bounds()
	case *Ellipse:
		return obj.Bounds()
	case *Arc:
		return obj.Bounds()
	case *Text:
		return obj.Bounds()
	default:
		panic("unreachable")
	}
}
