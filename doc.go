// Package fig reads drawings in the Fig format of the xfig drawing program and
// hands them to output drivers.
//
// # Dialects
//
// Fig files have gone through several revisions. [Read] understands all of
// them, from headerless 1.3 files to version 3.2, and represents every file
// with the same [Document] model. The dialect a document was read from is
// recorded in [Document.Version]; methods such as [Version.HasShapeFactors]
// describe what a dialect can express.
//
// # The document model
//
// A [Document] consists of its [Settings], the user-defined colors, and a
// root [Compound]. Compounds group lines, splines, ellipses, arcs, texts and
// further compounds. Every primitive implements [Object] and carries a depth,
// which orders drawing back to front, and the comments that preceded it in
// the file.
//
// All coordinates are integers in Fig units, of which there are
// [Settings.Resolution] per inch. The y axis points down.
//
// # X-splines
//
// Version 3.2 describes splines as X-splines, whose control points each have a
// shape factor between -1 and 1. Negative factors interpolate the control
// point, positive factors approximate it, and zero creates a sharp corner.
// [EvalOpenXSpline] and [EvalClosedXSpline] evaluate such curves to points,
// and [CompileSpline] turns a [Spline] into a [Line] with the same attributes.
//
// Read compiles version 3.2 splines to lines right away. Splines of older
// dialects are kept as they are; [Spline.XSpline] synthesizes equivalent shape
// factors for them.
//
// # Drivers
//
// [Render] draws a document with a [Driver], one primitive at a time and in
// drawing order. Drivers register themselves with [Register], typically in an
// init function, and are looked up with [NewDriver]. The svg subpackage
// provides a driver producing SVG.
package fig
