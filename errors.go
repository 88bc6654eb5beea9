package fig

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by [Read] for input without any content.
	ErrEmpty = errors.New("empty file")
	// ErrTruncated is wrapped by errors about missing header lines.
	ErrTruncated = errors.New("file truncated")
	// ErrTooManyPoints is returned together with a truncated, but usable,
	// curve when evaluating an X-spline would exceed [MaxPoints].
	ErrTooManyPoints = errors.New("too many points")
	// ErrTooFewPoints is returned for X-splines without enough control
	// points: two for open and three for closed curves.
	ErrTooFewPoints = errors.New("not enough control points")
	// ErrInvalidPrecision is returned for spline precisions that are not
	// positive and finite.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrUnknownDriver is returned by [NewDriver].
	ErrUnknownDriver = errors.New("unknown output driver")
)

// ParseError describes malformed input. A single ParseError aborts [Read].
type ParseError struct {
	// Line is the 1-based input line at which the problem was noticed.
	Line int
	Msg  string
	// Err is an optional underlying error, such as [ErrTruncated].
	Err error
}

func (err *ParseError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("line %d: %s: %s", err.Line, err.Err, err.Msg)
	}
	return fmt.Sprintf("line %d: %s", err.Line, err.Msg)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
