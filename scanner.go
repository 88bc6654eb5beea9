package fig

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// scanner splits a Fig file into records. Most records are a single line,
// read with next. Point lists and shape factors are free-form sequences of
// numbers that may span lines; they are read with token, which continues
// after the most recent record line.
type scanner struct {
	r *bufio.Reader
	// line is the number of physical lines consumed so far.
	line int
	// buf is the current record line.
	buf string
	// rest is the unconsumed part of the current physical line in token mode.
	rest string
	// comments collects comment lines until the next object claims them.
	comments []string
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

// skipSpace consumes leading white space, including newlines, and returns
// the first byte after it without consuming it.
func (s *scanner) skipSpace() (byte, error) {
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case '\n':
			s.line++
		case ' ', '\t', '\r', '\v', '\f':
		default:
			return c, s.r.UnreadByte()
		}
	}
}

// physical reads one line, without its terminator.
func (s *scanner) physical() (string, error) {
	l, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || l == "" {
			return "", err
		}
	}
	s.line++
	return strings.TrimRight(l, "\r\n"), nil
}

// next reads the next record line into buf. Comment lines are collected and
// blank lines skipped. It reports false at the end of the input.
func (s *scanner) next() (bool, error) {
	for {
		l, err := s.physical()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if strings.HasPrefix(l, "#") {
			// Strip the marker and at most one space.
			c := strings.TrimPrefix(l[1:], " ")
			s.comments = append(s.comments, c)
			continue
		}
		if strings.TrimSpace(l) == "" {
			continue
		}
		s.buf = l
		s.rest = ""
		return true, nil
	}
}

// takeComments returns and clears the pending comments.
func (s *scanner) takeComments() []string {
	c := s.comments
	s.comments = nil
	return c
}

// token returns the next white space separated field, reading further lines
// as needed. It reports false at the end of the input.
func (s *scanner) token() (string, bool, error) {
	for {
		s.rest = strings.TrimLeft(s.rest, " \t\r\v\f")
		if s.rest != "" {
			tok := s.rest
			if i := strings.IndexAny(tok, " \t\r\v\f"); i >= 0 {
				tok = tok[:i]
			}
			s.rest = s.rest[len(tok):]
			return tok, true, nil
		}
		l, err := s.physical()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", false, nil
			}
			return "", false, err
		}
		s.rest = l
	}
}

// tokenInt reads an integer with token.
func (s *scanner) tokenInt() (int, bool, error) {
	tok, ok, err := s.token()
	if !ok || err != nil {
		return 0, false, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false, nil
	}
	return v, true, nil
}

// tokenFloat reads a floating point number with token.
func (s *scanner) tokenFloat() (float64, bool, error) {
	tok, ok, err := s.token()
	if !ok || err != nil {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false, nil
	}
	return v, true, nil
}

// skipLine drops the rest of the current physical line.
func (s *scanner) skipLine() {
	s.rest = ""
}

// fields parses the fixed part of a record. Parsing stops at the first
// missing or malformed field; ok reports whether every requested field was
// read.
type fields struct {
	f  []string
	ok bool
}

func newFields(line string) *fields {
	return &fields{f: strings.Fields(line), ok: true}
}

func (f *fields) next() (string, bool) {
	if !f.ok || len(f.f) == 0 {
		f.ok = false
		return "", false
	}
	s := f.f[0]
	f.f = f.f[1:]
	return s, true
}

func (f *fields) skip() {
	f.next()
}

func (f *fields) int() int {
	s, ok := f.next()
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f.ok = false
		return 0
	}
	return v
}

func (f *fields) float() float64 {
	s, ok := f.next()
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.ok = false
		return 0
	}
	return v
}

func (f *fields) string() string {
	s, _ := f.next()
	return s
}
