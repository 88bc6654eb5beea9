package fig

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// mustRead parses src, which is indented for readability; leading tabs are
// removed from every line.
func mustRead(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Read(strings.NewReader(dedent(src)), nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return doc
}

func dedent(src string) string {
	lines := strings.Split(strings.TrimPrefix(src, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, "\t")
	}
	return strings.Join(lines, "\n")
}
