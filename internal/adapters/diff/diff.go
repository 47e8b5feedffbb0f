// Package diff renders unified diffs of patched manifests for dry runs.
package diff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/pbxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultContext is the number of context lines around each hunk.
const DefaultContext = 3

var _ ports.Differ = (*Differ)(nil)

// Differ implements ports.Differ using go-difflib.
type Differ struct {
	Context int
}

// New creates a Differ with the default context.
func New() *Differ {
	return &Differ{Context: DefaultContext}
}

// Unified returns a classic unified diff of before and after with a/ and b/ prefixed
// headers. Identical inputs yield an empty string.
func (d *Differ) Unified(path string, before, after []byte) (string, error) {
	ctx := d.Context
	if ctx <= 0 {
		ctx = DefaultContext
	}

	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(before)),
		B:        splitLinesKeepNL(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  ctx,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDiffFailed.Error()), "path", path)
	}
	return s, nil
}

// splitLinesKeepNL splits s into lines that keep their newline characters.
// A trailing newline does not produce an extra empty line.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
