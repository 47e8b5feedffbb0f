package patcher

import (
	"strings"

	"go.trai.ch/pbxpatch/internal/core/domain"
)

// AlreadyPatched reports whether the sentinel identifier occurs anywhere in content.
// A sub-string collision with an unrelated identifier is accepted: ids are large random hex tokens.
func AlreadyPatched(content string, sentinel domain.Identifier) bool {
	if sentinel == "" {
		return false
	}
	return strings.Contains(content, sentinel.String())
}

// takenIDs returns the synthesized identifiers the manifest already uses.
// It runs after the guard, so the sentinel itself is never among them.
func takenIDs(content string, c *domain.Catalog) []string {
	var taken []string
	for _, id := range c.SynthesizedIDs() {
		if strings.Contains(content, id.String()) {
			taken = append(taken, id.String())
		}
	}
	return taken
}

// priorPatch reports whether every line mentioning a taken identifier is a line this
// catalog renders. That is the trace of an earlier lenient run that missed the points
// carrying the sentinel.
func (p *Patcher) priorPatch(lines, taken []string) bool {
	rendered := make(map[string]struct{})
	for _, group := range [][]string{
		p.records.buildFileLines(""),
		p.records.phaseLinkLines(""),
		p.records.targetEntryLines(""),
		p.records.dependencyRecordLines(""),
	} {
		for _, l := range group {
			rendered[l] = struct{}{}
		}
	}

	for _, line := range lines {
		for _, id := range taken {
			if !strings.Contains(line, id) {
				continue
			}
			if _, ok := rendered[strings.TrimRight(line, "\r\n")]; !ok {
				return false
			}
		}
	}
	return true
}
