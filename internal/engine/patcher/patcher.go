// Package patcher applies a record catalog to a build manifest using line markers.
//
// The pipeline runs in four stages: the idempotency guard, record synthesis, a structural
// insertion pass and a section appending pass. Each injection point is an independent state
// machine that fires at most once per pass. Untouched lines are carried over byte for byte.
package patcher

import (
	"strings"

	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Patcher applies one catalog.
type Patcher struct {
	catalog domain.Catalog
	markers domain.Markers
	records Records
}

// New creates a Patcher for the catalog. The catalog must be validated.
func New(c domain.Catalog) *Patcher {
	return &Patcher{
		catalog: c,
		markers: domain.MarkersFor(&c),
		records: Synthesize(&c),
	}
}

// Records returns the synthesized records.
func (p *Patcher) Records() Records {
	return p.records
}

// Patch applies the catalog to content and returns the fully expanded document.
// An already patched document is returned unchanged with OutcomeAlreadyPatched, and one
// left behind by an earlier partial run with OutcomePartiallyPatched.
// Nothing is written: persisting Result.Content is up to the caller.
func (p *Patcher) Patch(content []byte) (*domain.Result, error) {
	doc := string(content)

	if AlreadyPatched(doc, p.catalog.SentinelID()) {
		return &domain.Result{Outcome: domain.OutcomeAlreadyPatched, Content: content}, nil
	}

	lines := splitLines(doc)
	if taken := takenIDs(doc, &p.catalog); len(taken) > 0 {
		if p.priorPatch(lines, taken) {
			return &domain.Result{Outcome: domain.OutcomePartiallyPatched, Content: content}, nil
		}
		return nil, zerr.With(domain.ErrIdentifierCollision, "identifiers", strings.Join(taken, ", "))
	}
	nl := newline(lines)

	buildFiles := NewPoint(domain.PointBuildFiles, p.markers.BuildFileSection, p.records.buildFileLines(nl))
	phase := NewArmedPoint(domain.PointFrameworksPhase, p.markers.FrameworksPhase, p.markers.FilesList,
		p.records.phaseLinkLines(nl))
	// Keys of a target block are sorted, so an existing list opens before productType.
	target := NewArmedPoint(domain.PointTargetDependencies, p.markers.NativeTarget, p.markers.TargetProductDeps,
		p.records.targetEntryLines(nl)).
		WithFallback(p.markers.ProductType, p.records.targetDependencyLines(nl))

	expanded := Insert(lines, buildFiles, phase, target)

	var section *Point
	if strings.Contains(doc, p.markers.ProductDepSection) {
		// Only one section per isa is allowed, so records join the existing one.
		section = NewPoint(domain.PointProductDepSection, p.markers.ProductDepSection,
			p.records.dependencyRecordLines(nl))
		expanded = Insert(expanded, section)
	} else {
		section = NewPoint(domain.PointProductDepSection, p.markers.ProjectSection, p.records.sectionLines(nl))
		expanded = InsertBefore(expanded, section)
	}

	res := &domain.Result{
		Outcome: domain.OutcomePatched,
		Injections: []domain.Injection{
			buildFiles.Report(),
			phase.Report(),
			target.Report(),
			section.Report(),
		},
		Content: []byte(strings.Join(expanded, "")),
	}

	if missing := res.Missing(); p.catalog.Strict && len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = string(m)
		}
		return nil, zerr.With(domain.ErrMarkerNotFound, "points", strings.Join(names, ", "))
	}

	return res, nil
}

// splitLines splits s after every newline, keeping terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// newline returns the line terminator used by the document.
func newline(lines []string) string {
	if len(lines) > 0 && strings.HasSuffix(lines[0], "\r\n") {
		return "\r\n"
	}
	return "\n"
}
