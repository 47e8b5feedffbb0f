package patcher

import (
	"fmt"

	"go.trai.ch/pbxpatch/internal/core/domain"
)

// Records is the synthesized record set for one catalog, grouped by where it is written.
type Records struct {
	BuildFiles   []domain.Record
	PhaseLinks   []domain.Record
	Dependencies []domain.Record
}

// Synthesize builds the records for every catalog product. It performs no I/O and cannot fail;
// the catalog is expected to be validated.
func Synthesize(c *domain.Catalog) Records {
	r := Records{
		BuildFiles:   make([]domain.Record, 0, len(c.Products)),
		PhaseLinks:   make([]domain.Record, 0, len(c.Products)),
		Dependencies: make([]domain.Record, 0, len(c.Products)),
	}

	for _, p := range c.Products {
		inFrameworks := p.Name + " in Frameworks"
		pkg, _ := c.Package(p.Package)

		r.BuildFiles = append(r.BuildFiles, domain.Record{
			ID:         p.BuildFile,
			Comment:    inFrameworks,
			Kind:       domain.KindBuildFile,
			Ref:        p.Dependency,
			RefComment: p.Name,
		})
		r.PhaseLinks = append(r.PhaseLinks, domain.Record{
			ID:      p.BuildFile,
			Comment: inFrameworks,
			Kind:    domain.KindPhaseLink,
		})
		r.Dependencies = append(r.Dependencies, domain.Record{
			ID:          p.Dependency,
			Comment:     p.Name,
			Kind:        domain.KindProductDependency,
			Ref:         pkg.ID,
			RefComment:  fmt.Sprintf("XCRemoteSwiftPackageReference %q", pkg.Name),
			ProductName: p.Name,
		})
	}

	return r
}

// buildFileLines renders one build-file declaration per record.
func (r Records) buildFileLines(nl string) []string {
	lines := make([]string, 0, len(r.BuildFiles))
	for _, rec := range r.BuildFiles {
		lines = append(lines, fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXBuildFile; productRef = %s /* %s */; };%s",
			rec.ID, rec.Comment, rec.Ref, rec.RefComment, nl))
	}
	return lines
}

// phaseLinkLines renders the frameworks phase list entries.
func (r Records) phaseLinkLines(nl string) []string {
	lines := make([]string, 0, len(r.PhaseLinks))
	for _, rec := range r.PhaseLinks {
		lines = append(lines, fmt.Sprintf("\t\t\t\t%s /* %s */,%s", rec.ID, rec.Comment, nl))
	}
	return lines
}

// targetEntryLines renders one packageProductDependencies entry per dependency.
func (r Records) targetEntryLines(nl string) []string {
	lines := make([]string, 0, len(r.Dependencies))
	for _, rec := range r.Dependencies {
		lines = append(lines, fmt.Sprintf("\t\t\t\t%s /* %s */,%s", rec.ID, rec.Comment, nl))
	}
	return lines
}

// targetDependencyLines renders the complete packageProductDependencies sub-block.
func (r Records) targetDependencyLines(nl string) []string {
	lines := make([]string, 0, len(r.Dependencies)+2)
	lines = append(lines, "\t\t\t"+domain.PackageProductDepsOpen+nl)
	lines = append(lines, r.targetEntryLines(nl)...)
	return append(lines, "\t\t\t);"+nl)
}

// dependencyRecordLines renders the product-dependency sub-records without a section envelope.
func (r Records) dependencyRecordLines(nl string) []string {
	lines := make([]string, 0, 5*len(r.Dependencies))
	for _, rec := range r.Dependencies {
		lines = append(lines,
			fmt.Sprintf("\t\t%s /* %s */ = {%s", rec.ID, rec.Comment, nl),
			"\t\t\tisa = XCSwiftPackageProductDependency;"+nl,
			fmt.Sprintf("\t\t\tpackage = %s /* %s */;%s", rec.Ref, rec.RefComment, nl),
			fmt.Sprintf("\t\t\tproductName = %s;%s", rec.ProductName, nl),
			"\t\t};"+nl,
		)
	}
	return lines
}

// sectionLines renders a complete product-dependency section followed by a blank separator.
func (r Records) sectionLines(nl string) []string {
	lines := make([]string, 0, 5*len(r.Dependencies)+3)
	lines = append(lines, domain.ProductDepSectionBegin+nl)
	lines = append(lines, r.dependencyRecordLines(nl)...)
	return append(lines, domain.ProductDepSectionEnd+nl, nl)
}
