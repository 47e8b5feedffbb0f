package domain

// RecordKind classifies a synthesized record.
type RecordKind string

const (
	// KindBuildFile wraps a product dependency for a build phase.
	KindBuildFile RecordKind = "build-file"
	// KindProductDependency declares a package product.
	KindProductDependency RecordKind = "product-dependency"
	// KindPhaseLink references a build file from a build phase list.
	KindPhaseLink RecordKind = "phase-link"
)

// Record is a synthetic manifest entry. Records are immutable once built.
type Record struct {
	ID      Identifier
	Comment string
	Kind    RecordKind
	// Ref is the identifier this record points at: the product dependency for build files
	// and the package for product dependencies. Phase links have no Ref; their ID is the
	// build file they list.
	Ref        Identifier
	RefComment string
	// ProductName is set on product dependencies only.
	ProductName string
}
