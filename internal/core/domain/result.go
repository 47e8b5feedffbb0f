package domain

// Outcome is the result of applying a catalog to a manifest.
type Outcome string

const (
	// OutcomePatched indicates the manifest was mutated.
	OutcomePatched Outcome = "patched"
	// OutcomeAlreadyPatched indicates the sentinel was found and nothing changed.
	OutcomeAlreadyPatched Outcome = "already patched"
	// OutcomePartiallyPatched indicates an earlier lenient run applied only the points
	// without the sentinel. Nothing changed.
	OutcomePartiallyPatched Outcome = "partially patched"
)

// Point names an injection point in the manifest.
type Point string

// Injection points, in the order they are reported.
const (
	PointBuildFiles         Point = "build-files"
	PointFrameworksPhase    Point = "frameworks-phase"
	PointTargetDependencies Point = "target-dependencies"
	PointProductDepSection  Point = "product-dependency-section"
)

// Injection reports what happened at one injection point.
type Injection struct {
	Point   Point
	Applied bool
	// Line is the 1-based line of the triggering marker in the pass that applied it.
	Line int
	// Added is the number of lines inserted.
	Added int
}

// Result describes one patch of one manifest.
type Result struct {
	Path       string
	Outcome    Outcome
	Injections []Injection
	// Before and After are content fingerprints of the manifest.
	Before  string
	After   string
	Content []byte
}

// Missing returns the injection points that never matched.
func (r *Result) Missing() []Point {
	var missing []Point
	for _, inj := range r.Injections {
		if !inj.Applied {
			missing = append(missing, inj.Point)
		}
	}
	return missing
}

// Changed reports whether the patch produced different content.
func (r *Result) Changed() bool {
	return r.Before != r.After
}
