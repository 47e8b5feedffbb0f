// Package domain contains the core domain models for patching build manifests.
package domain

import "go.trai.ch/zerr"

// Package is a remote package reference that is expected to already exist in the manifest.
type Package struct {
	ID   Identifier
	Name string
}

// Product is a single package product linked into the target.
// Dependency keys the product-dependency record and BuildFile keys the build-file record
// that wraps it for the frameworks phase.
type Product struct {
	Name       string
	Package    Identifier
	Dependency Identifier
	BuildFile  Identifier
}

// Target names the blocks the products are linked into.
type Target struct {
	FrameworksPhase Identifier
	NativeTarget    Identifier
	Name            string
}

// Catalog is the fixed set of records a patch inserts.
type Catalog struct {
	// Sentinel is the identifier whose presence marks a manifest as already patched.
	// An empty sentinel resolves to the first product's dependency identifier.
	Sentinel Identifier
	// Strict makes missing markers fail the patch instead of being skipped.
	Strict   bool
	Target   Target
	Packages []Package
	Products []Product
}

// DefaultCatalog returns the MLX catalog with its pre-assigned identifiers.
func DefaultCatalog() Catalog {
	const (
		mlxPackage   Identifier = "96B796092F00EDE300F7DF93"
		mlxLMPackage Identifier = "96B7960A2F00EFF500F7DF93"
	)

	return Catalog{
		Target: Target{
			FrameworksPhase: "A1000020282A0001",
			NativeTarget:    "A1000040282A0001",
			Name:            "iMessageWrapped",
		},
		Packages: []Package{
			{ID: mlxPackage, Name: "mlx-swift"},
			{ID: mlxLMPackage, Name: "mlx-swift-lm"},
		},
		Products: []Product{
			{
				Name:       "MLX",
				Package:    mlxPackage,
				Dependency: "96B7960B2F00F00100F7DF93",
				BuildFile:  "96B7960D2F00F00300F7DF93",
			},
			{
				Name:       "MLXLLM",
				Package:    mlxLMPackage,
				Dependency: "96B7960C2F00F00200F7DF93",
				BuildFile:  "96B7960E2F00F00400F7DF93",
			},
			{
				Name:       "MLXLMCommon",
				Package:    mlxLMPackage,
				Dependency: "96B7960F2F00F00500F7DF93",
				BuildFile:  "96B796102F00F00600F7DF93",
			},
		},
	}
}

// SentinelID returns the identifier checked by the idempotency guard.
func (c *Catalog) SentinelID() Identifier {
	if c.Sentinel != "" {
		return c.Sentinel
	}
	if len(c.Products) == 0 {
		return ""
	}
	return c.Products[0].Dependency
}

// Package returns the package with the given identifier.
func (c *Catalog) Package(id Identifier) (Package, bool) {
	for _, p := range c.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// SynthesizedIDs returns every identifier the patch introduces, in catalog order.
// Package identifiers are excluded since they are expected to pre-exist.
func (c *Catalog) SynthesizedIDs() []Identifier {
	ids := make([]Identifier, 0, 2*len(c.Products))
	for _, p := range c.Products {
		ids = append(ids, p.BuildFile, p.Dependency)
	}
	return ids
}

// Validate checks identifiers, references and the sentinel.
func (c *Catalog) Validate() error {
	if len(c.Products) == 0 {
		return ErrEmptyCatalog
	}
	if c.Target.FrameworksPhase == "" || c.Target.NativeTarget == "" || c.Target.Name == "" {
		return ErrMissingTarget
	}

	seen := make(map[Identifier]string)
	claim := func(id Identifier, owner string) error {
		if !id.Valid() {
			return zerr.With(zerr.With(ErrInvalidIdentifier, "identifier", id.String()), "owner", owner)
		}
		if prev, ok := seen[id]; ok {
			return zerr.With(zerr.With(ErrDuplicateIdentifier, "identifier", id.String()), "owners", prev+", "+owner)
		}
		seen[id] = owner
		return nil
	}

	if err := claim(c.Target.FrameworksPhase, "target.frameworksPhase"); err != nil {
		return err
	}
	if err := claim(c.Target.NativeTarget, "target.nativeTarget"); err != nil {
		return err
	}
	for _, p := range c.Packages {
		if err := claim(p.ID, "package "+p.Name); err != nil {
			return err
		}
	}

	for _, p := range c.Products {
		if p.Name == "" {
			return ErrMissingProductName
		}
		if _, ok := c.Package(p.Package); !ok {
			return zerr.With(zerr.With(ErrUnknownPackage, "product", p.Name), "package", p.Package.String())
		}
		if err := claim(p.Dependency, "product "+p.Name+" dependency"); err != nil {
			return err
		}
		if err := claim(p.BuildFile, "product "+p.Name+" build file"); err != nil {
			return err
		}
	}

	sentinel := c.SentinelID()
	for _, p := range c.Products {
		if p.Dependency == sentinel {
			return nil
		}
	}
	return zerr.With(ErrInvalidSentinel, "sentinel", sentinel.String())
}
