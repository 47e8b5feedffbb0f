package config

// CatalogFile represents the structure of the pbxpatch.yaml catalog file.
type CatalogFile struct {
	Version  string       `yaml:"version"`
	Sentinel string       `yaml:"sentinel"`
	Strict   bool         `yaml:"strict"`
	Target   TargetDTO    `yaml:"target"`
	Packages []PackageDTO `yaml:"packages"`
	Products []ProductDTO `yaml:"products"`
}

// TargetDTO names the frameworks phase and native target to link products into.
type TargetDTO struct {
	FrameworksPhase string `yaml:"frameworksPhase"`
	NativeTarget    string `yaml:"nativeTarget"`
	Name            string `yaml:"name"`
}

// PackageDTO represents a remote package reference already present in the manifest.
type PackageDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ProductDTO represents a package product and the identifiers of its synthesized records.
type ProductDTO struct {
	Name       string `yaml:"name"`
	Package    string `yaml:"package"`
	Dependency string `yaml:"dependency"`
	BuildFile  string `yaml:"buildFile"`
}
