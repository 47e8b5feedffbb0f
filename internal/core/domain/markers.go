package domain

import "fmt"

// Section and list markers of the manifest grammar.
const (
	BuildFileSectionBegin  = "/* Begin PBXBuildFile section */"
	ProjectSectionBegin    = "/* Begin PBXProject section */"
	ProductDepSectionBegin = "/* Begin XCSwiftPackageProductDependency section */"
	ProductDepSectionEnd   = "/* End XCSwiftPackageProductDependency section */"
	FilesListOpen          = "files = ("
	ProductTypeKey         = "productType = "
	PackageProductDepsOpen = "packageProductDependencies = ("
)

// Markers holds the literal sub-strings that locate every injection point.
// Matching is case-sensitive containment, never tokenization.
type Markers struct {
	BuildFileSection  string
	FrameworksPhase   string
	FilesList         string
	NativeTarget      string
	ProductType       string
	TargetProductDeps string
	ProjectSection    string
	ProductDepSection string
}

// MarkersFor derives the markers for the catalog's target.
func MarkersFor(c *Catalog) Markers {
	return Markers{
		BuildFileSection:  BuildFileSectionBegin,
		FrameworksPhase:   fmt.Sprintf("%s /* Frameworks */ = {", c.Target.FrameworksPhase),
		FilesList:         FilesListOpen,
		NativeTarget:      fmt.Sprintf("%s /* %s */ = {", c.Target.NativeTarget, c.Target.Name),
		ProductType:       ProductTypeKey,
		TargetProductDeps: PackageProductDepsOpen,
		ProjectSection:    ProjectSectionBegin,
		ProductDepSection: ProductDepSectionBegin,
	}
}
