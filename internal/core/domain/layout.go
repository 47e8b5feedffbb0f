package domain

const (
	// DefaultManifestPath is the manifest patched when no path is given.
	DefaultManifestPath = "iMessageWrapped.xcodeproj/project.pbxproj"

	// CatalogFileName is the name of the catalog file discovered from the working directory.
	CatalogFileName = "pbxpatch.yaml"

	// FilePerm is the permission used when the manifest mode cannot be preserved (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
