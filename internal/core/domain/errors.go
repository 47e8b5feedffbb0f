package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidIdentifier is returned when a record identifier is not an upper-case hex token.
	ErrInvalidIdentifier = zerr.New("invalid identifier, expected upper-case hex token")

	// ErrDuplicateIdentifier is returned when two catalog records share the same identifier.
	ErrDuplicateIdentifier = zerr.New("duplicate identifier")

	// ErrUnknownPackage is returned when a product references a package missing from the catalog.
	ErrUnknownPackage = zerr.New("product references unknown package")

	// ErrInvalidSentinel is returned when the sentinel is not one of the product dependency identifiers.
	ErrInvalidSentinel = zerr.New("sentinel must be a product dependency identifier")

	// ErrEmptyCatalog is returned when the catalog declares no products.
	ErrEmptyCatalog = zerr.New("catalog declares no products")

	// ErrMissingTarget is returned when the catalog does not name the target to link into.
	ErrMissingTarget = zerr.New("catalog is missing target frameworks phase, native target or name")

	// ErrMissingProductName is returned when a product has no name.
	ErrMissingProductName = zerr.New("product name is required")

	// ErrIdentifierCollision is returned when a synthesized identifier already exists in the manifest.
	ErrIdentifierCollision = zerr.New("synthesized identifier already present in manifest")

	// ErrMarkerNotFound is returned in strict mode when an injection point never matched.
	ErrMarkerNotFound = zerr.New("structural marker not found")

	// ErrNotPatched is returned by check when a manifest has not been patched yet.
	ErrNotPatched = zerr.New("manifest is not patched")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestStatFailed is returned when the manifest file mode cannot be determined.
	ErrManifestStatFailed = zerr.New("failed to stat manifest")

	// ErrCatalogReadFailed is returned when the catalog file cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog file")

	// ErrCatalogParseFailed is returned when the catalog file cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog file")

	// ErrDiffFailed is returned when the dry-run diff cannot be rendered.
	ErrDiffFailed = zerr.New("failed to render diff")

	// ErrPatchFailed is returned when at least one manifest failed to patch.
	ErrPatchFailed = zerr.New("patch failed")
)
