package ports

import "go.trai.ch/pbxpatch/internal/core/domain"

// CatalogLoader defines the interface for loading the record catalog.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type CatalogLoader interface {
	// Load resolves the catalog. An explicit path wins; otherwise the catalog file is
	// discovered by walking up from cwd, falling back to the built-in default catalog.
	// It returns the validated catalog and the path it came from ("" for the default).
	Load(cwd, path string) (domain.Catalog, string, error)
}
