package ports

// ManifestStore reads and writes whole manifest documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Read returns the full content of the manifest at path.
	Read(path string) ([]byte, error)

	// Write replaces the full content of the manifest at path.
	Write(path string, content []byte) error
}
