package ports

// Differ renders the difference between two manifest versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=differ.go -destination=mocks/mock_differ.go -package=mocks
type Differ interface {
	// Unified returns a unified diff of before and after labelled with path.
	Unified(path string, before, after []byte) (string, error)
}
