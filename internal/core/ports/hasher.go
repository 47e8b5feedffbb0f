package ports

// Hasher defines the interface for fingerprinting manifest content.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable hex digest of content.
	Fingerprint(content []byte) string
}
