// Package fs implements manifest storage and content fingerprinting on the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/pbxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore with whole-file reads and writes.
// Writes go straight to the target path; a crash during Write can leave it truncated.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the full content of the manifest at path.
func (s *Store) Read(path string) ([]byte, error) {
	//nolint:gosec // Path is provided by the trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Write replaces the manifest content, keeping the existing file mode.
func (s *Store) Write(path string, content []byte) error {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestStatFailed.Error()), "path", path)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = domain.FilePerm
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}
