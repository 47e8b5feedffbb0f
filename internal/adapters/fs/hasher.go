package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pbxpatch/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints manifest content with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the XXHash of content as 16 hex digits.
func (h *Hasher) Fingerprint(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
