package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash checksums of files and payloads.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, domain.CannotReadFile(path, err)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, domain.CannotReadFile(path, err)
	}

	return hasher.Sum64(), nil
}

// ComputeBytesHash computes the XXHash of data.
func (h *Hasher) ComputeBytesHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
