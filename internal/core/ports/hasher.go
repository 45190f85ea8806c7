package ports

// Hasher defines the interface for computing file checksums.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the checksum of the file at path.
	ComputeFileHash(path string) (uint64, error)
	// ComputeBytesHash returns the checksum of data.
	ComputeBytesHash(data []byte) uint64
}
