package ports

import "github.com/swapnilraj/purescript-native/internal/core/domain"

// ExternsStore reads and writes interface metadata files.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExternsStore interface {
	// Read loads the persisted metadata of a module.
	Read(name domain.ModuleName) ([]byte, error)
	// Write persists metadata verbatim.
	Write(name domain.ModuleName, data []byte) error
}
