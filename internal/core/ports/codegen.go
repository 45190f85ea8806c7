package ports

import (
	"context"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

// CodegenWriter persists a compiled module into the output tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=codegen.go -destination=mocks/mock_codegen.go -package=mocks
type CodegenWriter interface {
	// Write persists header, implementation and metadata, then bootstraps the
	// runtime and resolves foreign companions.
	Write(ctx context.Context, m domain.Module, compiled *domain.CompiledModule) error
}

// FFIResolver copies hand-written foreign companions next to the generated code.
type FFIResolver interface {
	// Resolve handles the companions of m. hasForeignImports controls the empty
	// header placeholder.
	Resolve(m domain.Module, hasForeignImports bool) error
}

// RuntimeBootstrapper unpacks the shared runtime support files.
type RuntimeBootstrapper interface {
	// Ensure creates the runtime directory and its files if the directory is absent.
	Ensure() error
	// Verify compares on-disk runtime files with the embedded payloads without repairing them.
	Verify() ([]domain.RuntimeFileStatus, error)
}
