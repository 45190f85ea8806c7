package ports

import "github.com/swapnilraj/purescript-native/internal/core/domain"

// ModuleDiscoverer finds the modules of a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleDiscoverer interface {
	// Discover returns every file-backed module under the layout's source
	// directory, sorted by name.
	Discover(root string, layout domain.Layout) ([]domain.Module, error)
}

// ModuleResolver selects modules by name pattern.
type ModuleResolver interface {
	// ResolveModules filters candidates by dotted glob patterns such as Data.*.
	// The result keeps first-match order and contains no duplicates.
	ResolveModules(patterns []string, candidates []domain.Module) ([]domain.Module, error)
}

// ImportScanner lists the modules a source file imports.
type ImportScanner interface {
	Imports(sourcePath string) ([]domain.ModuleName, error)
}
