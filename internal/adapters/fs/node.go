package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/swapnilraj/purescript-native/internal/adapters/logger"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the module discovery node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the module pattern resolver node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the unique identifier for the file hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ImportScannerNodeID is the unique identifier for the import scanner node.
	ImportScannerNodeID graft.ID = "adapter.fs.imports"
)

func init() {
	graft.Register(graft.Node[ports.ModuleDiscoverer]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ModuleDiscoverer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(log), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ImportScanner]{
		ID:        ImportScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImportScanner, error) {
			return NewImportScanner(), nil
		},
	})
}
