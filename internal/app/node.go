package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/swapnilraj/purescript-native/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			shell.NodeID,
			fs.HasherNodeID,
			fs.WalkerNodeID,
			fs.ResolverNodeID,
			fs.ImportScannerNodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.ModuleDiscoverer](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ModuleResolver](ctx)
	if err != nil {
		return nil, err
	}

	imports, err := graft.Dep[ports.ImportScanner](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[*linear.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, executor, hasher, discoverer, resolver, imports, progress), nil
}
