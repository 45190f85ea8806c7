// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/swapnilraj/purescript-native/internal/adapters/config"
	_ "github.com/swapnilraj/purescript-native/internal/adapters/fs"
	_ "github.com/swapnilraj/purescript-native/internal/adapters/linear"
	_ "github.com/swapnilraj/purescript-native/internal/adapters/logger"
	_ "github.com/swapnilraj/purescript-native/internal/adapters/shell"
	// Register app nodes.
	_ "github.com/swapnilraj/purescript-native/internal/app"
)
