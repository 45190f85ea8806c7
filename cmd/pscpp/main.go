// Package main is the entry point for the pscpp build tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/swapnilraj/purescript-native/cmd/pscpp/commands"
	"github.com/swapnilraj/purescript-native/internal/app"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	_ "github.com/swapnilraj/purescript-native/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Module failures were already printed by the progress reporter.
		if errors.Is(err, domain.ErrBuildExecutionFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
