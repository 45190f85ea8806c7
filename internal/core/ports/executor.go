// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, feeding stdin and copying its output streams.
	// It returns an error carrying the exit code if the command fails.
	Execute(ctx context.Context, cmd *domain.Command, stdin io.Reader, stdout, stderr io.Writer) error
}
