package ports

import (
	"context"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

// Frontend compiles a module into a declaration stream.
//
//go:generate go run go.uber.org/mock/mockgen -source=frontend.go -destination=mocks/mock_frontend.go -package=mocks
type Frontend interface {
	Compile(ctx context.Context, req *domain.CompileRequest) (*domain.CompiledModule, error)
}
