package ports

import "github.com/swapnilraj/purescript-native/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd and walking up.
	// When no file is found it returns the defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)
	// LoadFile reads the configuration file at path.
	LoadFile(path string) (*domain.Config, error)
}
