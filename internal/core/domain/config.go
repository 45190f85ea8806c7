package domain

// Config is the resolved project configuration.
type Config struct {
	// Root is the directory holding the configuration file, or the working
	// directory when none was found. Layout paths are relative to it.
	Root   string
	Layout Layout
	// Banner prepends the generated-by line to header and implementation.
	Banner   bool
	Jobs     int
	Frontend FrontendConfig
	// Virtual lists modules with no source file, in configuration order.
	Virtual []Module
}

// FrontendConfig describes the external compiler frontend.
type FrontendConfig struct {
	Command     []string
	Environment map[string]string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:   root,
		Layout: DefaultLayout(),
		Banner: true,
		Jobs:   1,
	}
}
