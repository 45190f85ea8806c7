package config

// Projectfile represents the structure of pscpp.yaml and pscpp.toml.
type Projectfile struct {
	Version    string            `yaml:"version" toml:"version"`
	SourceDir  string            `yaml:"sourceDir" toml:"sourceDir"`
	OutputDir  string            `yaml:"outputDir" toml:"outputDir"`
	Extensions ExtensionsDTO     `yaml:"extensions" toml:"extensions"`
	Banner     *bool             `yaml:"banner" toml:"banner"`
	Jobs       int               `yaml:"jobs" toml:"jobs"`
	Frontend   FrontendDTO       `yaml:"frontend" toml:"frontend"`
	Modules    map[string]string `yaml:"modules" toml:"modules"`
	Exclude    []string          `yaml:"exclude" toml:"exclude"`
}

// ExtensionsDTO overrides the file extensions of the layout.
type ExtensionsDTO struct {
	Source         string   `yaml:"source" toml:"source"`
	Header         string   `yaml:"header" toml:"header"`
	Implementation string   `yaml:"implementation" toml:"implementation"`
	Other          []string `yaml:"other" toml:"other"`
}

// FrontendDTO describes the external compiler frontend.
type FrontendDTO struct {
	Cmd         []string          `yaml:"cmd" toml:"cmd"`
	Environment map[string]string `yaml:"environment" toml:"environment"`
}
