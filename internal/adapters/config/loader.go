// Package config provides the configuration loader for pscpp.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvFileName is the dotenv file read from the project root.
	EnvFileName = ".env"
	// EnvOutputDir overrides the configured output directory.
	EnvOutputDir = "PSCPP_OUTPUT_DIR"
	// EnvSourceDir overrides the configured source directory.
	EnvSourceDir = "PSCPP_SOURCE_DIR"

	supportedVersion = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for pscpp.yaml and pscpp.toml files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	// LookupEnv reads the process environment. It defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS(), LookupEnv: os.LookupEnv}
}

// Load discovers pscpp.yaml or pscpp.toml by walking up from cwd. Without a
// configuration file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		cfg := domain.DefaultConfig(filepath.Clean(cwd))
		return cfg, l.applyEnv(cfg)
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration file at path.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "explicit configuration missing"), "path", path)
		}
		return nil, domain.CannotReadFile(path, err)
	}

	var pf Projectfile
	if err := unmarshal(path, data, &pf); err != nil {
		return nil, err
	}

	cfg, err := l.toDomain(filepath.Dir(filepath.Clean(path)), &pf)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, l.applyEnv(cfg)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		for _, name := range []string{domain.ConfigFileYAML, domain.ConfigFileTOML} {
			candidate := filepath.Join(currentDir, name)
			_, err := l.FS.Stat(candidate)
			if err == nil {
				return candidate, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return "", domain.CannotGetFileInfo(candidate, err)
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func unmarshal(path string, data []byte, target *Projectfile) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, target)
	} else {
		err = yaml.Unmarshal(data, target)
	}
	if err != nil {
		return zerr.With(invalid(err), "path", path)
	}
	return nil
}

func (l *Loader) toDomain(root string, pf *Projectfile) (*domain.Config, error) {
	if pf.Version != "" && pf.Version != supportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unsupported version"), "version", pf.Version)
	}
	if pf.Jobs < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "jobs must not be negative"), "jobs", pf.Jobs)
	}

	cfg := domain.DefaultConfig(root)
	setIfNotEmpty(&cfg.Layout.SourceDir, pf.SourceDir)
	setIfNotEmpty(&cfg.Layout.OutputDir, pf.OutputDir)
	setIfNotEmpty(&cfg.Layout.SourceExt, trimDot(pf.Extensions.Source))
	setIfNotEmpty(&cfg.Layout.HeaderExt, trimDot(pf.Extensions.Header))
	setIfNotEmpty(&cfg.Layout.ImplExt, trimDot(pf.Extensions.Implementation))
	for _, ext := range pf.Extensions.Other {
		if ext = trimDot(ext); ext != "" && !slices.Contains(cfg.Layout.OtherExts, ext) {
			cfg.Layout.OtherExts = append(cfg.Layout.OtherExts, ext)
		}
	}
	for _, pattern := range pf.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "bad exclude pattern"), "pattern", pattern)
		}
		cfg.Layout.Exclude = append(cfg.Layout.Exclude, pattern)
	}

	if pf.Banner != nil {
		cfg.Banner = *pf.Banner
	}
	if pf.Jobs > 0 {
		cfg.Jobs = pf.Jobs
	}
	cfg.Frontend = domain.FrontendConfig{
		Command:     pf.Frontend.Cmd,
		Environment: pf.Frontend.Environment,
	}

	virtual, err := virtualModules(pf.Modules)
	if err != nil {
		return nil, err
	}
	cfg.Virtual = virtual
	return cfg, nil
}

// virtualModules returns the policy-governed modules sorted by name.
func virtualModules(policies map[string]string) ([]domain.Module, error) {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	slices.Sort(names)

	modules := make([]domain.Module, 0, len(names))
	for _, raw := range names {
		name, err := domain.ParseModuleName(raw)
		if err != nil {
			return nil, zerr.With(invalid(err), "module", raw)
		}
		policy, err := domain.ParseRebuildPolicy(policies[raw])
		if err != nil {
			return nil, zerr.With(err, "module", raw)
		}
		modules = append(modules, domain.NewVirtualModule(name, policy))
	}
	return modules, nil
}

// applyEnv overrides layout directories from the process environment, falling
// back to the project's .env file. Process variables win.
func (l *Loader) applyEnv(cfg *domain.Config) error {
	dotenv, err := l.readDotenv(filepath.Join(cfg.Root, EnvFileName))
	if err != nil {
		return err
	}

	lookup := func(key string) string {
		if l.LookupEnv != nil {
			if v, ok := l.LookupEnv(key); ok {
				return v
			}
		}
		return dotenv[key]
	}

	setIfNotEmpty(&cfg.Layout.OutputDir, lookup(EnvOutputDir))
	setIfNotEmpty(&cfg.Layout.SourceDir, lookup(EnvSourceDir))
	return nil
}

func (l *Loader) readDotenv(path string) (map[string]string, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.CannotReadFile(path, err)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(invalid(err), "path", path)
	}
	if l.Logger != nil {
		l.Logger.Info("loaded environment from " + path)
	}
	return vars, nil
}

// invalid keeps both ErrConfigInvalid and the parser error reachable.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrConfigInvalid, err)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func trimDot(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}
