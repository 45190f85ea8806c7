// Package fs provides file system adapters for module discovery, freshness
// checks and hashing.
package fs

import (
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleDiscoverer = (*Walker)(nil)

// Walker provides file walking and module discovery.
type Walker struct {
	logger ports.Logger
}

// NewWalker creates a new Walker that reports skipped sources to logger.
func NewWalker(logger ports.Logger) *Walker {
	return &Walker{logger: logger}
}

// WalkFiles yields all files under root, skipping .git, .jj and ignored entries.
// Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skipAction := w.shouldSkipDir(d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkipDir returns filepath.SkipDir for directories that must not be descended into.
func (w *Walker) shouldSkipDir(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched && d.IsDir() {
			return filepath.SkipDir
		}
	}

	return nil
}

// Discover returns every source file under the layout's source directory as a
// file-backed module, sorted by name. A missing source directory yields no modules.
// Directories matching layout.Exclude and dot-prefixed files are skipped, and
// paths that do not map to a valid module name are logged and skipped.
func (w *Walker) Discover(root string, layout domain.Layout) ([]domain.Module, error) {
	srcDir := layout.SourceDir
	if !filepath.IsAbs(srcDir) {
		srcDir = filepath.Join(root, srcDir)
	}

	ext := "." + strings.TrimPrefix(layout.SourceExt, ".")
	var modules []domain.Module
	for path := range w.WalkFiles(srcDir, layout.Exclude) {
		if filepath.Ext(path) != ext || strings.HasPrefix(filepath.Base(path), ".") {
			continue
		}
		name, err := ModuleFromPath(srcDir, path)
		if err != nil {
			w.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}
		modules = append(modules, domain.NewFileModule(name, path))
	}

	slices.SortFunc(modules, func(a, b domain.Module) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})
	return modules, nil
}

// ModuleFromPath maps srcDir/A/B/C.ext to the module name A.B.C.
func ModuleFromPath(srcDir, path string) (domain.ModuleName, error) {
	rel, err := filepath.Rel(srcDir, path)
	if err != nil {
		return domain.ModuleName{}, zerr.With(zerr.Wrap(err, "source outside source directory"), "path", path)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return domain.ParseModuleName(strings.Join(strings.Split(filepath.ToSlash(rel), "/"), "."))
}
