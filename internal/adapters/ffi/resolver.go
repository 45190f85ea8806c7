// Package ffi copies hand-written foreign companions next to the generated code.
package ffi

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/swapnilraj/purescript-native/internal/adapters/codegen"
	"github.com/swapnilraj/purescript-native/internal/adapters/fs"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

var _ ports.FFIResolver = (*Resolver)(nil)

// Resolver implements ports.FFIResolver for a layout.
type Resolver struct {
	layout domain.Layout
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(layout domain.Layout, logger ports.Logger) *Resolver {
	return &Resolver{layout: layout, logger: logger}
}

// Resolve copies the header and implementation companions of m when they exist,
// writing an empty header when the module declares foreign imports but ships no
// header. Extra extensions are copied best effort.
func (r *Resolver) Resolve(m domain.Module, hasForeignImports bool) error {
	src, ok := m.SourcePath()
	if !ok {
		return nil
	}

	in := r.layout.Companions(src)
	out := r.layout.Artifacts(m.Name)

	copied, err := copyIfExists(in.Header, out.FFIHeader)
	if err != nil {
		return err
	}
	if !copied && hasForeignImports {
		if err := codegen.WriteFile(out.FFIHeader, nil); err != nil {
			return err
		}
	}

	if _, err := copyIfExists(in.Implementation, out.FFIImplementation); err != nil {
		return err
	}

	for _, ext := range r.layout.OtherExts {
		r.copyBestEffort(in.Other[ext], out.FFIOther[ext])
	}
	return nil
}

// copyBestEffort never fails the module. A failure is only worth a warning when
// the companion was actually there.
func (r *Resolver) copyBestEffort(from, to string) {
	_, err := copyIfExists(from, to)
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrCannotGetFileInfo) {
		return
	}
	r.logger.Warn(fmt.Sprintf("skipping foreign companion %s: %v", from, err))
}

// copyIfExists copies from to to verbatim and reports whether from existed.
func copyIfExists(from, to string) (bool, error) {
	exists, err := fs.Exists(from)
	if err != nil || !exists {
		return false, err
	}

	//nolint:gosec // Companion paths are derived from the configured layout
	data, err := os.ReadFile(from)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, domain.CannotReadFile(from, err)
	}
	if err := codegen.WriteFile(to, data); err != nil {
		return true, err
	}
	return true, nil
}
