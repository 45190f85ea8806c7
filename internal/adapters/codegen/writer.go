package codegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/swapnilraj/purescript-native/internal/build"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CodegenWriter = (*Writer)(nil)

// Options configures a Writer.
type Options struct {
	// Banner prepends the generated-by line to header and implementation.
	Banner bool
	// Version is printed in the banner. It defaults to build.Version.
	Version string
}

// Writer writes a module's artifacts as a sequence of independent steps with no
// rollback: header, implementation and metadata first, then the runtime
// bootstrap, then the foreign companions.
type Writer struct {
	layout  domain.Layout
	opts    Options
	externs ports.ExternsStore
	runtime ports.RuntimeBootstrapper
	ffi     ports.FFIResolver
}

// NewWriter creates a new Writer.
func NewWriter(
	layout domain.Layout,
	opts Options,
	externs ports.ExternsStore,
	runtime ports.RuntimeBootstrapper,
	ffi ports.FFIResolver,
) *Writer {
	if opts.Version == "" {
		opts.Version = build.Version
	}
	return &Writer{
		layout:  layout,
		opts:    opts,
		externs: externs,
		runtime: runtime,
		ffi:     ffi,
	}
}

// step is one fallible write of the pipeline.
type step struct {
	name string
	run  func() error
}

// Write persists compiled for module m.
//
// The three primary writes are all attempted even if one fails; their errors
// are joined and abort the module before the runtime and companion steps.
func (w *Writer) Write(ctx context.Context, m domain.Module, compiled *domain.CompiledModule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	set := w.layout.Artifacts(m.Name)
	dir := filepath.Dir(set.Header)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.CannotWriteFile(dir, err)
	}

	banner := ""
	if w.opts.Banner {
		banner = Banner(w.opts.Version)
	}
	header, impl := Split(compiled.Decls)

	primary := []step{
		{"header", func() error { return WriteFile(set.Header, Render(banner, header)) }},
		{"implementation", func() error { return WriteFile(set.Implementation, Render(banner, impl)) }},
		{"externs", func() error { return w.externs.Write(m.Name, compiled.Externs) }},
	}
	if err := runAll(primary); err != nil {
		return err
	}

	return runInOrder([]step{
		{"runtime", w.runtime.Ensure},
		{"ffi", func() error { return w.ffi.Resolve(m, compiled.HasForeignImports()) }},
	})
}

func runAll(steps []step) error {
	var errs []error
	for _, s := range steps {
		if err := s.run(); err != nil {
			errs = append(errs, zerr.With(err, "step", s.name))
		}
	}
	return errors.Join(errs...)
}

func runInOrder(steps []step) error {
	for _, s := range steps {
		if err := s.run(); err != nil {
			return zerr.With(err, "step", s.name)
		}
	}
	return nil
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return domain.CannotWriteFile(filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // Generated sources are world readable
		return domain.CannotWriteFile(path, err)
	}
	return nil
}
