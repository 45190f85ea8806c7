package ffi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/ffi"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T, otherExts ...string) (domain.Layout, domain.Module) {
	t.Helper()
	root := t.TempDir()
	l := domain.DefaultLayout()
	l.SourceDir = filepath.Join(root, "src")
	l.OutputDir = filepath.Join(root, "out")
	l.OtherExts = otherExts

	name := domain.MustParseModuleName("Foo.Bar")
	src := l.SourcePath(name)
	require.NoError(t, os.MkdirAll(filepath.Dir(src), domain.DirPerm))
	require.NoError(t, os.WriteFile(src, []byte("module Foo.Bar where\n"), domain.FilePerm))
	return l, domain.NewFileModule(name, src)
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestResolve_CopiesCompanionsVerbatim(t *testing.T) {
	l, m := setup(t)
	src, _ := m.SourcePath()
	in := l.Companions(src)
	write(t, in.Header, "#pragma once\nint greet();\n")
	write(t, in.Implementation, "int greet() { return 1; }\n")

	r := ffi.NewResolver(l, mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, r.Resolve(m, true))

	out := l.Artifacts(m.Name)
	header, err := os.ReadFile(out.FFIHeader)
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\nint greet();\n", string(header))

	impl, err := os.ReadFile(out.FFIImplementation)
	require.NoError(t, err)
	assert.Equal(t, "int greet() { return 1; }\n", string(impl))
}

func TestResolve_EmptyHeaderPlaceholder(t *testing.T) {
	l, m := setup(t)
	r := ffi.NewResolver(l, mocks.NewMockLogger(gomock.NewController(t)))

	require.NoError(t, r.Resolve(m, true))

	out := l.Artifacts(m.Name)
	info, err := os.Stat(out.FFIHeader)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	_, err = os.Stat(out.FFIImplementation)
	assert.True(t, os.IsNotExist(err), "no placeholder for the implementation")
}

func TestResolve_NoForeignImportsNoCompanions(t *testing.T) {
	l, m := setup(t)
	r := ffi.NewResolver(l, mocks.NewMockLogger(gomock.NewController(t)))

	require.NoError(t, r.Resolve(m, false))

	_, err := os.Stat(l.Artifacts(m.Name).FFIHeader)
	assert.True(t, os.IsNotExist(err))
}

func TestResolve_OtherExtensions(t *testing.T) {
	l, m := setup(t, "mm", "h")
	src, _ := m.SourcePath()
	write(t, l.Companions(src).Other["mm"], "objc")

	// Missing .h companion is silently skipped.
	r := ffi.NewResolver(l, mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, r.Resolve(m, false))

	out := l.Artifacts(m.Name)
	data, err := os.ReadFile(out.FFIOther["mm"])
	require.NoError(t, err)
	assert.Equal(t, "objc", string(data))

	_, err = os.Stat(out.FFIOther["h"])
	assert.True(t, os.IsNotExist(err))
}

func TestResolve_OtherExtensionFailureIsSwallowed(t *testing.T) {
	l, m := setup(t, "mm")
	src, _ := m.SourcePath()
	write(t, l.Companions(src).Other["mm"], "objc")

	// A directory at the destination makes the copy fail.
	require.NoError(t, os.MkdirAll(l.Artifacts(m.Name).FFIOther["mm"], domain.DirPerm))

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	r := ffi.NewResolver(l, logger)
	assert.NoError(t, r.Resolve(m, false))
}

func TestResolve_HeaderWriteFailure(t *testing.T) {
	l, m := setup(t)
	src, _ := m.SourcePath()
	write(t, l.Companions(src).Header, "int greet();\n")
	require.NoError(t, os.MkdirAll(l.Artifacts(m.Name).FFIHeader, domain.DirPerm))

	r := ffi.NewResolver(l, mocks.NewMockLogger(gomock.NewController(t)))
	err := r.Resolve(m, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotWriteFile)
}

func TestResolve_SkipsVirtualModules(t *testing.T) {
	l, _ := setup(t)
	m := domain.NewVirtualModule(domain.MustParseModuleName("Prim"), domain.RebuildAlways)

	r := ffi.NewResolver(l, mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, r.Resolve(m, true))

	_, err := os.Stat(l.OutputDir)
	assert.True(t, os.IsNotExist(err))
}
