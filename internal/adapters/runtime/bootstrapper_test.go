package runtime_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/fs"
	"github.com/swapnilraj/purescript-native/internal/adapters/runtime"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

func newBootstrapper(t *testing.T) *runtime.Bootstrapper {
	t.Helper()
	l := domain.DefaultLayout()
	l.OutputDir = filepath.Join(t.TempDir(), "out")
	return runtime.NewBootstrapper(l, fs.NewHasher())
}

func TestFiles(t *testing.T) {
	names := make([]string, 0, len(runtime.Files()))
	for _, f := range runtime.Files() {
		names = append(names, f.Name)
		assert.NotEmpty(t, f.Data, f.Name)
	}
	assert.Equal(t, []string{"dictionary.hh", "purescript.cc", "purescript.hh"}, names)
}

func TestEnsure_WritesPayloads(t *testing.T) {
	b := newBootstrapper(t)
	require.NoError(t, b.Ensure())

	for _, f := range runtime.Files() {
		data, err := os.ReadFile(filepath.Join(b.Dir(), f.Name))
		require.NoError(t, err)
		assert.Equal(t, f.Data, data)
	}
}

func TestEnsure_ExistingDirectoryIsNotTouched(t *testing.T) {
	b := newBootstrapper(t)
	require.NoError(t, b.Ensure())

	hh := filepath.Join(b.Dir(), "purescript.hh")
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(hh, old, old))

	cc := filepath.Join(b.Dir(), "purescript.cc")
	require.NoError(t, os.Remove(cc))

	require.NoError(t, b.Ensure())

	info, err := os.Stat(hh)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "second Ensure must not rewrite files")

	_, err = os.Stat(cc)
	assert.True(t, os.IsNotExist(err), "second Ensure must not repair files")
}

func TestEnsure_Concurrent(t *testing.T) {
	b := newBootstrapper(t)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = b.Ensure()
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	entries, err := os.ReadDir(b.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, len(runtime.Files()))
}

func TestEnsure_BlockedByFile(t *testing.T) {
	l := domain.DefaultLayout()
	l.OutputDir = filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(l.OutputDir, []byte("not a dir"), domain.FilePerm))

	err := runtime.NewBootstrapper(l, fs.NewHasher()).Ensure()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotGetFileInfo)
}

func TestVerify(t *testing.T) {
	b := newBootstrapper(t)
	require.NoError(t, b.Ensure())

	require.NoError(t, os.Remove(filepath.Join(b.Dir(), "dictionary.hh")))
	require.NoError(t, os.WriteFile(filepath.Join(b.Dir(), "purescript.cc"), []byte("// edited\n"), domain.FilePerm))

	statuses, err := b.Verify()
	require.NoError(t, err)

	got := make(map[string]domain.RuntimeFileState, len(statuses))
	for _, s := range statuses {
		got[filepath.Base(s.Path)] = s.State
	}
	assert.Equal(t, map[string]domain.RuntimeFileState{
		"dictionary.hh": domain.RuntimeFileMissing,
		"purescript.cc": domain.RuntimeFileModified,
		"purescript.hh": domain.RuntimeFileOK,
	}, got)

	// Verify never repairs.
	_, err = os.Stat(filepath.Join(b.Dir(), "dictionary.hh"))
	assert.True(t, os.IsNotExist(err))
}
