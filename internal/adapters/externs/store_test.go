package externs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/externs"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

func newStore(t *testing.T) (*externs.Store, domain.Layout) {
	t.Helper()
	l := domain.DefaultLayout()
	l.OutputDir = filepath.Join(t.TempDir(), "out")
	s, err := externs.NewStore(l, 4)
	require.NoError(t, err)
	return s, l
}

func TestStore_WriteRead(t *testing.T) {
	s, l := newStore(t)
	name := domain.MustParseModuleName("Data.Array")

	require.NoError(t, s.Write(name, []byte(`{"exports":[]}`)))
	assert.Equal(t, filepath.Join(l.OutputDir, "Data", "Array", "externs.json"), s.Path(name))

	data, err := s.Read(name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"exports":[]}`, string(data))
}

func TestStore_ReadMissing(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Read(domain.MustParseModuleName("Missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotReadFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_ReadSeesExternalChange(t *testing.T) {
	s, _ := newStore(t)
	name := domain.MustParseModuleName("Main")

	require.NoError(t, s.Write(name, []byte("v1")))
	_, err := s.Read(name)
	require.NoError(t, err)

	path := s.Path(name)
	require.NoError(t, os.WriteFile(path, []byte("version2"), domain.FilePerm))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	data, err := s.Read(name)
	require.NoError(t, err)
	assert.Equal(t, "version2", string(data))
}

func TestStore_ReadAfterDelete(t *testing.T) {
	s, _ := newStore(t)
	name := domain.MustParseModuleName("Main")

	require.NoError(t, s.Write(name, []byte("v1")))
	require.NoError(t, os.Remove(s.Path(name)))

	_, err := s.Read(name)
	assert.ErrorIs(t, err, domain.ErrCannotReadFile)
}

func TestStore_WriteFailure(t *testing.T) {
	s, _ := newStore(t)
	name := domain.MustParseModuleName("Main")
	require.NoError(t, os.MkdirAll(s.Path(name), domain.DirPerm))

	err := s.Write(name, []byte("{}"))
	assert.ErrorIs(t, err, domain.ErrCannotWriteFile)
}
