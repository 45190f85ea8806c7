// Package runtime unpacks the shared C++ runtime support files into the output tree.
package runtime

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/swapnilraj/purescript-native/internal/adapters/codegen"
	fsadapter "github.com/swapnilraj/purescript-native/internal/adapters/fs"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

//go:embed payload
var embedded embed.FS

// File is one runtime support file.
type File struct {
	Name string
	Data []byte
}

// files is read once at init and never mutated.
var files = mustLoad(embedded)

func mustLoad(fsys embed.FS) []File {
	entries, err := fs.ReadDir(fsys, "payload")
	if err != nil {
		panic(err)
	}
	out := make([]File, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, "payload/"+e.Name())
		if err != nil {
			panic(err)
		}
		out = append(out, File{Name: e.Name(), Data: data})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Files returns the embedded runtime files sorted by name.
func Files() []File {
	return files
}

var _ ports.RuntimeBootstrapper = (*Bootstrapper)(nil)

// Bootstrapper implements ports.RuntimeBootstrapper.
type Bootstrapper struct {
	dir    string
	hasher ports.Hasher
	mu     sync.Mutex
}

// NewBootstrapper creates a Bootstrapper writing into layout's runtime directory.
func NewBootstrapper(layout domain.Layout, hasher ports.Hasher) *Bootstrapper {
	return &Bootstrapper{dir: layout.RuntimeDir(), hasher: hasher}
}

// Dir returns the runtime directory.
func (b *Bootstrapper) Dir() string {
	return b.dir
}

// Ensure writes the runtime files unless the runtime directory already exists.
// The files inside an existing directory are not checked.
func (b *Bootstrapper) Ensure() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	exists, err := fsadapter.Exists(b.dir)
	if err != nil || exists {
		return err
	}

	if err := os.MkdirAll(b.dir, domain.DirPerm); err != nil {
		return domain.CannotWriteFile(b.dir, err)
	}
	for _, f := range files {
		if err := codegen.WriteFile(filepath.Join(b.dir, f.Name), f.Data); err != nil {
			return err
		}
	}
	return nil
}

// Verify compares every runtime file on disk with its embedded payload.
func (b *Bootstrapper) Verify() ([]domain.RuntimeFileStatus, error) {
	statuses := make([]domain.RuntimeFileStatus, 0, len(files))
	for _, f := range files {
		path := filepath.Join(b.dir, f.Name)
		status := domain.RuntimeFileStatus{Path: path, State: domain.RuntimeFileOK}

		exists, err := fsadapter.Exists(path)
		if err != nil {
			return nil, err
		}
		if !exists {
			status.State = domain.RuntimeFileMissing
			statuses = append(statuses, status)
			continue
		}

		sum, err := b.hasher.ComputeFileHash(path)
		if err != nil {
			return nil, err
		}
		if sum != b.hasher.ComputeBytesHash(f.Data) {
			status.State = domain.RuntimeFileModified
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
