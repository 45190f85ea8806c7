package domain

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultSourceDir is the default root of module sources.
	DefaultSourceDir = "src"

	// DefaultOutputDir is the default root of the output tree.
	DefaultOutputDir = "output"

	// DefaultSourceExt is the default extension of module sources.
	DefaultSourceExt = "purs"

	// DefaultHeaderExt is the default extension of generated and foreign headers.
	DefaultHeaderExt = "hh"

	// DefaultImplExt is the default extension of generated and foreign implementations.
	DefaultImplExt = "cc"

	// ExternsFileName is the name of the interface metadata file in every module directory.
	ExternsFileName = "externs.json"

	// FFISuffix is appended to the base name of copied foreign companions.
	FFISuffix = "_ffi"

	// RuntimeDirName is the shared runtime support directory under the output root.
	RuntimeDirName = "runtime"

	// ConfigFileYAML is the YAML project configuration file.
	ConfigFileYAML = "pscpp.yaml"

	// ConfigFileTOML is the TOML project configuration file.
	ConfigFileTOML = "pscpp.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout holds the roots and extensions that map module names to files.
// Extensions are stored without the leading dot.
type Layout struct {
	SourceDir string
	OutputDir string
	SourceExt string
	HeaderExt string
	ImplExt   string
	OtherExts []string
	// Exclude holds directory name globs skipped during discovery.
	Exclude []string
}

// DefaultLayout returns the layout used when no configuration overrides it.
func DefaultLayout() Layout {
	return Layout{
		SourceDir: DefaultSourceDir,
		OutputDir: DefaultOutputDir,
		SourceExt: DefaultSourceExt,
		HeaderExt: DefaultHeaderExt,
		ImplExt:   DefaultImplExt,
	}
}

// ArtifactSet lists the output files of one module.
type ArtifactSet struct {
	Implementation    string
	Header            string
	Externs           string
	FFIHeader         string
	FFIImplementation string
	// FFIOther maps each extra extension to its mangled output path.
	FFIOther map[string]string
}

// Primary returns the three files whose presence defines a complete build,
// in write order.
func (a ArtifactSet) Primary() []string {
	return []string{a.Header, a.Implementation, a.Externs}
}

// CompanionSet lists the hand-written foreign files that may sit next to a source file.
type CompanionSet struct {
	Header         string
	Implementation string
	// Other maps each extra extension to its input path.
	Other map[string]string
}

// All returns every companion path, header and implementation first,
// then the extra extensions in configuration order.
func (c CompanionSet) All(exts []string) []string {
	paths := []string{c.Header, c.Implementation}
	for _, ext := range exts {
		if p, ok := c.Other[ext]; ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// ModuleOutputDir returns OutputDir/A/B/C for module A.B.C.
func (l Layout) ModuleOutputDir(name ModuleName) string {
	return filepath.Join(l.OutputDir, name.Dir())
}

// OutputBase returns OutputDir/A/B/C/C, the extension-less base of every artifact.
func (l Layout) OutputBase(name ModuleName) string {
	return filepath.Join(l.ModuleOutputDir(name), name.BaseName())
}

// Artifacts returns the output paths of module name.
func (l Layout) Artifacts(name ModuleName) ArtifactSet {
	base := l.OutputBase(name)
	ffiBase := base + FFISuffix
	set := ArtifactSet{
		Implementation:    withExt(base, l.ImplExt),
		Header:            withExt(base, l.HeaderExt),
		Externs:           filepath.Join(l.ModuleOutputDir(name), ExternsFileName),
		FFIHeader:         withExt(ffiBase, l.HeaderExt),
		FFIImplementation: withExt(ffiBase, l.ImplExt),
		FFIOther:          make(map[string]string, len(l.OtherExts)),
	}
	for _, ext := range l.OtherExts {
		set.FFIOther[ext] = withExt(ffiBase, ext)
	}
	return set
}

// Companions returns the input-side companion paths of a source file.
func (l Layout) Companions(sourcePath string) CompanionSet {
	base := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))
	set := CompanionSet{
		Header:         withExt(base, l.HeaderExt),
		Implementation: withExt(base, l.ImplExt),
		Other:          make(map[string]string, len(l.OtherExts)),
	}
	for _, ext := range l.OtherExts {
		set.Other[ext] = withExt(base, ext)
	}
	return set
}

// SourcePath returns SourceDir/A/B/C.<SourceExt> for module A.B.C.
func (l Layout) SourcePath(name ModuleName) string {
	return withExt(filepath.Join(l.SourceDir, name.Dir()), l.SourceExt)
}

// RuntimeDir returns the shared runtime support directory.
func (l Layout) RuntimeDir() string {
	return filepath.Join(l.OutputDir, RuntimeDirName)
}

func withExt(base, ext string) string {
	return base + "." + strings.TrimPrefix(ext, ".")
}
