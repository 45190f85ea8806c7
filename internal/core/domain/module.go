// Package domain contains the core models of the incremental build: module names,
// source locations, timestamps and the artifact layout.
package domain

import (
	"path/filepath"
	"strings"
	"unicode"
	"unique"

	"go.trai.ch/zerr"
)

// ModuleName is a dotted hierarchical module name such as Data.Array.ST.
// It wraps a unique.Handle[string] because the same names are repeated across
// plans, import lists and progress events.
type ModuleName struct {
	h unique.Handle[string]
}

// ParseModuleName validates s and returns the interned name.
func ParseModuleName(s string) (ModuleName, error) {
	if s == "" {
		return ModuleName{}, zerr.Wrap(ErrInvalidModuleName, "module name is empty")
	}
	for seg := range strings.SplitSeq(s, ".") {
		if !validSegment(seg) {
			return ModuleName{}, zerr.With(zerr.Wrap(ErrInvalidModuleName, "bad segment"), "module", s)
		}
	}
	return ModuleName{h: unique.Make(s)}, nil
}

// validSegment reports whether seg is a proper name: an uppercase letter
// followed by letters, digits, underscores or primes.
func validSegment(seg string) bool {
	for i, r := range seg {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '\'' {
			return false
		}
	}
	return seg != ""
}

// MustParseModuleName is like ParseModuleName but panics on an invalid name.
func MustParseModuleName(s string) ModuleName {
	n, err := ParseModuleName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the dotted form.
func (n ModuleName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// Segments returns the dot-separated parts of the name.
func (n ModuleName) Segments() []string {
	return strings.Split(n.String(), ".")
}

// Dir maps the name to a relative directory path, one directory per segment.
func (n ModuleName) Dir() string {
	return filepath.Join(n.Segments()...)
}

// BaseName returns the last segment, used as the file base name of every artifact.
func (n ModuleName) BaseName() string {
	s := n.String()
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (n ModuleName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *ModuleName) UnmarshalText(text []byte) error {
	parsed, err := ParseModuleName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// RebuildPolicy decides staleness for modules that have no backing source file.
type RebuildPolicy int

const (
	// RebuildNever treats the module as fresh whenever its outputs exist.
	RebuildNever RebuildPolicy = iota
	// RebuildAlways rebuilds the module on every run.
	RebuildAlways
)

// String returns the configuration spelling of the policy.
func (p RebuildPolicy) String() string {
	if p == RebuildAlways {
		return "always"
	}
	return "never"
}

// ParseRebuildPolicy parses "always" or "never".
func ParseRebuildPolicy(s string) (RebuildPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return RebuildAlways, nil
	case "never":
		return RebuildNever, nil
	default:
		return RebuildNever, zerr.With(zerr.Wrap(ErrConfigInvalid, "unknown rebuild policy"), "policy", s)
	}
}

// SourceLocation says where a module's primary input comes from.
// It is implemented only by FileBacked and PolicyGoverned.
type SourceLocation interface {
	sourceLocation()
}

// FileBacked is a module compiled from a source file on disk.
type FileBacked struct {
	Path string
}

// PolicyGoverned is a virtual module with no source file.
type PolicyGoverned struct {
	Policy RebuildPolicy
}

func (FileBacked) sourceLocation()     {}
func (PolicyGoverned) sourceLocation() {}

// Module is a single compilation unit.
type Module struct {
	Name   ModuleName
	Source SourceLocation
}

// NewFileModule returns a file-backed module.
func NewFileModule(name ModuleName, path string) Module {
	return Module{Name: name, Source: FileBacked{Path: path}}
}

// NewVirtualModule returns a policy-governed module.
func NewVirtualModule(name ModuleName, policy RebuildPolicy) Module {
	return Module{Name: name, Source: PolicyGoverned{Policy: policy}}
}

// SourcePath returns the source file path and true for file-backed modules.
func (m Module) SourcePath() (string, bool) {
	fb, ok := m.Source.(FileBacked)
	if !ok {
		return "", false
	}
	return fb.Path, true
}
