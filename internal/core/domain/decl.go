package domain

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
)

// DeclKind tags an entry of the generated declaration stream.
type DeclKind int

const (
	// DeclCode is a rendered chunk of C++ source.
	DeclCode DeclKind = iota
	// DeclEndOfHeader separates header content from implementation content.
	DeclEndOfHeader
)

// String returns the wire spelling of the kind.
func (k DeclKind) String() string {
	if k == DeclEndOfHeader {
		return "end-of-header"
	}
	return "code"
}

// MarshalText implements encoding.TextMarshaler.
func (k DeclKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DeclKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "code":
		*k = DeclCode
	case "end-of-header":
		*k = DeclEndOfHeader
	default:
		return zerr.With(zerr.New("unknown declaration kind"), "kind", string(text))
	}
	return nil
}

// Decl is one entry of the declaration stream.
type Decl struct {
	Kind DeclKind `json:"kind"`
	Text string   `json:"text,omitempty"`
}

// Code returns a code declaration.
func Code(text string) Decl {
	return Decl{Kind: DeclCode, Text: text}
}

// EndOfHeader returns the header sentinel.
func EndOfHeader() Decl {
	return Decl{Kind: DeclEndOfHeader}
}

// CompiledModule is what the frontend hands over for persistence.
type CompiledModule struct {
	Name  ModuleName
	Decls []Decl
	// Environment is the resolved environment. It is passed through, never persisted.
	Environment json.RawMessage
	// Externs is the interface metadata, written verbatim.
	Externs json.RawMessage
	// ForeignImports lists bindings the module expects from hand-written code.
	ForeignImports []string
}

// HasForeignImports reports whether the module declares any foreign binding.
func (m *CompiledModule) HasForeignImports() bool {
	return len(m.ForeignImports) > 0
}

// CompileRequest is what the frontend needs to compile one module.
type CompileRequest struct {
	Module Module
	// Source is the module text. It is empty for policy-governed modules.
	Source []byte
	// Externs holds the interface metadata of every imported module.
	Externs map[ModuleName][]byte
}
