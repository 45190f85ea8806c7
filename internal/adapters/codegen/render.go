// Package codegen persists compiled modules into the output tree.
package codegen

import (
	"bytes"
	"strings"

	"github.com/swapnilraj/purescript-native/internal/build"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

// Split divides the declaration stream at the first end-of-header sentinel.
// Without a sentinel every declaration is header content and the
// implementation is empty. Sentinels after the first stay in the
// implementation part and are dropped by Render.
func Split(decls []domain.Decl) (header, impl []domain.Decl) {
	for i, d := range decls {
		if d.Kind == domain.DeclEndOfHeader {
			return decls[:i], decls[i+1:]
		}
	}
	return decls, nil
}

// Banner returns the generated-by line for version.
func Banner(version string) string {
	return "// Generated by " + build.Name + " version " + version
}

// Render joins the code declarations into file text, one declaration per line,
// preceded by banner when it is not empty.
func Render(banner string, decls []domain.Decl) []byte {
	var b bytes.Buffer
	if banner != "" {
		b.WriteString(banner)
		b.WriteByte('\n')
	}
	for _, d := range decls {
		if d.Kind != domain.DeclCode {
			continue
		}
		b.WriteString(d.Text)
		if !strings.HasSuffix(d.Text, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}
