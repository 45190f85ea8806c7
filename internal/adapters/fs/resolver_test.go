package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/fs"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

func modules(names ...string) []domain.Module {
	out := make([]domain.Module, 0, len(names))
	for _, n := range names {
		out = append(out, domain.NewFileModule(domain.MustParseModuleName(n), n))
	}
	return out
}

func namesOf(ms []domain.Module) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name.String())
	}
	return out
}

func TestResolver_ResolveModules(t *testing.T) {
	candidates := modules("Data.Array", "Data.Array.ST", "Data.Maybe", "Main")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"exact", []string{"Main"}, []string{"Main"}},
		{"single segment glob", []string{"Data.*"}, []string{"Data.Array", "Data.Maybe"}},
		{"deep glob", []string{"Data.**"}, []string{"Data.Array", "Data.Array.ST", "Data.Maybe"}},
		{"order of first match", []string{"Main", "Data.*"}, []string{"Main", "Data.Array", "Data.Maybe"}},
		{"deduplicated", []string{"Data.Maybe", "Data.*"}, []string{"Data.Maybe", "Data.Array"}},
	}

	r := fs.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveModules(tt.patterns, candidates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, namesOf(got))
		})
	}
}

func TestResolver_NoMatch(t *testing.T) {
	_, err := fs.NewResolver().ResolveModules([]string{"Nope.*"}, modules("Main"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)
}

func TestMatchModule_BadPattern(t *testing.T) {
	_, err := fs.MatchModule("Data.[", domain.MustParseModuleName("Data.Array"))
	assert.Error(t, err)
}
