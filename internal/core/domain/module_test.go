package domain_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

func TestParseModuleName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"Main", false},
		{"Data.Array.ST", false},
		{"", true},
		{"Data..Array", true},
		{".Data", true},
		{"Data.", true},
		{"Data/Array", true},
		{`Data\Array`, true},
		{"runtime", true},
		{"Data.array", true},
		{"9Lives", true},
		{"Data.Array-ST", true},
		{"Foo_Bar'", false},
		{"Data.Array2", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := domain.ParseModuleName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidModuleName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String())
		})
	}
}

func TestModuleName_Paths(t *testing.T) {
	n := domain.MustParseModuleName("Data.Array.ST")

	assert.Equal(t, []string{"Data", "Array", "ST"}, n.Segments())
	assert.Equal(t, filepath.Join("Data", "Array", "ST"), n.Dir())
	assert.Equal(t, "ST", n.BaseName())

	single := domain.MustParseModuleName("Main")
	assert.Equal(t, "Main", single.Dir())
	assert.Equal(t, "Main", single.BaseName())
}

func TestModuleName_Interned(t *testing.T) {
	a := domain.MustParseModuleName("Foo.Bar")
	b := domain.MustParseModuleName("Foo.Bar")
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.Empty(t, domain.ModuleName{}.String())
}

func TestModuleName_JSONKey(t *testing.T) {
	in := map[domain.ModuleName]int{domain.MustParseModuleName("Foo.Bar"): 1}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Foo.Bar":1}`, string(data))

	var out map[domain.ModuleName]int
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var bad domain.ModuleName
	assert.Error(t, bad.UnmarshalText([]byte("a..b")))
}

func TestParseRebuildPolicy(t *testing.T) {
	p, err := domain.ParseRebuildPolicy("Always")
	require.NoError(t, err)
	assert.Equal(t, domain.RebuildAlways, p)
	assert.Equal(t, "always", p.String())

	p, err = domain.ParseRebuildPolicy(" never ")
	require.NoError(t, err)
	assert.Equal(t, domain.RebuildNever, p)
	assert.Equal(t, "never", p.String())

	_, err = domain.ParseRebuildPolicy("sometimes")
	assert.Error(t, err)
}

func TestModule_SourcePath(t *testing.T) {
	name := domain.MustParseModuleName("Foo.Bar")

	m := domain.NewFileModule(name, "src/Foo/Bar.purs")
	p, ok := m.SourcePath()
	assert.True(t, ok)
	assert.Equal(t, "src/Foo/Bar.purs", p)

	v := domain.NewVirtualModule(name, domain.RebuildAlways)
	_, ok = v.SourcePath()
	assert.False(t, ok)
	pg, ok := v.Source.(domain.PolicyGoverned)
	require.True(t, ok)
	assert.Equal(t, domain.RebuildAlways, pg.Policy)
}
