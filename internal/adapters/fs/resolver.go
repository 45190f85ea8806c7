package fs

import (
	"path"
	"strings"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleResolver = (*Resolver)(nil)

// Resolver selects modules by dotted glob patterns.
//
// A pattern is matched segment by segment: `*` matches within one segment and
// a trailing `**` matches one or more remaining segments, so `Data.*`
// selects Data.Array but not Data.Array.ST, while `Data.**` selects both.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveModules filters candidates by patterns. A pattern that matches
// nothing is an error.
func (r *Resolver) ResolveModules(patterns []string, candidates []domain.Module) ([]domain.Module, error) {
	seen := make(map[domain.ModuleName]bool)
	var result []domain.Module

	for _, pattern := range patterns {
		matched := false
		for _, m := range candidates {
			ok, err := MatchModule(pattern, m.Name)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			matched = true
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			result = append(result, m)
		}
		if !matched {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "pattern matched no module"), "pattern", pattern)
		}
	}

	return result, nil
}

// MatchModule reports whether name matches the dotted glob pattern.
func MatchModule(pattern string, name domain.ModuleName) (bool, error) {
	segs := name.Segments()
	pats := strings.Split(pattern, ".")

	if pats[len(pats)-1] == "**" {
		pats = pats[:len(pats)-1]
		if len(segs) <= len(pats) {
			return false, nil
		}
		segs = segs[:len(pats)]
	}
	if len(segs) != len(pats) {
		return false, nil
	}

	for i, p := range pats {
		ok, err := path.Match(p, segs[i])
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "invalid module pattern"), "pattern", pattern)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
