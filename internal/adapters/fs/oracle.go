package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

var _ ports.FreshnessOracle = (*Oracle)(nil)

// Oracle decides module staleness from live file modification times.
type Oracle struct {
	layout domain.Layout
}

// NewOracle creates an Oracle for the given layout.
func NewOracle(layout domain.Layout) *Oracle {
	return &Oracle{layout: layout}
}

// InputTimestamp returns the policy of a policy-governed module, or the newest
// modification time among the source file and its existing companions.
func (o *Oracle) InputTimestamp(m domain.Module) (domain.InputTimestamp, error) {
	switch src := m.Source.(type) {
	case domain.PolicyGoverned:
		return domain.InputFromPolicy(src.Policy), nil
	case domain.FileBacked:
		paths := append([]string{src.Path}, o.layout.Companions(src.Path).All(o.layout.OtherExts)...)
		ts, err := modTimes(paths)
		if err != nil {
			return domain.InputTimestamp{}, err
		}
		return domain.InputFromTimestamp(domain.MaxTimestamp(ts...)), nil
	default:
		return domain.InputFromTimestamp(domain.None()), nil
	}
}

// OutputTimestamp returns the oldest modification time of the header,
// implementation and metadata files, absent if any of them is missing.
func (o *Oracle) OutputTimestamp(name domain.ModuleName) (domain.Timestamp, error) {
	ts, err := modTimes(o.layout.Artifacts(name).Primary())
	if err != nil {
		return domain.None(), err
	}
	return domain.MinTimestampStrict(ts...), nil
}

// NeedsRebuild applies domain.NeedsRebuild to the module's timestamps.
func (o *Oracle) NeedsRebuild(m domain.Module) (bool, error) {
	in, err := o.InputTimestamp(m)
	if err != nil {
		return false, err
	}
	out, err := o.OutputTimestamp(m.Name)
	if err != nil {
		return false, err
	}
	return domain.NeedsRebuild(in, out), nil
}

// ModTime returns the modification time of path, absent if it does not exist.
func ModTime(path string) (domain.Timestamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.None(), nil
		}
		return domain.None(), domain.CannotGetFileInfo(path, err)
	}
	return domain.Some(info.ModTime()), nil
}

// Exists reports whether path exists.
func Exists(path string) (bool, error) {
	ts, err := ModTime(path)
	if err != nil {
		return false, err
	}
	return ts.IsSet(), nil
}

func modTimes(paths []string) ([]domain.Timestamp, error) {
	ts := make([]domain.Timestamp, 0, len(paths))
	for _, p := range paths {
		t, err := ModTime(p)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}
