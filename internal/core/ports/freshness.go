package ports

import "github.com/swapnilraj/purescript-native/internal/core/domain"

// FreshnessOracle answers whether a module's outputs are up to date.
//
//go:generate go run go.uber.org/mock/mockgen -source=freshness.go -destination=mocks/mock_freshness.go -package=mocks
type FreshnessOracle interface {
	// InputTimestamp returns the policy marker or the newest input modification time.
	InputTimestamp(m domain.Module) (domain.InputTimestamp, error)
	// OutputTimestamp returns the oldest primary output time, absent if any is missing.
	OutputTimestamp(name domain.ModuleName) (domain.Timestamp, error)
	// NeedsRebuild combines both timestamps with the staleness rule.
	NeedsRebuild(m domain.Module) (bool, error)
}
