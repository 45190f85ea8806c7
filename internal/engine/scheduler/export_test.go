package scheduler

import (
	"maps"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

// GetModuleStatusMap returns a copy of the internal module status map.
func (s *Scheduler) GetModuleStatusMap() map[domain.ModuleName]ModuleStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.moduleStatus)
}
