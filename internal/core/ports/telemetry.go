package ports

import (
	"context"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

// ProgressReporter renders build lifecycle events in emission order.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type ProgressReporter interface {
	Report(ctx context.Context, ev domain.ProgressEvent)
}

// MultiReporter fans every event out to each reporter in order.
type MultiReporter []ProgressReporter

// Report implements ProgressReporter.
func (m MultiReporter) Report(ctx context.Context, ev domain.ProgressEvent) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, ev)
		}
	}
}
