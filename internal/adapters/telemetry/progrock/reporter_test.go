package progrock_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/telemetry/progrock"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

func TestReporter_CloseCompletesOpenVertices(t *testing.T) {
	var buf bytes.Buffer
	r := progrock.NewReporter(progrock.NewTraceWriter(&buf))
	r.Report(context.Background(), domain.ProgressEvent{
		Kind:   domain.EventCompiling,
		Module: domain.MustParseModuleName("Main"),
	})
	assert.Empty(t, buf.String())

	require.NoError(t, r.Close())
	assert.True(t, strings.HasPrefix(buf.String(), "trace: compile Main done in "), buf.String())
}

func TestReporter_FailureWithoutError(t *testing.T) {
	var buf bytes.Buffer
	r := progrock.NewReporter(progrock.NewTraceWriter(&buf))
	r.Report(context.Background(), domain.ProgressEvent{
		Kind:   domain.EventFailed,
		Module: domain.MustParseModuleName("Main"),
	})
	require.NoError(t, r.Close())

	assert.Equal(t, 1, strings.Count(buf.String(), "trace: compile Main"))
}
