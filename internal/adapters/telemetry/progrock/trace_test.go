package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/telemetry/progrock"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
)

func TestTraceWriter(t *testing.T) {
	var buf bytes.Buffer
	r := progrock.NewReporter(progrock.NewTraceWriter(&buf))
	ctx := context.Background()

	r.Report(ctx, domain.ProgressEvent{Kind: domain.EventUpToDate, Module: domain.MustParseModuleName("Data.Array")})
	r.Report(ctx, domain.ProgressEvent{Kind: domain.EventCompiling, Module: domain.MustParseModuleName("Foo.Bar")})
	r.Report(ctx, domain.ProgressEvent{Kind: domain.EventCompiled, Module: domain.MustParseModuleName("Foo.Bar")})
	r.Report(ctx, domain.ProgressEvent{Kind: domain.EventCompiling, Module: domain.MustParseModuleName("Main")})
	r.Report(ctx, domain.ProgressEvent{
		Kind:   domain.EventFailed,
		Module: domain.MustParseModuleName("Main"),
		Err:    errors.New("boom"),
	})
	require.NoError(t, r.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "trace: compile Data.Array cached", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "trace: compile Foo.Bar done in "), lines[1])
	assert.Equal(t, "trace: compile Main failed: boom", lines[2])
}
