package mocks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"github.com/swapnilraj/purescript-native/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var (
	_ ports.CodegenWriter       = (*mocks.MockCodegenWriter)(nil)
	_ ports.FFIResolver         = (*mocks.MockFFIResolver)(nil)
	_ ports.RuntimeBootstrapper = (*mocks.MockRuntimeBootstrapper)(nil)
	_ ports.ConfigLoader        = (*mocks.MockConfigLoader)(nil)
	_ ports.Executor            = (*mocks.MockExecutor)(nil)
	_ ports.FreshnessOracle     = (*mocks.MockFreshnessOracle)(nil)
	_ ports.Frontend            = (*mocks.MockFrontend)(nil)
	_ ports.Hasher              = (*mocks.MockHasher)(nil)
	_ ports.Logger              = (*mocks.MockLogger)(nil)
	_ ports.ModuleDiscoverer    = (*mocks.MockModuleDiscoverer)(nil)
	_ ports.ModuleResolver      = (*mocks.MockModuleResolver)(nil)
	_ ports.ImportScanner       = (*mocks.MockImportScanner)(nil)
	_ ports.ExternsStore        = (*mocks.MockExternsStore)(nil)
	_ ports.ProgressReporter    = (*mocks.MockProgressReporter)(nil)
)

func TestModuleArgumentsReachExpectations(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := domain.NewVirtualModule(domain.MustParseModuleName("Main"), domain.RebuildAlways)

	oracle := mocks.NewMockFreshnessOracle(ctrl)
	oracle.EXPECT().NeedsRebuild(m).Return(true, nil)
	oracle.EXPECT().InputTimestamp(m).Return(domain.InputFromPolicy(domain.RebuildAlways), nil)

	writer := mocks.NewMockCodegenWriter(ctrl)
	writer.EXPECT().Write(gomock.Any(), m, gomock.Nil()).Return(nil)

	ffi := mocks.NewMockFFIResolver(ctrl)
	ffi.EXPECT().Resolve(m, true).Return(nil)

	stale, err := oracle.NeedsRebuild(m)
	require.NoError(t, err)
	assert.True(t, stale)

	_, err = oracle.InputTimestamp(m)
	require.NoError(t, err)

	require.NoError(t, writer.Write(context.Background(), m, nil))
	require.NoError(t, ffi.Resolve(m, true))
}
