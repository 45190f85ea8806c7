package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/app"
	_ "github.com/swapnilraj/purescript-native/internal/wiring"
)

// TestGraftResolvesComponents runs the registered node graph and checks that
// every dependency of the application components is provided.
func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
