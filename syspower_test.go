package syspower

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPlanOnHost exercises the real probe path: shutdown is supported on
// every platform the catalog knows, so the plan is never empty, and two
// calls against the same host state render identically.
func TestPlanOnHost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	first, err := Plan(ctx, OpShutdown)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := Plan(ctx, OpShutdown)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestPlanWithoutSession checks the session opt-out: no session-manager
// command can appear in the plan.
func TestPlanWithoutSession(t *testing.T) {
	t.Parallel()

	lines, err := Plan(context.Background(), OpShutdown, WithoutSession())
	require.NoError(t, err)

	for _, line := range lines {
		for _, sc := range sessionCommands {
			require.NotContains(t, line, sc.path)
		}
	}
}
