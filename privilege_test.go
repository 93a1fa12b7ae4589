package syspower

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/syspower/internal/platform"
)

// TestAvailableStrategies checks PATH filtering and the fixed priority
// order sudo, doas, pkexec.
func TestAvailableStrategies(t *testing.T) {
	t.Parallel()

	f := testFacts(platform.Profile{OS: platform.FamilyLinux}, "pkexec", "sudo")

	available := availableStrategies(f)
	require.Len(t, available, 2)
	require.Equal(t, "sudo", available[0].name)
	require.Equal(t, "pkexec", available[1].name)

	none := testFacts(platform.Profile{OS: platform.FamilyLinux})
	require.Empty(t, availableStrategies(none))
}

// TestStrategyWrap checks the wrapped command shape and stdin passthrough.
func TestStrategyWrap(t *testing.T) {
	t.Parallel()

	inner := invocation{path: "systemctl", args: []string{"poweroff"}}

	wrapped := strategies[0].wrap(inner)
	require.Equal(t, "sudo", wrapped.path)
	require.Equal(t, []string{"-n", "systemctl", "poweroff"}, wrapped.args)

	wrapped = strategies[2].wrap(inner)
	require.Equal(t, "pkexec", wrapped.path)
	require.Equal(t, []string{"systemctl", "poweroff"}, wrapped.args)

	withInput := invocation{path: "tee", args: []string{kernelStateFile}, input: "disk"}
	wrapped = strategies[1].wrap(withInput)
	require.Equal(t, "doas", wrapped.path)
	require.Equal(t, "disk", wrapped.input)
}
