package syspower

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/syspower/internal/platform"
)

// TestShutdownArgVariants pins the per-family power-off flag grammar.
func TestShutdownArgVariants(t *testing.T) {
	t.Parallel()

	require.Equal(t, [][]string{{"now"}}, shutdownArgVariants(platform.FamilyDarwin))
	require.Equal(t, [][]string{{"-p", "now"}, {"-h", "now"}}, shutdownArgVariants(platform.FamilyBSD))
	require.Equal(t, [][]string{{"-hP", "now"}, {"-h", "now"}}, shutdownArgVariants(platform.FamilyLinux))
	require.Equal(t, [][]string{{"-h", "now"}}, shutdownArgVariants(platform.FamilySolaris))
	require.Equal(t, [][]string{{"-h", "now"}}, shutdownArgVariants(platform.FamilyOtherUnix))
}

// TestGenericInvocationsOperationFilter checks that single-purpose tools
// appear only for their operation.
func TestGenericInvocationsOperationFilter(t *testing.T) {
	t.Parallel()

	f := testFacts(platform.Profile{GOOS: "linux", OS: platform.FamilyLinux})

	shutdown := descriptions(genericInvocations(OpShutdown, f))
	require.Contains(t, shutdown, "poweroff")
	require.Contains(t, shutdown, "halt")
	require.Contains(t, shutdown, "telinit 0")
	require.NotContains(t, shutdown, "reboot")
	require.NotContains(t, shutdown, "telinit 6")

	reboot := descriptions(genericInvocations(OpReboot, f))
	require.Contains(t, reboot, "reboot")
	require.Contains(t, reboot, "telinit 6")
	require.NotContains(t, reboot, "poweroff")
	require.NotContains(t, reboot, "halt")

	// Sleep operations have no generic list.
	require.Empty(t, genericInvocations(OpSuspend, f))
	require.Empty(t, genericInvocations(OpLogout, f))
}

// TestSessionInvocations checks the per-manager argument tables and the
// PATH gate.
func TestSessionInvocations(t *testing.T) {
	t.Parallel()

	xfce := testFacts(platform.Profile{
		GOOS:    "linux",
		OS:      platform.FamilyLinux,
		Session: platform.SessionXFCE,
	}, "xfce4-session-logout")

	got := sessionInvocations(OpShutdown, xfce)
	require.Equal(t, []string{"xfce4-session-logout --halt"}, descriptions(got))

	// XFCE has no reboot switch.
	require.Empty(t, sessionInvocations(OpReboot, xfce))

	got = sessionInvocations(OpLogout, xfce)
	require.Equal(t, []string{"xfce4-session-logout --logout"}, descriptions(got))

	// MATE has no reboot switch either.
	mate := testFacts(platform.Profile{
		GOOS:    "linux",
		OS:      platform.FamilyLinux,
		Session: platform.SessionMATE,
	}, "mate-session-quit")
	require.Empty(t, sessionInvocations(OpReboot, mate))

	// Binary not on PATH yields no candidate.
	missing := testFacts(platform.Profile{
		GOOS:    "linux",
		OS:      platform.FamilyLinux,
		Session: platform.SessionCinnamon,
	})
	require.Empty(t, sessionInvocations(OpShutdown, missing))

	// No session detected yields no candidate.
	headless := testFacts(platform.Profile{
		GOOS: "linux",
		OS:   platform.FamilyLinux,
	}, "gnome-session-quit")
	require.Empty(t, sessionInvocations(OpShutdown, headless))

	// Sleep states never go through a session manager.
	gnome := testFacts(platform.Profile{
		GOOS:    "linux",
		OS:      platform.FamilyLinux,
		Session: platform.SessionGNOME,
	}, "gnome-session-quit")
	require.Empty(t, sessionInvocations(OpSuspend, gnome))
}

// TestSleepToolsFor pins the per-mode tool chains and kernel tokens.
func TestSleepToolsFor(t *testing.T) {
	t.Parallel()

	tools, ok := sleepToolsFor(OpSuspend)
	require.True(t, ok)
	require.Equal(t, sleepTools{verb: "suspend", pmTool: "pm-suspend", userTool: "s2ram", kernelToken: "mem"}, tools)

	tools, ok = sleepToolsFor(OpHibernate)
	require.True(t, ok)
	require.Equal(t, "disk", tools.kernelToken)

	tools, ok = sleepToolsFor(OpHybridSleep)
	require.True(t, ok)
	require.Equal(t, "s2both", tools.userTool)

	_, ok = sleepToolsFor(OpShutdown)
	require.False(t, ok)
}

// TestInvocationDescription checks rendering with and without a payload.
func TestInvocationDescription(t *testing.T) {
	t.Parallel()

	inv := invocation{path: "shutdown", args: []string{"-h", "now"}}
	require.Equal(t, "shutdown -h now", inv.description())

	inv = invocation{path: "tee", args: []string{kernelStateFile}, input: "mem"}
	require.Equal(t, "tee /sys/power/state <<< mem", inv.description())

	inv = invocation{path: "halt"}
	require.Equal(t, "halt", inv.description())
}
