package syspower

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestErrorIdentities checks that both terminal kinds match the common
// category, so callers can catch either generically.
func TestErrorIdentities(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ErrUnsupportedOperation, Err)
	require.ErrorIs(t, ErrNoWorkingMethod, Err)
	require.NotErrorIs(t, ErrUnsupportedOperation, ErrNoWorkingMethod)

	wrapped := fmt.Errorf("suspend on windows: %w", ErrUnsupportedOperation)
	require.ErrorIs(t, wrapped, ErrUnsupportedOperation)
	require.ErrorIs(t, wrapped, Err)
}

// TestNoWorkingMethodError checks unwrap identity and message rendering.
func TestNoWorkingMethodError(t *testing.T) {
	t.Parallel()

	err := &NoWorkingMethodError{
		Op: OpShutdown,
		Attempts: []Outcome{
			{Command: "systemctl poweroff", Output: "access denied", Err: errors.New("exit status 1")},
			{Command: "halt", Err: errors.New("exit status 127")},
		},
	}

	require.ErrorIs(t, err, ErrNoWorkingMethod)
	require.ErrorIs(t, err, Err)

	msg := err.Error()
	require.Contains(t, msg, "shutdown")
	require.Contains(t, msg, "2 attempt(s)")
	require.Contains(t, msg, "systemctl poweroff: exit status 1 (access denied)")
	require.Contains(t, msg, "halt: exit status 127")
}

// TestOperationString pins CLI-visible operation names.
func TestOperationString(t *testing.T) {
	t.Parallel()

	cases := map[Operation]string{
		OpShutdown:    "shutdown",
		OpReboot:      "reboot",
		OpSuspend:     "suspend",
		OpHibernate:   "hibernate",
		OpHybridSleep: "hybrid-sleep",
		OpLogout:      "logout",
	}

	for op, want := range cases {
		require.Equal(t, want, op.String())
	}

	require.Equal(t, "operation(42)", Operation(42).String())
}
