package syspower

import (
	"context"

	"github.com/oshokin/syspower/internal/command"
	"github.com/oshokin/syspower/internal/logger"
	"github.com/oshokin/syspower/internal/platform"
)

// Option tunes a single resolution call.
type Option func(*settings)

// settings collects per-call options.
type settings struct {
	// skipSession disables desktop session-manager integration.
	skipSession bool
}

// WithoutSession disables desktop session-manager integration for the call.
// Useful on headless machines that still have session binaries on PATH.
func WithoutSession() Option {
	return func(s *settings) {
		s.skipSession = true
	}
}

// applyOptions folds options into a settings value.
func applyOptions(opts []Option) settings {
	var s settings

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// snapshot gathers host facts once per call. The snapshot is never
// revalidated mid-sequence; long-lived processes embedding the library get
// fresh facts on every call instead of a stale memo.
func snapshot(s settings) facts {
	profile := platform.Detect()
	if s.skipSession {
		profile.Session = platform.SessionNone
	}

	return facts{
		profile:        profile,
		hasExecutable:  platform.ExecutableExists,
		kernelSupports: platform.KernelSupportsMode,
	}
}

// logProfile records the snapshot the resolution is about to work from.
func logProfile(ctx context.Context, op Operation, f facts) {
	logger.DebugKV(ctx, "Host profile",
		"operation", op.String(),
		"os", f.profile.OS.String(),
		"goos", f.profile.GOOS,
		"init", f.profile.Init.String(),
		"session", f.profile.Session.String(),
		"elevated", f.profile.Elevated,
	)
}

// Do resolves and executes the method chain for op. A nil return means some
// method reported success, though a successful power transition usually
// never returns at all. The error is ErrUnsupportedOperation when the
// platform cannot perform op, or a *NoWorkingMethodError when every
// candidate failed.
func Do(ctx context.Context, op Operation, opts ...Option) error {
	ctx = logger.WithName(ctx, "syspower")

	f := snapshot(applyOptions(opts))
	logProfile(ctx, op, f)

	plan, err := resolve(op, f)
	if err != nil {
		return err
	}

	return execute(ctx, command.ExecRunner{}, op, plan)
}

// Plan resolves the method chain for op and returns the rendered command
// lines in attempt order without executing anything.
func Plan(ctx context.Context, op Operation, opts ...Option) ([]string, error) {
	ctx = logger.WithName(ctx, "syspower")

	f := snapshot(applyOptions(opts))
	logProfile(ctx, op, f)

	plan, err := resolve(op, f)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(plan))
	for _, inv := range plan {
		lines = append(lines, inv.description())
	}

	return lines, nil
}

// Shutdown powers the machine off.
func Shutdown(ctx context.Context, opts ...Option) error {
	return Do(ctx, OpShutdown, opts...)
}

// Reboot restarts the machine.
func Reboot(ctx context.Context, opts ...Option) error {
	return Do(ctx, OpReboot, opts...)
}

// Suspend suspends the machine to RAM.
func Suspend(ctx context.Context, opts ...Option) error {
	return Do(ctx, OpSuspend, opts...)
}

// Hibernate suspends the machine to disk.
func Hibernate(ctx context.Context, opts ...Option) error {
	return Do(ctx, OpHibernate, opts...)
}

// HybridSleep writes hibernation state, then suspends to RAM, so a power
// loss during sleep loses nothing.
func HybridSleep(ctx context.Context, opts ...Option) error {
	return Do(ctx, OpHybridSleep, opts...)
}

// Logout ends the current desktop session. It only works when called from
// inside a session owned by the calling user.
func Logout(ctx context.Context, opts ...Option) error {
	return Do(ctx, OpLogout, opts...)
}
