package syspower

import (
	"fmt"

	"github.com/oshokin/syspower/internal/platform"
)

// resolve builds the ordered, de-duplicated invocation sequence for op on
// the snapshotted host. It is deterministic given the snapshot, performs no
// side effects, and always terminates: the catalog and strategy set are
// finite and nothing is ever attempted twice.
func resolve(op Operation, f facts) ([]invocation, error) {
	var seq []invocation

	switch f.profile.OS {
	case platform.FamilyWindows:
		seq = windowsInvocations(op)
	case platform.FamilyLinux,
		platform.FamilyBSD,
		platform.FamilyDarwin,
		platform.FamilySolaris,
		platform.FamilyOtherUnix:
		switch op {
		case OpShutdown, OpReboot:
			seq = resolvePowerCycle(op, f)
		case OpSuspend, OpHibernate, OpHybridSleep:
			seq = resolveSleep(op, f)
		case OpLogout:
			seq = resolveLogout(f)
		}
	case platform.FamilyUnknown:
		// Nothing in the catalog applies; fall through to the error below.
	}

	seq = dedupe(seq)
	if len(seq) == 0 {
		return nil, fmt.Errorf("%s on %s: %w", op, f.profile.OS, ErrUnsupportedOperation)
	}

	return seq, nil
}

// fanOut produces the unprivileged attempt order for base: every available
// elevation strategy wrapping every method in strategy-major order, then
// every method bare, since several tools implement their own non-UID access
// control (group membership, polkit rules) and can succeed without root.
func fanOut(f facts, base []invocation) []invocation {
	seq := make([]invocation, 0, (len(strategies)+1)*len(base))

	for _, s := range availableStrategies(f) {
		for _, inner := range base {
			seq = append(seq, s.wrap(inner))
		}
	}

	return append(seq, base...)
}

// resolvePowerCycle builds the shutdown/reboot chain: session manager
// first, then the Solaris variant where that profile applies, then the
// generic methods with the privilege ordering rules.
func resolvePowerCycle(op Operation, f facts) []invocation {
	var seq []invocation

	// Darwin has no session-manager IPC surface we know how to use.
	if f.profile.OS != platform.FamilyDarwin {
		seq = append(seq, sessionInvocations(op, f)...)
	}

	if f.profile.OS == platform.FamilySolaris {
		seq = append(seq, solarisInvocation(op))
	}

	generics := genericInvocations(op, f)

	// An already privileged caller tries everything directly and the chain
	// ends there: elevation tools are neither needed nor reliable for root.
	if f.profile.Elevated {
		return append(seq, generics...)
	}

	return append(seq, fanOut(f, generics)...)
}

// resolveSleep builds the suspend/hibernate/hybrid-sleep chain. Linux gets
// the full tool chain with privilege fan-out plus a direct kernel
// state-file write for elevated callers; other UNIX profiles have at most
// one direct method.
func resolveSleep(op Operation, f facts) []invocation {
	tools, ok := sleepToolsFor(op)
	if !ok {
		return nil
	}

	profile := f.profile

	switch profile.OS {
	case platform.FamilyLinux:
		base := []invocation{
			{path: "systemctl", args: []string{tools.verb}},
			{path: tools.pmTool},
			{path: tools.userTool},
		}

		if !profile.Elevated {
			return fanOut(f, base)
		}

		seq := base

		// The state-file write is certain to work when the hardware and
		// driver do, but only for root and only when the kernel advertises
		// the state. The payload rides on stdin through tee so the process
		// primitive stays the single execution path.
		if f.kernelSupports(tools.kernelToken) {
			seq = append(seq, invocation{
				path:  "tee",
				args:  []string{kernelStateFile},
				input: tools.kernelToken,
			})
		}

		return seq
	case platform.FamilyDarwin:
		if op == OpSuspend {
			return []invocation{{path: "shutdown", args: []string{"-s", "now"}}}
		}
	case platform.FamilyBSD:
		if op == OpSuspend && profile.GOOS == "freebsd" {
			return []invocation{{path: "acpiconf", args: []string{"-s", "3"}}}
		}

		if op == OpHibernate {
			return []invocation{{path: "pm-hibernate"}}
		}
	case platform.FamilySolaris, platform.FamilyWindows, platform.FamilyOtherUnix, platform.FamilyUnknown:
		// No known sleep mechanism.
	}

	return nil
}

// resolveLogout builds the logout chain: the detected session manager only,
// no elevation, since logging out is inherently a session-owner action.
func resolveLogout(f facts) []invocation {
	// Darwin has no supported logout mechanism.
	if f.profile.OS == platform.FamilyDarwin {
		return nil
	}

	return sessionInvocations(OpLogout, f)
}

// dedupe removes exact duplicates (same command, arguments and stdin
// payload), keeping the first occurrence so earlier priorities win.
func dedupe(seq []invocation) []invocation {
	if len(seq) < 2 {
		return seq
	}

	seen := make(map[string]struct{}, len(seq))
	out := make([]invocation, 0, len(seq))

	for _, inv := range seq {
		k := inv.key()
		if _, found := seen[k]; found {
			continue
		}

		seen[k] = struct{}{}

		out = append(out, inv)
	}

	return out
}
