package syspower

import (
	"strings"

	"github.com/oshokin/syspower/internal/platform"
)

// kernelStateFile is the Linux kernel's sleep state trigger. Writing a
// state token to it enters that state immediately, bypassing userspace.
const kernelStateFile = "/sys/power/state"

// facts is the read-only host snapshot a single resolution works from.
// The profile is computed once per call and never revalidated mid-sequence;
// an attempt whose preconditions vanished simply fails and the chain moves on.
type facts struct {
	profile        platform.Profile
	hasExecutable  func(name string) bool
	kernelSupports func(mode string) bool
}

// invocation is one fully concrete attempt: a command, its arguments and an
// optional payload piped to stdin.
type invocation struct {
	path  string
	args  []string
	input string
}

// description renders the invocation for diagnostics and plan output.
func (inv invocation) description() string {
	line := strings.Join(append([]string{inv.path}, inv.args...), " ")
	if inv.input != "" {
		line += " <<< " + inv.input
	}

	return line
}

// key identifies the invocation for de-duplication.
func (inv invocation) key() string {
	return inv.path + "\x00" + strings.Join(inv.args, "\x00") + "\x00" + inv.input
}

// sessionCommand describes how to ask one session manager for a clean exit.
// A nil argument list means the manager has no switch for that operation.
type sessionCommand struct {
	session  platform.Session
	path     string
	shutdown []string
	reboot   []string
	logout   []string
}

// sessionCommands lists the supported session managers. A session-manager
// attempt always precedes generic methods so a running GUI session saves
// state and warns its users instead of being yanked out from under them.
var sessionCommands = []sessionCommand{
	{
		session:  platform.SessionGNOME,
		path:     "gnome-session-quit",
		shutdown: []string{"--power-off", "--force"},
		reboot:   []string{"--reboot", "--force"},
		logout:   []string{"--logout", "--force"},
	},
	{
		session:  platform.SessionCinnamon,
		path:     "cinnamon-session-quit",
		shutdown: []string{"--power-off", "--force"},
		reboot:   []string{"--reboot", "--force"},
		logout:   []string{"--logout", "--force"},
	},
	{
		session:  platform.SessionMATE,
		path:     "mate-session-quit",
		shutdown: []string{"--power-off", "--force"},
		logout:   []string{"--logout", "--force"},
	},
	{
		session:  platform.SessionXFCE,
		path:     "xfce4-session-logout",
		shutdown: []string{"--halt"},
		logout:   []string{"--logout"},
	},
	{
		session:  platform.SessionKDE,
		path:     "qdbus",
		shutdown: kdeLogoutArgs("2", "2"),
		reboot:   kdeLogoutArgs("1", "2"),
		logout:   kdeLogoutArgs("2", "3"),
	},
}

// kdeLogoutArgs builds a KSMServer logout call with no confirmation prompt.
func kdeLogoutArgs(sdType, sdMode string) []string {
	return []string{
		"org.kde.ksmserver",
		"/KSMServer",
		"org.kde.KSMServerInterface.logout",
		"0",
		sdType,
		sdMode,
	}
}

// sessionInvocations returns the session-manager attempt for the detected
// session, when its control binary is on PATH and it has a switch for op.
func sessionInvocations(op Operation, f facts) []invocation {
	for _, sc := range sessionCommands {
		if sc.session != f.profile.Session {
			continue
		}

		var args []string

		switch op {
		case OpShutdown:
			args = sc.shutdown
		case OpReboot:
			args = sc.reboot
		case OpLogout:
			args = sc.logout
		case OpSuspend, OpHibernate, OpHybridSleep:
			// No session manager we support exposes sleep states.
		}

		if args == nil || !f.hasExecutable(sc.path) {
			return nil
		}

		return []invocation{{path: sc.path, args: args}}
	}

	return nil
}

// shutdownArgVariants returns the ordered argument variants for the standard
// shutdown tool's power-off form. The flag grammar differs between Darwin,
// BSD, modern Linux and SVR4-style systems, so several spellings are tried.
func shutdownArgVariants(family platform.Family) [][]string {
	switch family {
	case platform.FamilyDarwin:
		return [][]string{{"now"}}
	case platform.FamilyBSD:
		return [][]string{{"-p", "now"}, {"-h", "now"}}
	case platform.FamilyLinux:
		return [][]string{{"-hP", "now"}, {"-h", "now"}}
	case platform.FamilySolaris, platform.FamilyWindows, platform.FamilyOtherUnix, platform.FamilyUnknown:
		return [][]string{{"-h", "now"}}
	default:
		return [][]string{{"-h", "now"}}
	}
}

// genericInvocations returns the shared UNIX method list for op in catalog
// order: systemctl, the shutdown tool, the operation-specific tool, telinit,
// halt. halt comes absolute last since it may merely stop the CPU without
// cutting power on limited hardware.
func genericInvocations(op Operation, f facts) []invocation {
	var seq []invocation

	switch op {
	case OpShutdown:
		seq = append(seq, invocation{path: "systemctl", args: []string{"poweroff"}})

		for _, args := range shutdownArgVariants(f.profile.OS) {
			seq = append(seq, invocation{path: "shutdown", args: args})
		}

		seq = append(seq,
			invocation{path: "poweroff"},
			invocation{path: "telinit", args: []string{"0"}},
			invocation{path: "halt"},
		)
	case OpReboot:
		seq = append(seq,
			invocation{path: "systemctl", args: []string{"reboot"}},
			invocation{path: "shutdown", args: []string{"-r", "now"}},
			invocation{path: "reboot"},
			invocation{path: "telinit", args: []string{"6"}},
		)
	case OpSuspend, OpHibernate, OpHybridSleep, OpLogout:
		// Sleep states and logout have their own method lists.
	}

	return seq
}

// solarisInvocation is the Solaris-specific grammar, tried before the
// generic methods: its shutdown tool behaves like telinit with an extra
// confirmation flag.
func solarisInvocation(op Operation) invocation {
	if op == OpReboot {
		return invocation{path: "shutdown", args: []string{"-y", "-i", "6", "6"}}
	}

	return invocation{path: "shutdown", args: []string{"-y", "-i", "5", "5"}}
}

// sleepTools is the per-mode Linux tool chain, tried in catalog order.
type sleepTools struct {
	// verb is the systemctl verb for the mode.
	verb string
	// pmTool is the pm-utils helper.
	pmTool string
	// userTool is the standalone userspace suspend tool.
	userTool string
	// kernelToken is the /sys/power/state token the kernel must advertise
	// before a direct state-file write is attempted.
	kernelToken string
}

// sleepToolsFor maps a sleep operation to its Linux tool chain.
func sleepToolsFor(op Operation) (sleepTools, bool) {
	switch op {
	case OpSuspend:
		return sleepTools{verb: "suspend", pmTool: "pm-suspend", userTool: "s2ram", kernelToken: "mem"}, true
	case OpHibernate:
		return sleepTools{verb: "hibernate", pmTool: "pm-hibernate", userTool: "s2disk", kernelToken: "disk"}, true
	case OpHybridSleep:
		return sleepTools{verb: "hybrid-sleep", pmTool: "pm-suspend-hybrid", userTool: "s2both", kernelToken: "hybrid"}, true
	case OpShutdown, OpReboot, OpLogout:
		return sleepTools{}, false
	default:
		return sleepTools{}, false
	}
}

// windowsInvocations maps operations onto the single system shutdown
// utility. It handles its own authentication prompts, so there is no
// privilege fan-out on Windows.
func windowsInvocations(op Operation) []invocation {
	var flag string

	switch op {
	case OpShutdown:
		flag = "/s"
	case OpReboot:
		flag = "/r"
	case OpHibernate:
		flag = "/h"
	case OpLogout:
		flag = "/l"
	case OpSuspend, OpHybridSleep:
		// The utility has no flag for these.
		return nil
	default:
		return nil
	}

	return []invocation{{path: "shutdown", args: []string{flag}}}
}
