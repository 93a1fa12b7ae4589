package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/coreos/go-systemd/v22/util"
	"github.com/mitchellh/go-ps"
)

// sessionMarkers maps desktop identifiers, as they appear in session
// environment variables, to the session managers the engine can talk to.
// Checked in order; Cinnamon goes first because several distributions
// advertise it alongside a GNOME fallback value.
var sessionMarkers = []struct {
	marker  string
	session Session
}{
	{"cinnamon", SessionCinnamon},
	{"gnome", SessionGNOME},
	{"mate", SessionMATE},
	{"xfce", SessionXFCE},
	{"plasma", SessionKDE},
	{"kde", SessionKDE},
}

// sessionProcesses maps well-known session manager process names to
// sessions, used as a fallback when the environment gives no answer
// (e.g. when called over SSH into a machine with a running desktop).
var sessionProcesses = map[string]Session{
	"gnome-session":        SessionGNOME,
	"gnome-session-binary": SessionGNOME,
	"cinnamon-session":     SessionCinnamon,
	"mate-session":         SessionMATE,
	"xfce4-session":        SessionXFCE,
	"ksmserver":            SessionKDE,
	"plasmashell":          SessionKDE,
}

// Detect derives a fresh Profile for the running host.
func Detect() Profile {
	family := familyFromGOOS(runtime.GOOS)

	profile := Profile{
		GOOS:     runtime.GOOS,
		OS:       family,
		Init:     InitUnknown,
		Session:  SessionNone,
		Elevated: isElevated(),
	}

	switch family {
	case FamilyLinux:
		profile.Init = detectInit()
		profile.Session = detectSession()
	case FamilyBSD, FamilySolaris, FamilyOtherUnix:
		// systemd is Linux-only, so the answer is known without probing.
		profile.Init = InitOther
		profile.Session = detectSession()
	case FamilyDarwin, FamilyWindows, FamilyUnknown:
		// No session manager IPC surface we know how to use.
	}

	return profile
}

// familyFromGOOS maps a runtime.GOOS value to a platform family.
func familyFromGOOS(goos string) Family {
	switch goos {
	case "linux", "android":
		return FamilyLinux
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return FamilyBSD
	case "darwin":
		return FamilyDarwin
	case "solaris", "illumos":
		return FamilySolaris
	case "windows":
		return FamilyWindows
	case "aix":
		return FamilyOtherUnix
	default:
		return FamilyUnknown
	}
}

// isElevated reports whether the current process runs as the privileged
// user. On Windows geteuid is not a thing and elevation is handled by the
// shutdown utility itself, so false is the right answer there.
func isElevated() bool {
	return os.Geteuid() == 0
}

// detectInit figures out which init system booted the host. The systemd
// runtime directory is authoritative; inspecting PID 1 covers containers
// and chroots where that directory is not mounted.
func detectInit() InitSystem {
	if util.IsRunningSystemd() {
		return InitSystemd
	}

	proc, err := ps.FindProcess(1)
	if err != nil || proc == nil {
		return InitUnknown
	}

	if strings.Contains(proc.Executable(), "systemd") {
		return InitSystemd
	}

	return InitOther
}

// detectSession identifies the active desktop session manager. Environment
// variables set by the session win; a process table scan is the fallback.
func detectSession() Session {
	for _, value := range []string{os.Getenv("XDG_CURRENT_DESKTOP"), os.Getenv("DESKTOP_SESSION")} {
		if session, ok := sessionFromName(value); ok {
			return session
		}
	}

	// Older desktop-specific markers.
	if os.Getenv("KDE_FULL_SESSION") == "true" {
		return SessionKDE
	}

	if os.Getenv("GNOME_DESKTOP_SESSION_ID") != "" {
		return SessionGNOME
	}

	return sessionFromProcesses()
}

// sessionFromName matches a desktop identifier such as "ubuntu:GNOME" or
// "X-Cinnamon" against the supported session managers.
func sessionFromName(name string) (Session, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SessionNone, false
	}

	for _, m := range sessionMarkers {
		if strings.Contains(name, m.marker) {
			return m.session, true
		}
	}

	return SessionNone, false
}

// sessionFromProcesses scans the process table for a known session manager.
// Probe failures degrade to "no session" rather than surfacing an error.
func sessionFromProcesses() Session {
	processes, err := ps.Processes()
	if err != nil {
		return SessionNone
	}

	for _, proc := range processes {
		if session, ok := sessionProcesses[proc.Executable()]; ok {
			return session
		}
	}

	return SessionNone
}
