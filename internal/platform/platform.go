package platform

// Family classifies the host into one of the coarse OS groups the method
// catalog is keyed by.
type Family int

// Supported OS families.
const (
	// FamilyUnknown is the sentinel for hosts we cannot classify.
	FamilyUnknown Family = iota
	// FamilyLinux covers Linux and Android kernels.
	FamilyLinux
	// FamilyBSD covers FreeBSD, OpenBSD, NetBSD and DragonFly.
	FamilyBSD
	// FamilyDarwin covers macOS.
	FamilyDarwin
	// FamilySolaris covers Solaris and illumos.
	FamilySolaris
	// FamilyWindows covers Windows.
	FamilyWindows
	// FamilyOtherUnix covers POSIX systems with no dedicated handling (AIX).
	FamilyOtherUnix
)

// String returns a short lowercase name for logging.
func (f Family) String() string {
	switch f {
	case FamilyLinux:
		return "linux"
	case FamilyBSD:
		return "bsd"
	case FamilyDarwin:
		return "darwin"
	case FamilySolaris:
		return "solaris"
	case FamilyWindows:
		return "windows"
	case FamilyOtherUnix:
		return "other-unix"
	case FamilyUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// InitSystem identifies the init system that booted the host, as far as we
// can tell without privileged access.
type InitSystem int

// Recognized init systems.
const (
	// InitUnknown means the probe could not decide.
	InitUnknown InitSystem = iota
	// InitSystemd means systemd is PID 1.
	InitSystemd
	// InitOther means some non-systemd init is in charge.
	InitOther
)

// String returns a short lowercase name for logging.
func (i InitSystem) String() string {
	switch i {
	case InitSystemd:
		return "systemd"
	case InitOther:
		return "other"
	case InitUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Session identifies the active desktop session manager, if any.
type Session int

// Supported session managers.
const (
	// SessionNone means no supported desktop session was detected.
	SessionNone Session = iota
	// SessionGNOME covers GNOME 2 and 3.
	SessionGNOME
	// SessionCinnamon covers Cinnamon.
	SessionCinnamon
	// SessionMATE covers MATE.
	SessionMATE
	// SessionXFCE covers XFCE 4.
	SessionXFCE
	// SessionKDE covers KDE 4 and Plasma 5.
	SessionKDE
)

// String returns a short lowercase name for logging.
func (s Session) String() string {
	switch s {
	case SessionGNOME:
		return "gnome"
	case SessionCinnamon:
		return "cinnamon"
	case SessionMATE:
		return "mate"
	case SessionXFCE:
		return "xfce"
	case SessionKDE:
		return "kde"
	case SessionNone:
		return "none"
	default:
		return "none"
	}
}

// Profile is the snapshot of host facts a single resolution call works from.
// It is computed once per call, never mutated, and discarded afterwards.
type Profile struct {
	// GOOS is the raw runtime.GOOS value, kept because a few catalog
	// entries need finer grain than Family (e.g. acpiconf on FreeBSD).
	GOOS string
	// OS is the coarse platform family.
	OS Family
	// Init is the detected init system.
	Init InitSystem
	// Session is the detected desktop session manager.
	Session Session
	// Elevated reports whether the caller already runs with full privileges.
	Elevated bool
}
