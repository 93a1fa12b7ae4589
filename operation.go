package syspower

import "fmt"

// Operation is a power-state transition the engine knows how to perform.
type Operation int

// Supported operations.
const (
	// OpShutdown powers the machine off.
	OpShutdown Operation = iota
	// OpReboot restarts the machine.
	OpReboot
	// OpSuspend suspends to RAM (ACPI S3 on most hardware).
	OpSuspend
	// OpHibernate suspends to disk, mediated by the OS rather than firmware.
	OpHibernate
	// OpHybridSleep writes hibernation state, then suspends to RAM instead
	// of powering off. Not the same thing as Windows "fast startup".
	OpHybridSleep
	// OpLogout ends the current desktop session.
	OpLogout
)

// String returns the operation name as used in CLI commands and logs.
func (op Operation) String() string {
	switch op {
	case OpShutdown:
		return "shutdown"
	case OpReboot:
		return "reboot"
	case OpSuspend:
		return "suspend"
	case OpHibernate:
		return "hibernate"
	case OpHybridSleep:
		return "hybrid-sleep"
	case OpLogout:
		return "logout"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}
