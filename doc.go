// Package syspower initiates system power-state transitions (shutdown,
// reboot, suspend to RAM, suspend to disk, hybrid sleep, session logout)
// without requiring the caller to know which OS, init system, desktop
// session or elevation tool is present.
//
// For each operation the engine snapshots the host profile, builds a
// prioritized list of candidate methods, wraps them with the available
// privilege-elevation strategies, and runs them strictly in order until one
// succeeds. A running GUI session is asked first so it can save state;
// privileged callers skip elevation entirely; every method is also tried
// bare as a last resort because several tools carry their own access
// control beyond UID checks.
//
// Entry points return only when the whole chain failed: a successful power
// transition usually tears the calling process down before the call can
// return, and that is expected.
package syspower
