// Package platform answers read-only questions about the running host:
// which OS family it belongs to, which init system booted it, whether a
// supported desktop session is active, and whether the caller is elevated.
//
// Probes never fail hard. When a fact cannot be determined they return an
// unknown/none sentinel and callers narrow their behavior accordingly.
// Nothing here is cached; each call re-derives facts so long-lived
// processes always see the current session and privilege state.
package platform
