// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Infof, DebugKV, etc.).
//
// The engine accepts a context and extracts the logger from it, so a host
// application embedding the library can scope logging per call.
package logger
