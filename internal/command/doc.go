// Package command is the process execution primitive: given an executable
// name or path, an argument list and an optional stdin payload, run it
// synchronously and report the outcome. The resolution engine decides what
// to run; this package is the only place that actually spawns processes.
package command
