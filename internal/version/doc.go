// Package version carries the build metadata stamped into syspower
// binaries. Version, Commit and BuildTime are overridden through ldflags on
// release builds; their defaults identify a local development build.
package version
