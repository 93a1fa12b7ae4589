// Package config defines the optional CLI settings and provides helpers to
// load, validate and save them in YAML format.
//
// The method catalog is compiled in, so configuration only tunes ambient
// behavior: the log level and whether desktop session-manager integration
// is used. A missing settings file simply means defaults.
package config
