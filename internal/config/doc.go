// Package config loads, validates, and normalizes the TOML configuration that
// drives the intake and absorb stages. All path fields are expanded to
// absolute form at load time so downstream packages never handle "~" or
// relative paths.
package config
