// Package config loads, validates and persists YAML settings shared by the
// presence binaries.
package config
