// Package tracker orchestrates presence transitions for the CLI binaries:
// load the persisted session, apply one state-machine operation through the
// domain, persist and log the outcome.
package tracker
