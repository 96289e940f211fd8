// Package session persists the current presence session between CLI
// invocations. The domain itself performs no I/O; this repository is the
// peripheral collaborator that carries a validated record across process
// boundaries.
package session
