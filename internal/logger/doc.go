// Package logger provides the shared zap-based logging facilities.
//
// A process-wide sugared logger is initialised at import time with an atomic
// level. Contexts may carry named or field-scoped child loggers which the
// package-level helpers resolve with FromContext.
package logger
