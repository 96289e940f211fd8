package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"presence-tracker/internal/clock"
	"presence-tracker/internal/config"
	"presence-tracker/internal/logger"
	repo "presence-tracker/internal/repository/session"
)

// Operation selects which tracker action a binary performs.
type Operation string

// The operations exposed by the presence binaries.
const (
	// OperationCheckIn opens a presence interval.
	OperationCheckIn Operation = "check-in"
	// OperationCheckOut closes the open interval.
	OperationCheckOut Operation = "check-out"
	// OperationStatus reports the current record without modifying it.
	OperationStatus Operation = "status"
	// OperationReset returns the session to the unoccupied state.
	OperationReset Operation = "reset"
)

// Options configures a single tracker invocation.
type Options struct {
	// ConfigPath to the YAML settings file, defaults to the standard filename
	// if empty.
	ConfigPath string

	// SessionFile overrides the session file path from config when specified.
	SessionFile string

	// Operation is the tracker action to perform.
	Operation Operation

	// At is an optional RFC 3339 timestamp for check-in/check-out. Empty
	// means the current instant.
	At string
}

// errUnknownOperation is returned for an operation outside the known set.
var errUnknownOperation = errors.New("unknown operation")

// Run executes one tracker operation against the persisted session.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "presence-"+string(opts.Operation))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Use session file from options if provided, otherwise use config.
	sessionFile := cfg.SessionFile
	if opts.SessionFile != "" {
		sessionFile = opts.SessionFile
	}

	at, err := parseAt(opts.At)
	if err != nil {
		return err
	}

	svc, err := newService(ctx, repo.NewFileRepository(sessionFile), clock.System{})
	if err != nil {
		return err
	}

	switch opts.Operation {
	case OperationCheckIn:
		_, err = svc.CheckIn(ctx, at)
	case OperationCheckOut:
		_, err = svc.CheckOut(ctx, at)
	case OperationReset:
		_, err = svc.Reset(ctx)
	case OperationStatus:
		record := svc.Current(ctx)
		logger.InfoKV(ctx, "Current presence state",
			"summary", record.String(),
			"active", record.IsActive(clock.System{}.Now()),
			"duration", record.Duration(),
		)
	default:
		return fmt.Errorf("%w: %q", errUnknownOperation, opts.Operation)
	}

	return err
}

// parseAt converts an optional RFC 3339 flag value into a UTC instant. An
// empty value yields the zero time, which the service replaces with "now".
func parseAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}

	return at.UTC(), nil
}
