package demo

import (
	"context"
	"errors"
	"time"

	"presence-tracker/internal/clock"
	"presence-tracker/internal/domain/presence"
	"presence-tracker/internal/logger"
)

// Run walks the full presence lifecycle in memory and prints every step. It
// exercises each public domain operation, including a couple of deliberate
// rule violations to show the error taxonomy.
func Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "presence-demo")

	clk := clock.System{}
	now := clk.Now()

	record := presence.Empty()
	logger.Infof(ctx, "Starting from the canonical empty record: %s", record)

	// Check in at the current instant.
	record, err := record.TransitionTo(presence.StatusOccupied, now, now)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Checked in", "summary", record.String(), "active", record.IsActive(now))

	// A backdated check-in is rejected outright.
	if _, err = presence.Empty().TransitionTo(presence.StatusOccupied, now.Add(-time.Minute), now); err != nil {
		logger.InfoKV(ctx, "Backdated check-in rejected as expected", "error", err)
	}

	// Skipping the completed state is not a legal move.
	if _, err = record.TransitionTo(presence.StatusUnoccupied, now, now); err != nil {
		if !errors.Is(err, presence.ErrInvalidStatusTransition) {
			return err
		}

		logger.InfoKV(ctx, "Shortcut to unoccupied rejected as expected", "error", err)
	}

	// Check out two hours later.
	record, err = record.TransitionTo(presence.StatusCompleted, now.Add(2*time.Hour), now)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Checked out", "summary", record.String(), "duration", record.Duration())

	// Reset closes the cycle back to the canonical empty record.
	record, err = record.TransitionTo(presence.StatusUnoccupied, time.Time{}, now)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Reset", "summary", record.String(), "is_empty", record.IsEmpty())

	return nil
}
