package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"presence-tracker/internal/clock"
	"presence-tracker/internal/domain/presence"
	"presence-tracker/internal/logger"
	repo "presence-tracker/internal/repository/session"
)

// service orchestrates presence transitions and session persistence. It is
// unexported to keep the CLI layer decoupled from the implementation.
type service struct {
	// repo handles persistent storage of the session.
	repo repo.Repository
	// clk supplies the current instant for validation.
	clk clock.Clock
	// session is the current in-memory presence session.
	session *repo.Session
	// mu protects concurrent access to the session.
	mu sync.Mutex
}

// newService creates a service backed by the provided repository and clock.
// A missing session file starts a fresh session around the empty record.
func newService(ctx context.Context, repository repo.Repository, clk clock.Clock) (*service, error) {
	s := &service{
		repo: repository,
		clk:  clk,
	}

	loaded, err := repository.Load(ctx)
	switch {
	case err == nil:
		s.session = loaded
	case errors.Is(err, repo.ErrNotFound):
		s.session = repo.NewSession(presence.Empty(), clk.Now())
	default:
		return nil, fmt.Errorf("load session: %w", err)
	}

	return s, nil
}

// CheckIn opens a presence interval at the supplied instant, or at the
// current instant when at is zero.
func (s *service) CheckIn(ctx context.Context, at time.Time) (presence.Record, error) {
	return s.apply(ctx, presence.StatusOccupied, at)
}

// CheckOut closes the open interval at the supplied instant, or at the
// current instant when at is zero.
func (s *service) CheckOut(ctx context.Context, at time.Time) (presence.Record, error) {
	return s.apply(ctx, presence.StatusCompleted, at)
}

// Reset returns the session to the unoccupied state.
func (s *service) Reset(ctx context.Context) (presence.Record, error) {
	return s.apply(ctx, presence.StatusUnoccupied, time.Time{})
}

// apply runs one state-machine transition, persists the result and logs the
// outcome. The stored session is only replaced when the transition succeeds.
func (s *service) apply(ctx context.Context, next presence.Status, at time.Time) (presence.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()

	// Check-in and check-out default to the current instant; a reset keeps
	// the sentinel.
	if at.IsZero() && next != presence.StatusUnoccupied {
		at = now
	}

	record, err := s.session.Record.TransitionTo(next, at, now)
	if err != nil {
		logger.WarnKV(ctx, "Transition rejected",
			"session_id", s.session.ID,
			"from", s.session.Record.Status,
			"to", next,
			"error", err,
		)

		return presence.Record{}, fmt.Errorf("transition to %s: %w", next, err)
	}

	updated := &repo.Session{
		ID:        s.session.ID,
		Record:    record,
		UpdatedAt: now,
	}

	if err = s.repo.Save(ctx, updated); err != nil {
		logger.Errorf(ctx, "Failed to persist session: %v", err)

		return presence.Record{}, fmt.Errorf("persist session: %w", err)
	}

	s.session = updated

	logger.InfoKV(ctx, "Session updated",
		"session_id", s.session.ID,
		"status", record.Status,
		"summary", record.String(),
	)

	return record, nil
}

// Current returns the record held by the session without modifying it.
func (s *service) Current(ctx context.Context) presence.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.DebugKV(ctx, "Session requested",
		"session_id", s.session.ID,
		"status", s.session.Record.Status,
	)

	return s.session.Record
}
