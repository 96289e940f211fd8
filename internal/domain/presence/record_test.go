package presence

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testNow returns a fixed UTC instant so validation windows are deterministic.
func testNow() time.Time {
	return time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
}

// TestEmpty_Singleton verifies the canonical unoccupied record and that
// concurrent first access yields the same value.
func TestEmpty_Singleton(t *testing.T) {
	t.Parallel()

	e := Empty()
	require.Equal(t, StatusUnoccupied, e.Status)
	require.True(t, e.CheckInAt.IsZero())
	require.True(t, e.CheckOutAt.IsZero())
	require.True(t, e.IsEmpty())

	results := make(chan Record, 8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			results <- Empty()
		}()
	}

	wg.Wait()
	close(results)

	for r := range results {
		require.True(t, r.Equal(e))
	}
}

// TestConstruct_Unoccupied asserts that unoccupied records require both
// sentinels.
func TestConstruct_Unoccupied(t *testing.T) {
	t.Parallel()

	now := testNow()

	r, err := Construct(time.Time{}, time.Time{}, StatusUnoccupied, nil, now)
	require.NoError(t, err)
	require.True(t, r.IsEmpty())

	_, err = Construct(now, time.Time{}, StatusUnoccupied, nil, now)
	require.ErrorIs(t, err, ErrInvalidNoneState)

	_, err = Construct(time.Time{}, now, StatusUnoccupied, nil, now)
	require.ErrorIs(t, err, ErrInvalidNoneState)
}

// TestConstruct_RejectsNonUTC asserts that any timestamp not tagged as UTC is
// rejected regardless of the other fields.
func TestConstruct_RejectsNonUTC(t *testing.T) {
	t.Parallel()

	now := testNow()
	local := now.In(time.FixedZone("MSK", 3*60*60))

	_, err := Construct(local, time.Time{}, StatusOccupied, nil, now)
	require.ErrorIs(t, err, ErrNonUTCDateTime)

	occupied := StatusOccupied
	_, err = Construct(now, local.Add(time.Hour), StatusCompleted, &occupied, now)
	require.ErrorIs(t, err, ErrNonUTCDateTime)

	_, err = Construct(local, local, StatusUnoccupied, nil, now)
	require.ErrorIs(t, err, ErrNonUTCDateTime)
}

// TestConstruct_Occupied covers the fresh check-in rules around the grace
// window and the one-year upper bound.
func TestConstruct_Occupied(t *testing.T) {
	t.Parallel()

	now := testNow()

	// Inside the grace window.
	r, err := Construct(now.Add(-4*time.Second), time.Time{}, StatusOccupied, nil, now)
	require.NoError(t, err)
	require.Equal(t, StatusOccupied, r.Status)
	require.True(t, r.CheckOutAt.IsZero())

	// Exactly at the grace window boundary.
	r, err = Construct(now.Add(-GraceWindow), time.Time{}, StatusOccupied, nil, now)
	require.NoError(t, err)
	require.True(t, r.IsActive(now))

	// One tick beyond the grace window.
	_, err = Construct(now.Add(-GraceWindow).Add(-time.Nanosecond), time.Time{}, StatusOccupied, nil, now)
	require.ErrorIs(t, err, ErrPastCheckInNotAllowed)

	// Exactly one year ahead.
	r, err = Construct(now.AddDate(1, 0, 0), time.Time{}, StatusOccupied, nil, now)
	require.NoError(t, err)
	require.Equal(t, StatusOccupied, r.Status)

	// One tick beyond one year.
	_, err = Construct(now.AddDate(1, 0, 0).Add(time.Nanosecond), time.Time{}, StatusOccupied, nil, now)
	require.ErrorIs(t, err, ErrFutureCheckInTooFar)
}

// TestConstruct_Occupied_SkipsBackdateCheckOnTransition asserts that a
// supplied previous status disables the backdating rule but not the sentinel
// guard.
func TestConstruct_Occupied_SkipsBackdateCheckOnTransition(t *testing.T) {
	t.Parallel()

	now := testNow()
	unoccupied := StatusUnoccupied

	r, err := Construct(now.Add(-time.Minute), time.Time{}, StatusOccupied, &unoccupied, now)
	require.NoError(t, err)
	require.Equal(t, StatusOccupied, r.Status)

	_, err = Construct(time.Time{}, time.Time{}, StatusOccupied, &unoccupied, now)
	require.ErrorIs(t, err, ErrPastCheckInNotAllowed)
}

// TestConstruct_Completed covers the exit rule chain.
func TestConstruct_Completed(t *testing.T) {
	t.Parallel()

	now := testNow()
	occupied := StatusOccupied

	// Happy path: two-hour stay recorded at check-in time.
	r, err := Construct(now, now.Add(2*time.Hour), StatusCompleted, &occupied, now)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, r.Status)
	require.Equal(t, 2*time.Hour, r.Duration())

	// Check-out without a prior check-in.
	_, err = Construct(now, now.Add(time.Hour), StatusCompleted, nil, now)
	require.ErrorIs(t, err, ErrCheckInRequiredBeforeCheckOut)

	unoccupied := StatusUnoccupied
	_, err = Construct(now, now.Add(time.Hour), StatusCompleted, &unoccupied, now)
	require.ErrorIs(t, err, ErrCheckInRequiredBeforeCheckOut)

	// Interval must have positive duration.
	_, err = Construct(now, now, StatusCompleted, &occupied, now)
	require.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = Construct(now, now.Add(-time.Second), StatusCompleted, &occupied, now)
	require.ErrorIs(t, err, ErrInvalidDateRange)

	// Check-in in the future relative to the check-out attempt.
	_, err = Construct(now.Add(time.Minute), now.Add(time.Hour), StatusCompleted, &occupied, now)
	require.ErrorIs(t, err, ErrInvalidStatusTransition)

	// Check-in older than the grace window at check-out time.
	_, err = Construct(now.Add(-GraceWindow).Add(-time.Nanosecond), now.Add(time.Hour), StatusCompleted, &occupied, now)
	require.ErrorIs(t, err, ErrStaleCheckIn)

	// Exactly at the boundary is still fresh.
	_, err = Construct(now.Add(-GraceWindow), now.Add(time.Hour), StatusCompleted, &occupied, now)
	require.NoError(t, err)
}

// TestConstruct_UnknownStatus exercises the defensive default arm.
func TestConstruct_UnknownStatus(t *testing.T) {
	t.Parallel()

	_, err := Construct(time.Time{}, time.Time{}, Status("corrupted"), nil, testNow())
	require.ErrorIs(t, err, ErrInvalidStatus)
}

// TestTransitionTo_FullCycle walks the legal lifecycle and asserts the final
// record equals the canonical empty one.
func TestTransitionTo_FullCycle(t *testing.T) {
	t.Parallel()

	now := testNow()

	occupied, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)
	require.True(t, occupied.IsActive(now))

	completed, err := occupied.TransitionTo(StatusCompleted, now.Add(2*time.Second), now)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, completed.Duration())

	reset, err := completed.TransitionTo(StatusUnoccupied, time.Time{}, now)
	require.NoError(t, err)
	require.True(t, reset.Equal(Empty()))
}

// TestTransitionTo_IllegalMoves asserts that every pair outside the table is
// rejected.
func TestTransitionTo_IllegalMoves(t *testing.T) {
	t.Parallel()

	now := testNow()

	occupied, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)

	completed, err := occupied.TransitionTo(StatusCompleted, now.Add(time.Second), now)
	require.NoError(t, err)

	cases := []struct {
		from Record
		next Status
	}{
		{Empty(), StatusCompleted},
		{Empty(), StatusUnoccupied},
		{occupied, StatusUnoccupied},
		{occupied, StatusOccupied},
		{completed, StatusOccupied},
		{completed, StatusCompleted},
	}

	for _, tc := range cases {
		_, err = tc.from.TransitionTo(tc.next, now, now)
		require.ErrorIs(t, err, ErrInvalidStatusTransition,
			"transition %s -> %s must be rejected", tc.from.Status, tc.next)
	}
}

// TestUpdate_DoesNotMutateReceiver asserts value semantics: the source record
// is unchanged and the result is an independent value.
func TestUpdate_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	now := testNow()

	original, err := Empty().TransitionTo(StatusOccupied, now.Add(-time.Second), now)
	require.NoError(t, err)

	snapshot := original

	updated, err := original.Update(original.CheckInAt, now.Add(time.Hour), StatusCompleted, now)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, updated.Status)
	require.True(t, original.Equal(snapshot))
	require.False(t, updated.Equal(original))

	// A failed update leaves the receiver untouched as well.
	_, err = original.Update(original.CheckInAt, original.CheckInAt, StatusCompleted, now)
	require.ErrorIs(t, err, ErrInvalidDateRange)
	require.True(t, original.Equal(snapshot))
}

// TestDuration_ZeroUnlessCompleted asserts the derived query ignores open and
// empty records.
func TestDuration_ZeroUnlessCompleted(t *testing.T) {
	t.Parallel()

	now := testNow()

	require.Zero(t, Empty().Duration())

	occupied, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)
	require.Zero(t, occupied.Duration())
}

// TestIsActive covers the three conditions of the activity query.
func TestIsActive(t *testing.T) {
	t.Parallel()

	now := testNow()

	require.False(t, Empty().IsActive(now))

	occupied, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)
	require.True(t, occupied.IsActive(now))

	// Not yet active relative to an earlier instant.
	require.False(t, occupied.IsActive(now.Add(-time.Second)))

	completed, err := occupied.TransitionTo(StatusCompleted, now.Add(time.Second), now)
	require.NoError(t, err)
	require.False(t, completed.IsActive(now))
}

// TestEqual compares records structurally, including instants with different
// wall-clock representations.
func TestEqual(t *testing.T) {
	t.Parallel()

	now := testNow()

	a, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)

	b, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)

	require.True(t, a.Equal(b))

	c, err := Empty().TransitionTo(StatusOccupied, now.Add(time.Second), now)
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

// TestString checks the presentational summaries per status.
func TestString(t *testing.T) {
	t.Parallel()

	now := testNow()

	require.Equal(t, "no record", Empty().String())

	occupied, err := Empty().TransitionTo(StatusOccupied, now, now)
	require.NoError(t, err)
	require.Contains(t, occupied.String(), "checked in at")
	require.Contains(t, occupied.String(), now.Format(time.RFC3339))

	completed, err := occupied.TransitionTo(StatusCompleted, now.Add(3*time.Second), now)
	require.NoError(t, err)
	require.Equal(t, "completed, duration 3s", completed.String())
}
