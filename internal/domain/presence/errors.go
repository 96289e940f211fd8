package presence

// RuleError is a terminal rejection of a requested construction or transition.
// Each value is an immutable fact: a stable machine-checkable code plus a
// fixed human-readable message. Callers match with errors.Is against the
// package sentinels below.
type RuleError struct {
	// Code is the stable identifier of the violated rule.
	Code string
	// Message is the fixed human-readable description.
	Message string
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return e.Message
}

// The closed set of validation failures. No other error ever leaves the
// package.
var (
	// ErrNonUTCDateTime is returned when a timestamp is not tagged as UTC.
	ErrNonUTCDateTime = &RuleError{
		Code:    "NON_UTC_DATE_TIME",
		Message: "timestamps must be expressed in UTC",
	}

	// ErrInvalidNoneState is returned when an unoccupied record carries a
	// non-sentinel timestamp.
	ErrInvalidNoneState = &RuleError{
		Code:    "INVALID_NONE_STATE",
		Message: "unoccupied record must carry sentinel timestamps",
	}

	// ErrFutureCheckInTooFar is returned when a check-in is scheduled more
	// than one year ahead of the current instant.
	ErrFutureCheckInTooFar = &RuleError{
		Code:    "FUTURE_CHECK_IN_TOO_FAR",
		Message: "check-in cannot be more than one year in the future",
	}

	// ErrPastCheckInNotAllowed is returned when a fresh check-in is older
	// than the grace window.
	ErrPastCheckInNotAllowed = &RuleError{
		Code:    "PAST_CHECK_IN_NOT_ALLOWED",
		Message: "check-in cannot be backdated beyond the grace window",
	}

	// ErrCheckInRequiredBeforeCheckOut is returned when a check-out is
	// requested without a matching prior check-in.
	ErrCheckInRequiredBeforeCheckOut = &RuleError{
		Code:    "CHECK_IN_REQUIRED_BEFORE_CHECK_OUT",
		Message: "check-out requires a prior check-in",
	}

	// ErrInvalidDateRange is returned when a check-out does not come
	// strictly after its check-in.
	ErrInvalidDateRange = &RuleError{
		Code:    "INVALID_DATE_RANGE",
		Message: "check-out must be after check-in",
	}

	// ErrInvalidStatusTransition is returned for any illegal move in the
	// lifecycle state machine, including a check-in that sits in the future
	// at the moment of check-out.
	ErrInvalidStatusTransition = &RuleError{
		Code:    "INVALID_STATUS_TRANSITION",
		Message: "requested status transition is not allowed",
	}

	// ErrStaleCheckIn is returned when the recorded check-in is older than
	// the grace window at the moment of check-out.
	ErrStaleCheckIn = &RuleError{
		Code:    "STALE_CHECK_IN",
		Message: "check-in is too old to be checked out",
	}

	// ErrInvalidStatus is returned when the status tag is none of the three
	// known variants.
	ErrInvalidStatus = &RuleError{
		Code:    "INVALID_STATUS",
		Message: "unknown occupancy status",
	}
)
