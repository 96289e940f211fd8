package presence

// Status represents the occupancy lifecycle tag of a presence record.
type Status string

// The three lifecycle states. Legal progression is cyclic:
// Unoccupied -> Occupied -> Completed -> Unoccupied.
const (
	// StatusUnoccupied indicates no presence interval has started.
	StatusUnoccupied Status = "unoccupied"

	// StatusOccupied indicates a check-in happened and the interval is open.
	StatusOccupied Status = "occupied"

	// StatusCompleted indicates the interval has both boundaries recorded.
	StatusCompleted Status = "completed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the three known variants.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnoccupied, StatusOccupied, StatusCompleted:
		return true
	default:
		return false
	}
}
