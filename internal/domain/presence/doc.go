// Package presence contains the core domain types for presence tracking.
//
// It defines Status (the occupancy lifecycle tag), Record (an immutable
// presence interval) and the closed set of validation errors. Every Record
// that exists has already passed all business-rule checks, so callers never
// need to re-validate.
package presence
