package domain

import "time"

// Slot represents a bookable time interval offered by a carpenter
//
// Availability invariant: IsAvailable is true exactly when no active
// reservation references this slot. The booking flow flips it to false,
// the cancellation flow flips it back to true, always in the same
// transaction as the reservation write
type Slot struct {
	ID          int64
	CarpenterID int64
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
}

// AvailableSlot is the read model for the slot listing: a slot joined
// with its carpenter's display name
type AvailableSlot struct {
	ID            int64
	CarpenterName string
	StartTime     time.Time
	EndTime       time.Time
}
