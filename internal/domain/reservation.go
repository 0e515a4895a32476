package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusConfirmed ReservationStatus = "confirmed"
)

// Reservation represents a user's claim on a slot
// UserName is free text, not a validated identity
type Reservation struct {
	ID        int64
	SlotID    int64
	UserName  string
	Status    ReservationStatus
	CreatedAt time.Time
}

// IsConfirmed returns true if the reservation has been confirmed
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// ReservationDetails is the read model for a single booking: the
// reservation joined with its slot's time range and carpenter name
type ReservationDetails struct {
	ID            int64
	UserName      string
	Status        ReservationStatus
	StartTime     time.Time
	EndTime       time.Time
	CarpenterName string
}

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []ReservationStatus{
	StatusBooked,
	StatusConfirmed,
}
