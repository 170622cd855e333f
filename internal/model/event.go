package model

import (
	"time"
)

// EventID uniquely identifies an event
type EventID string

// Event represents a scheduled club event with a registration deadline
type Event struct {
	ID                   EventID   `json:"id"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	Date                 time.Time `json:"date"`
	Location             string    `json:"location"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
}

// RegistrationWindow is the derived, non-persisted registration status
// of an event at a point in time.
type RegistrationWindow struct {
	Open          bool
	DaysRemaining int
}

// RegistrationWindow reports whether registration is open at the given
// time. Registration is open while now <= deadline; DaysRemaining is the
// ceiling of the remaining delta in whole days, and 0 once closed.
func (e Event) RegistrationWindow(now time.Time) RegistrationWindow {
	if now.After(e.RegistrationDeadline) {
		return RegistrationWindow{Open: false, DaysRemaining: 0}
	}

	remaining := e.RegistrationDeadline.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}

	return RegistrationWindow{Open: true, DaysRemaining: days}
}
