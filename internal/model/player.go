package model

import "time"

// PlayerID uniquely identifies a player
type PlayerID string

// Player positions
const (
	PositionForward    = "Forward"
	PositionMidfielder = "Midfielder"
	PositionDefender   = "Defender"
	PositionGoalkeeper = "Goalkeeper"
)

// Player represents a registered club player
type Player struct {
	ID           PlayerID `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	DateOfBirth  Date     `json:"dateOfBirth"`
	Gender       string   `json:"gender"`
	TeamID       TeamID   `json:"teamId"` // weak reference, empty when unassigned
	Position     string   `json:"position"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	ProfileImage string   `json:"profileImage,omitempty"`
}

// Age returns the player's age in whole years as of the given time.
// The year difference is decremented when the birthday has not yet
// occurred this year.
func (p Player) Age(now time.Time) int {
	dob := p.DateOfBirth.Time
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// FullName returns the player's display name
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
