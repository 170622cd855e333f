package model

import "time"

// UserID uniquely identifies a user account
type UserID string

// User is an account record in the users collection.
// Username is immutable after registration and unique across the collection.
type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"` // bcrypt hash
	CreatedAt    time.Time `json:"createdAt"`
}
