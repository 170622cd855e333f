package model

import "time"

// AnnouncementID uniquely identifies an announcement
type AnnouncementID string

// Announcement is a club-wide notice. Listings are ordered newest first.
type Announcement struct {
	ID        AnnouncementID `json:"id"`
	Title     string         `json:"title"`
	Date      time.Time      `json:"date"`
	Message   string         `json:"message"`
	Important bool           `json:"important"`
}
