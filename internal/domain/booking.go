package domain

import "time"

// Booking is a confirmed reservation of one hour-aligned slot. Date always
// holds the start of the hour; at most one booking exists per (UserID, Date).
type Booking struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Date         time.Time `json:"date"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
