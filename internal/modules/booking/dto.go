package booking

import "time"

type CreateBookingRequest struct {
	Name         string    `json:"name" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	Observations string    `json:"observations"`
	Date         time.Time `json:"date" binding:"required"`
}

// AvailabilityResponse lists hour marks for one day: every hour covered by
// the owner's enabled interval, and the subset still open for booking.
type AvailabilityResponse struct {
	Date           string `json:"date"`
	PossibleTimes  []int  `json:"possible_times"`
	AvailableTimes []int  `json:"available_times"`
}
