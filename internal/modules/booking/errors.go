package booking

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDateInPast        = errors.New("booking date in the past")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrValidation        = errors.New("validation error")
)
