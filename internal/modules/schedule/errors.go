package schedule

import "errors"

var (
	ErrEmptySchedule    = errors.New("no enabled days in schedule")
	ErrIntervalTooShort = errors.New("interval shorter than one hour")
	ErrMalformedTime    = errors.New("malformed time value")
	ErrUserNotFound     = errors.New("user not found")
)
