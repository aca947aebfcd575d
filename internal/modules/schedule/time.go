package schedule

import (
	"strconv"
	"strings"
)

// ConvertTimeToMinutes parses an "HH:MM" wall-clock string into minutes from
// midnight. No timezone handling.
func ConvertTimeToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, ErrMalformedTime
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrMalformedTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrMalformedTime
	}

	return hours*60 + minutes, nil
}
