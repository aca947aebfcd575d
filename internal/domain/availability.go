package domain

// WeekDayInterval is one enabled weekday of a user's published availability.
// Times are minutes from midnight, local wall clock.
type WeekDayInterval struct {
	WeekDay            int `json:"week_day"`
	StartTimeInMinutes int `json:"start_time_in_minutes"`
	EndTimeInMinutes   int `json:"end_time_in_minutes"`
}

// WeeklySchedule holds the enabled intervals of a user, at most one per
// weekday (0 = Sunday). Disabled days are simply absent.
type WeeklySchedule struct {
	UserID    int64             `json:"user_id"`
	Intervals []WeekDayInterval `json:"intervals"`
}
