package schedule

// IntervalInput is one raw form row, exactly as submitted: one per weekday.
type IntervalInput struct {
	WeekDay   int    `json:"weekDay" validate:"min=0,max=6"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type UpdateScheduleRequest struct {
	Intervals []IntervalInput `json:"intervals"`
}
