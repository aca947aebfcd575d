package schedule

import (
	"context"
	"errors"

	"meetslot/internal/domain"

	"gorm.io/gorm"
)

const minIntervalMinutes = 60

type Service struct {
	users     UserRepository
	intervals IntervalRepository
}

func NewService(users UserRepository, intervals IntervalRepository) *Service {
	return &Service{users: users, intervals: intervals}
}

// Normalize turns the 7 raw form rows into canonical enabled intervals.
// Disabled rows are dropped before any time validation, so malformed times on
// a disabled day never block acceptance.
func Normalize(inputs []IntervalInput) ([]domain.WeekDayInterval, error) {
	enabled := make([]IntervalInput, 0, len(inputs))
	for _, in := range inputs {
		if in.Enabled {
			enabled = append(enabled, in)
		}
	}

	if len(enabled) == 0 {
		return nil, ErrEmptySchedule
	}

	out := make([]domain.WeekDayInterval, 0, len(enabled))
	for _, in := range enabled {
		start, err := ConvertTimeToMinutes(in.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ConvertTimeToMinutes(in.EndTime)
		if err != nil {
			return nil, err
		}

		if end-start < minIntervalMinutes {
			return nil, ErrIntervalTooShort
		}

		out = append(out, domain.WeekDayInterval{
			WeekDay:            in.WeekDay,
			StartTimeInMinutes: start,
			EndTimeInMinutes:   end,
		})
	}

	return out, nil
}

// Replace validates the submission and swaps the user's persisted schedule.
func (s *Service) Replace(ctx context.Context, username string, req UpdateScheduleRequest) (*domain.WeeklySchedule, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	intervals, err := Normalize(req.Intervals)
	if err != nil {
		return nil, err
	}

	if err := s.intervals.ReplaceForUser(ctx, u.ID, intervals); err != nil {
		return nil, err
	}

	return &domain.WeeklySchedule{UserID: u.ID, Intervals: intervals}, nil
}

func (s *Service) Get(ctx context.Context, username string) (*domain.WeeklySchedule, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	intervals, err := s.intervals.GetForUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &domain.WeeklySchedule{UserID: u.ID, Intervals: intervals}, nil
}
