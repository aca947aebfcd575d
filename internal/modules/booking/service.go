package booking

import (
	"context"
	"errors"
	"time"

	"meetslot/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	users     UserRepository
	bookings  BookingRepository
	intervals IntervalRepository
}

func NewService(users UserRepository, bookings BookingRepository, intervals IntervalRepository) *Service {
	return &Service{users: users, bookings: bookings, intervals: intervals}
}

// CreateBooking reserves one hour-aligned slot for the schedule owner.
// The proposed date is truncated to the start of its hour; two requests
// differing only within the same hour collide. The unique index on
// (user_id, date) resolves the check-then-create race: a uniqueness
// violation at insert time is the same outcome as a conflicting read.
//
// Note: the slot is not cross-checked against the owner's enabled intervals;
// the client calendar, fed by GetDayAvailability, only offers valid hours.
func (s *Service) CreateBooking(ctx context.Context, username string, req CreateBookingRequest) (*domain.Booking, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	slot := startOfHour(req.Date)

	// compared against the untruncated current instant: a slot in the
	// current hour is already rejected a few minutes in
	if slot.Before(time.Now()) {
		return nil, ErrDateInPast
	}

	existing, err := s.bookings.GetByUserAndDate(ctx, u.ID, slot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	b := &domain.Booking{
		UserID:       u.ID,
		Date:         slot,
		Name:         req.Name,
		Email:        req.Email,
		Observations: req.Observations,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	return b, nil
}

// GetDayAvailability computes the hour marks a visitor may pick on one day:
// the hours covered by the owner's enabled interval for that weekday, minus
// hours already booked, minus hours already past.
func (s *Service) GetDayAvailability(ctx context.Context, username, dateStr string) (*AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resp := &AvailabilityResponse{
		Date:           dateStr,
		PossibleTimes:  []int{},
		AvailableTimes: []int{},
	}

	interval, err := s.intervals.GetForUserWeekDay(ctx, u.ID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if interval == nil {
		return resp, nil
	}

	startHour := interval.StartTimeInMinutes / 60
	endHour := interval.EndTimeInMinutes / 60

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	booked, err := s.bookings.ListForUserBetween(ctx, u.ID, startOfDay, startOfDay.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	bookedHours := make(map[int]bool, len(booked))
	for _, b := range booked {
		bookedHours[b.Date.Hour()] = true
	}

	now := time.Now()
	for hour := startHour; hour < endHour; hour++ {
		resp.PossibleTimes = append(resp.PossibleTimes, hour)

		slot := startOfDay.Add(time.Duration(hour) * time.Hour)
		if bookedHours[hour] || slot.Before(now) {
			continue
		}
		resp.AvailableTimes = append(resp.AvailableTimes, hour)
	}

	return resp, nil
}

// startOfHour zeroes minutes and below on the wall clock, keeping the
// timestamp's own location.
func startOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
