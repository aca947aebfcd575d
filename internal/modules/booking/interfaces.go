package booking

import (
	"context"
	"time"

	"meetslot/internal/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// BookingRepository defines the booking-store contract: Create fails with a
// uniqueness violation when a record with the same (userID, date) exists.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error)
	ListForUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.Booking, error)
}

type IntervalRepository interface {
	GetForUserWeekDay(ctx context.Context, userID int64, weekDay int) (*domain.WeekDayInterval, error)
}
