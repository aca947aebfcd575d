package schedule

import (
	"context"

	"meetslot/internal/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type IntervalRepository interface {
	ReplaceForUser(ctx context.Context, userID int64, intervals []domain.WeekDayInterval) error
	GetForUser(ctx context.Context, userID int64) ([]domain.WeekDayInterval, error)
}
