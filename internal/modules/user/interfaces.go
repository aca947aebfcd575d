package user

import (
	"context"

	"meetslot/internal/domain"
)

// UserRepository defines the identity-store contract: usernames are unique
// as stored.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
