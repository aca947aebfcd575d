package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"meetslot/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Usernames: at least 3 characters, letters and hyphens only, stored lowercase.
var usernameRe = regexp.MustCompile(`^[a-zA-Z-]{3,}$`)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Claim reserves a username. The unique index on users.username is the
// arbiter for concurrent claims of the same name.
func (s *Service) Claim(ctx context.Context, req ClaimUsernameRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if !usernameRe.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	u := &domain.User{
		Username: username,
		Name:     strings.TrimSpace(req.Name),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
