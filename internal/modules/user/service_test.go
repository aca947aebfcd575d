package user

import (
	"context"
	"testing"

	"meetslot/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestClaim_LowercasesUsername(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetByUsername", mock.Anything, "john-doe").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "john-doe" && u.Name == "John Doe"
	})).Return(nil)

	service := NewService(mockUsers)

	u, err := service.Claim(context.Background(), ClaimUsernameRequest{Username: "John-Doe", Name: "John Doe"})

	assert.NoError(t, err)
	assert.Equal(t, "john-doe", u.Username)
	mockUsers.AssertExpectations(t)
}

func TestClaim_InvalidUsername(t *testing.T) {
	service := NewService(new(MockUserRepository))

	for _, username := range []string{"ab", "john_doe", "john doe", "j0hn", ""} {
		_, err := service.Claim(context.Background(), ClaimUsernameRequest{Username: username, Name: "X"})
		assert.ErrorIs(t, err, ErrInvalidUsername, "username %q", username)
	}
}

func TestClaim_UsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 2, Username: "alice"}, nil)

	service := NewService(mockUsers)

	_, err := service.Claim(context.Background(), ClaimUsernameRequest{Username: "alice", Name: "Alice"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClaim_UniqueViolationAtInsert(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

	service := NewService(mockUsers)

	_, err := service.Claim(context.Background(), ClaimUsernameRequest{Username: "alice", Name: "Alice"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestGetByUsername_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers)

	_, err := service.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}
