package booking

import (
	"context"
	"testing"
	"time"

	"meetslot/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListForUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockIntervalRepository struct {
	mock.Mock
}

func (m *MockIntervalRepository) GetForUserWeekDay(ctx context.Context, userID int64, weekDay int) (*domain.WeekDayInterval, error) {
	args := m.Called(ctx, userID, weekDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekDayInterval), args.Error(1)
}

func newServiceWithMocks() (*Service, *MockUserRepository, *MockBookingRepository, *MockIntervalRepository) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingRepository)
	mockIntervals := new(MockIntervalRepository)
	return NewService(mockUsers, mockBookings, mockIntervals), mockUsers, mockBookings, mockIntervals
}

func TestCreateBooking_Success(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	slot := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	mockBookings.On("GetByUserAndDate", mock.Anything, int64(1), slot).Return(nil, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == 1 && b.Date.Equal(slot) && b.Name == "Bob" && b.Email == "bob@x.com"
	})).Return(nil)

	req := CreateBookingRequest{
		Name:  "Bob",
		Email: "bob@x.com",
		Date:  slot,
	}

	b, err := service.CreateBooking(context.Background(), "alice", req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.True(t, b.Date.Equal(slot))
	mockBookings.AssertExpectations(t)
}

func TestCreateBooking_TruncatesToStartOfHour(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)

	slot := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	mockBookings.On("GetByUserAndDate", mock.Anything, int64(1), slot).Return(nil, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Date.Equal(slot)
	})).Return(nil)

	req := CreateBookingRequest{
		Name:  "Bob",
		Email: "bob@x.com",
		Date:  time.Date(2030, 1, 1, 10, 45, 13, 500, time.UTC),
	}

	b, err := service.CreateBooking(context.Background(), "alice", req)

	assert.NoError(t, err)
	assert.True(t, b.Date.Equal(slot))
}

func TestCreateBooking_SameHourDifferentMinutesCollides(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)

	slot := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	mockBookings.On("GetByUserAndDate", mock.Anything, int64(1), slot).
		Return(&domain.Booking{ID: 5, UserID: 1, Date: slot}, nil)

	req := CreateBookingRequest{
		Name:  "Carol",
		Email: "carol@x.com",
		Date:  time.Date(2030, 1, 1, 10, 45, 0, 0, time.UTC),
	}

	_, err := service.CreateBooking(context.Background(), "alice", req)

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_DateInPast(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)

	req := CreateBookingRequest{
		Name:  "Bob",
		Email: "bob@x.com",
		Date:  time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	_, err := service.CreateBooking(context.Background(), "alice", req)

	assert.ErrorIs(t, err, ErrDateInPast)
	mockBookings.AssertNotCalled(t, "GetByUserAndDate", mock.Anything, mock.Anything, mock.Anything)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownUserBeforeAnyDateLogic(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	// even a clearly past date fails with not-found, not date-in-the-past
	req := CreateBookingRequest{
		Name:  "Bob",
		Email: "bob@x.com",
		Date:  time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	_, err := service.CreateBooking(context.Background(), "ghost", req)

	assert.ErrorIs(t, err, ErrUserNotFound)
	mockBookings.AssertNotCalled(t, "GetByUserAndDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_UniqueViolationAtInsertIsConflict(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)

	slot := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	mockBookings.On("GetByUserAndDate", mock.Anything, int64(1), slot).Return(nil, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_user_slot"})

	req := CreateBookingRequest{
		Name:  "Bob",
		Email: "bob@x.com",
		Date:  slot,
	}

	_, err := service.CreateBooking(context.Background(), "alice", req)

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestCreateBooking_DuplicatedKeyAtInsertIsConflict(t *testing.T) {
	service, mockUsers, mockBookings, _ := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)

	slot := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	mockBookings.On("GetByUserAndDate", mock.Anything, int64(1), slot).Return(nil, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	req := CreateBookingRequest{
		Name:  "Bob",
		Email: "bob@x.com",
		Date:  slot,
	}

	_, err := service.CreateBooking(context.Background(), "alice", req)

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestGetDayAvailability_SubtractsBookedHours(t *testing.T) {
	service, mockUsers, mockBookings, mockIntervals := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)

	day := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	// 10:00-13:00
	mockIntervals.On("GetForUserWeekDay", mock.Anything, int64(1), int(day.Weekday())).
		Return(&domain.WeekDayInterval{WeekDay: int(day.Weekday()), StartTimeInMinutes: 600, EndTimeInMinutes: 780}, nil)

	booked := []domain.Booking{
		{ID: 5, UserID: 1, Date: day.Add(11 * time.Hour)},
	}
	mockBookings.On("ListForUserBetween", mock.Anything, int64(1), day, day.Add(24*time.Hour)).Return(booked, nil)

	resp, err := service.GetDayAvailability(context.Background(), "alice", "2030-01-01")

	assert.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, resp.PossibleTimes)
	assert.Equal(t, []int{10, 12}, resp.AvailableTimes)
}

func TestGetDayAvailability_NoIntervalForWeekDay(t *testing.T) {
	service, mockUsers, mockBookings, mockIntervals := newServiceWithMocks()

	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1}, nil)
	mockIntervals.On("GetForUserWeekDay", mock.Anything, int64(1), mock.Anything).Return(nil, nil)

	resp, err := service.GetDayAvailability(context.Background(), "alice", "2030-01-01")

	assert.NoError(t, err)
	assert.Empty(t, resp.PossibleTimes)
	assert.Empty(t, resp.AvailableTimes)
	mockBookings.AssertNotCalled(t, "ListForUserBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDayAvailability_BadDate(t *testing.T) {
	service, _, _, _ := newServiceWithMocks()

	_, err := service.GetDayAvailability(context.Background(), "alice", "01/01/2030")

	assert.ErrorIs(t, err, ErrValidation)
}
