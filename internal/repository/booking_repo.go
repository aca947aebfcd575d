package repository

import (
	"context"
	"errors"
	"time"

	"meetslot/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id;uniqueIndex:idx_user_slot"`
	Date         time.Time `gorm:"column:date;uniqueIndex:idx_user_slot"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Observations *string   `gorm:"column:observations"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var observations string
	if m.Observations != nil {
		observations = *m.Observations
	}

	return &domain.Booking{
		ID:           m.ID,
		UserID:       m.UserID,
		Date:         m.Date,
		Name:         m.Name,
		Email:        m.Email,
		Observations: observations,
		CreatedAt:    m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var observations *string
	if b.Observations != "" {
		v := b.Observations
		observations = &v
	}

	return bookingModel{
		ID:           b.ID,
		UserID:       b.UserID,
		Date:         b.Date,
		Name:         b.Name,
		Email:        b.Email,
		Observations: observations,
		CreatedAt:    b.CreatedAt,
	}
}

// Create inserts a booking. The unique index on (user_id, date) makes the
// insert the arbiter for concurrent attempts at the same slot; callers map
// the uniqueness violation to their conflict error.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByUserAndDate returns the booking occupying the exact slot, or nil.
func (r *BookingRepository) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListForUserBetween returns bookings with from <= date < to, ordered by slot.
func (r *BookingRepository) ListForUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
