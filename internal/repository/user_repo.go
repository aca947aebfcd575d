package repository

import (
	"context"
	"strings"
	"time"

	"meetslot/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Username  string    `gorm:"column:username;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:        u.ID,
		Username:  strings.TrimSpace(u.Username),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

// GetByUsername looks a user up by the stored (lowercase) username. Returns
// gorm.ErrRecordNotFound when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}
