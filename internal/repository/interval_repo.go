package repository

import (
	"context"
	"errors"

	"meetslot/internal/domain"

	"gorm.io/gorm"
)

type IntervalRepository struct {
	db *gorm.DB
}

func NewIntervalRepository(db *gorm.DB) *IntervalRepository {
	return &IntervalRepository{db: db}
}

type intervalModel struct {
	ID                 int64 `gorm:"column:id;primaryKey"`
	UserID             int64 `gorm:"column:user_id;uniqueIndex:idx_user_week_day"`
	WeekDay            int   `gorm:"column:week_day;uniqueIndex:idx_user_week_day"`
	StartTimeInMinutes int   `gorm:"column:start_time_in_minutes"`
	EndTimeInMinutes   int   `gorm:"column:end_time_in_minutes"`
}

func (intervalModel) TableName() string { return "user_time_intervals" }

func toDomainInterval(m intervalModel) domain.WeekDayInterval {
	return domain.WeekDayInterval{
		WeekDay:            m.WeekDay,
		StartTimeInMinutes: m.StartTimeInMinutes,
		EndTimeInMinutes:   m.EndTimeInMinutes,
	}
}

// ReplaceForUser swaps the user's whole weekly schedule in one transaction.
// A resubmission fully replaces the previous rows, never merges into them.
func (r *IntervalRepository) ReplaceForUser(ctx context.Context, userID int64, intervals []domain.WeekDayInterval) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&intervalModel{}).Error; err != nil {
			return err
		}

		if len(intervals) == 0 {
			return nil
		}

		rows := make([]intervalModel, 0, len(intervals))
		for _, iv := range intervals {
			rows = append(rows, intervalModel{
				UserID:             userID,
				WeekDay:            iv.WeekDay,
				StartTimeInMinutes: iv.StartTimeInMinutes,
				EndTimeInMinutes:   iv.EndTimeInMinutes,
			})
		}
		return tx.Create(&rows).Error
	})
}

func (r *IntervalRepository) GetForUser(ctx context.Context, userID int64) ([]domain.WeekDayInterval, error) {
	var rows []intervalModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_day ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.WeekDayInterval, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainInterval(m))
	}
	return out, nil
}

// GetForUserWeekDay returns the configured interval for one weekday, or nil
// when the day is not enabled.
func (r *IntervalRepository) GetForUserWeekDay(ctx context.Context, userID int64, weekDay int) (*domain.WeekDayInterval, error) {
	var m intervalModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND week_day = ?", userID, weekDay).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	iv := toDomainInterval(m)
	return &iv, nil
}
