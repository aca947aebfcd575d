package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing all repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&intervalModel{},
		&bookingModel{},
	)
}
