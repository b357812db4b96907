package database

import (
	"taskboard-api/taskboard/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Task{},
	)
}
