package database

import (
	"fmt"

	"github.com/michellecaii/Mood-tracker/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.JournalEntry{},
		&models.AIInsight{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
