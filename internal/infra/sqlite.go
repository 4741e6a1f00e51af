package infra

import (
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

func InitSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Error opening database %q: %v", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Error getting database instance: %v", err)
	}
	// sqlite has a single writer; one pooled connection avoids lock errors and
	// keeps :memory: databases from being silently split per connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		logrus.Fatalf("Error enabling foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Itinerary{},
		&db_models.Expense{},
	); err != nil {
		logrus.Fatalf("Error migrating schema: %v", err)
	}

	return db
}

func CloseSQLite(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Error closing database connection: %v", err)
	} else {
		logrus.Info("Database connection closed successfully")
	}
}
