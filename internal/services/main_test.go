package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Itinerary{},
		&db_models.Expense{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *db_models.User {
	t.Helper()

	user := &db_models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestItinerary(t *testing.T, db *gorm.DB, userID uint) *db_models.Itinerary {
	t.Helper()

	itinerary := &db_models.Itinerary{UserID: userID, Content: []byte(`{"itinerary_text":"stub"}`)}
	require.NoError(t, db.Create(itinerary).Error)
	return itinerary
}
