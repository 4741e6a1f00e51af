package db_models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time

	Itineraries []Itinerary `gorm:"constraint:OnDelete:CASCADE"`
	Expenses    []Expense   `gorm:"constraint:OnDelete:CASCADE"`
}
