package db_models

import "time"

type Expense struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`
	// nullable on purpose: an expense may be unassociated with any trip
	ItineraryID *uint  `gorm:"index"`
	Item        string `gorm:"not null"`
	Amount      float64
	CreatedAt   time.Time
}
