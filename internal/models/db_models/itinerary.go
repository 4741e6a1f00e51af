package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// Itinerary stores the generated plan as an opaque blob in the shape the
// planner produced it: {"itinerary_text": string, "coordinates": [...]}.
// BudgetLog is append-only free text, newline-separated.
type Itinerary struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"index;not null"`
	Content   datatypes.JSON `gorm:"not null"`
	BudgetLog *string
	CreatedAt time.Time
}
