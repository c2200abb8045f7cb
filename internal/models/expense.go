package models

import "time"

// Expense is a single recorded outflow of money for a user,
// tagged with a free-text category and the calendar date it occurred.
// Rows are append-only, like Income.
type Expense struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Amount    float64   `gorm:"not null"`
	Category  string    `gorm:"size:64;not null"`
	Date      time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
