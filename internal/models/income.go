package models

import "time"

// Income is a single recorded inflow of money for a user.
// Rows are append-only: there is no update or delete path.
type Income struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"index;not null"`
	Amount    float64 `gorm:"not null"`
	CreatedAt time.Time
}
