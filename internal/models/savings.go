package models

import "time"

// SavingsBalance holds a user's running savings total.
// It is a cache of sum(income) - sum(expenses): every income/expense
// insert rebuilds it from the event tables inside the same transaction,
// so it never drifts from the aggregate. At most one row per user.
type SavingsBalance struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"uniqueIndex;not null"`
	Amount    float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SavingsGoal holds a user's target savings amount. At most one row per
// user; POST /goal upserts it. Progress toward the goal is never stored,
// it is recomputed from the event tables on every read.
type SavingsGoal struct {
	ID           uint    `gorm:"primaryKey"`
	UserID       uint    `gorm:"uniqueIndex;not null"`
	TargetAmount float64 `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
