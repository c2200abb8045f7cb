package handler

import (
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// savingsAggregate computes sum(income) - sum(expenses) for the user
// straight from the event tables. This aggregate is the authoritative
// savings figure; the savings_balances table only caches it.
func savingsAggregate(db *gorm.DB, userID uint) (float64, error) {
	var totalIncome float64
	if err := db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalIncome).Error; err != nil {
		return 0, err
	}

	var totalExpense float64
	if err := db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpense).Error; err != nil {
		return 0, err
	}

	return totalIncome - totalExpense, nil
}

// rebuildSavingsBalance recomputes the user's aggregate and writes it
// into savings_balances with a single atomic upsert. Callers run this
// inside the same transaction as the event insert, so the cached row
// can never drift from the event log.
func rebuildSavingsBalance(tx *gorm.DB, userID uint) error {
	total, err := savingsAggregate(tx, userID)
	if err != nil {
		return err
	}

	balance := models.SavingsBalance{
		UserID: userID,
		Amount: total,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     total,
			"updated_at": time.Now(),
		}),
	}).Create(&balance).Error
}
