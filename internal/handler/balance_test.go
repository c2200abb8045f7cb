package handler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/config"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/database"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "finance.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestSavingsAggregateEmpty(t *testing.T) {
	db := newTestDB(t)

	total, err := savingsAggregate(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestSavingsAggregateIsPerUser(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Income{UserID: 1, Amount: 100}).Error)
	require.NoError(t, db.Create(&models.Income{UserID: 2, Amount: 55}).Error)
	require.NoError(t, db.Create(&models.Expense{
		UserID: 1, Amount: 30, Category: "food", Date: time.Now(),
	}).Error)

	total, err := savingsAggregate(db, 1)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, total, 1e-9)

	total, err = savingsAggregate(db, 2)
	require.NoError(t, err)
	assert.InDelta(t, 55.0, total, 1e-9)
}

func TestRebuildSavingsBalanceCreatesRow(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Income{UserID: 1, Amount: 40}).Error)
	require.NoError(t, rebuildSavingsBalance(db, 1))

	var balance models.SavingsBalance
	require.NoError(t, db.Where("user_id = ?", 1).First(&balance).Error)
	assert.InDelta(t, 40.0, balance.Amount, 1e-9)
}

func TestRebuildSavingsBalanceUpdatesRow(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Income{UserID: 1, Amount: 40}).Error)
	require.NoError(t, rebuildSavingsBalance(db, 1))

	require.NoError(t, db.Create(&models.Expense{
		UserID: 1, Amount: 15, Category: "transport", Date: time.Now(),
	}).Error)
	require.NoError(t, rebuildSavingsBalance(db, 1))

	var balances []models.SavingsBalance
	require.NoError(t, db.Where("user_id = ?", 1).Find(&balances).Error)
	require.Len(t, balances, 1, "rebuild upserts, never duplicates")
	assert.InDelta(t, 25.0, balances[0].Amount, 1e-9)
}

// A drifted cache is overwritten by the next rebuild: the event log is
// authoritative.
func TestRebuildOverwritesDriftedCache(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Income{UserID: 1, Amount: 100}).Error)
	require.NoError(t, rebuildSavingsBalance(db, 1))

	require.NoError(t, db.Model(&models.SavingsBalance{}).
		Where("user_id = ?", 1).
		Update("amount", 999).Error)

	require.NoError(t, rebuildSavingsBalance(db, 1))

	var balance models.SavingsBalance
	require.NoError(t, db.Where("user_id = ?", 1).First(&balance).Error)
	assert.InDelta(t, 100.0, balance.Amount, 1e-9)
}
