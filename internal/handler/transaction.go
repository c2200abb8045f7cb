package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler records income and expense events.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// parseAmount parses a submitted monetary form field. Sign and zero are
// deliberately not validated, only numeric form.
func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// AddIncomeForm renders the income entry page.
func (h *TransactionHandler) AddIncomeForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_income.html", gin.H{
		"title": "Finance Tracker - Add Income",
	})
}

// AddIncome inserts an income event and rebuilds the savings balance,
// both inside one transaction.
func (h *TransactionHandler) AddIncome(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid amount")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		income := models.Income{
			UserID: user.ID,
			Amount: amount,
		}
		if err := tx.Create(&income).Error; err != nil {
			return err
		}
		return rebuildSavingsBalance(tx, user.ID)
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to record income")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// AddExpenseForm renders the expense entry page.
func (h *TransactionHandler) AddExpenseForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_expense.html", gin.H{
		"title": "Finance Tracker - Add Expense",
	})
}

// AddExpense inserts an expense event dated today and rebuilds the
// savings balance, both inside one transaction. The rebuild creates the
// balance row when it does not exist yet, so an expense recorded before
// any income still leaves a consistent (negative) stored balance.
func (h *TransactionHandler) AddExpense(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid amount")
		return
	}
	category := c.PostForm("category")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		expense := models.Expense{
			UserID:   user.ID,
			Amount:   amount,
			Category: category,
			Date:     today,
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}
		return rebuildSavingsBalance(tx, user.ID)
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to record expense")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
