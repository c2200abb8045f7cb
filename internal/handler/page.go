package handler

import (
	"errors"
	"net/http"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageHandler serves the HTML pages. It reads raw event lists and the
// stored balance and hands them to the templates; summary figures are
// the presentation layer's business.
type PageHandler struct {
	DB *gorm.DB
}

func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{DB: db}
}

// Home renders the entry (login) page.
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Finance Tracker - Login",
	})
}

// userEvents loads the user's income list, expense list and stored
// balance row. A missing balance row reads as 0.0.
func (h *PageHandler) userEvents(userID uint) ([]models.Income, []models.Expense, float64, error) {
	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&incomes).Error; err != nil {
		return nil, nil, 0, err
	}

	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, nil, 0, err
	}

	var balance models.SavingsBalance
	err := h.DB.Where("user_id = ?", userID).First(&balance).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, 0, err
	}

	return incomes, expenses, balance.Amount, nil
}

// Dashboard shows the user's events and stored running balance.
func (h *PageHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	incomes, expenses, balance, err := h.userEvents(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":    "Finance Tracker - Dashboard",
		"username": user.Username,
		"incomes":  incomes,
		"expenses": expenses,
		"balance":  balance,
	})
}

// Reports shows the same reads as the dashboard plus the savings goal
// and the independently recomputed progress figure. The stored balance
// and the recomputed aggregate each satisfy their own formula; with the
// transactional rebuild they also agree.
func (h *PageHandler) Reports(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	incomes, expenses, balance, err := h.userEvents(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load reports")
		return
	}

	var goal models.SavingsGoal
	hasGoal := true
	if err := h.DB.Where("user_id = ?", user.ID).First(&goal).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusInternalServerError, "Failed to load reports")
			return
		}
		hasGoal = false
	}

	progress, err := savingsAggregate(h.DB, user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load reports")
		return
	}

	c.HTML(http.StatusOK, "reports.html", gin.H{
		"title":    "Finance Tracker - Reports",
		"username": user.Username,
		"incomes":  incomes,
		"expenses": expenses,
		"balance":  balance,
		"hasGoal":  hasGoal,
		"goal":     goal,
		"progress": progress,
	})
}
