package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/logger"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavingsHandler serves the savings data API and goal management.
type SavingsHandler struct {
	DB *gorm.DB
}

func NewSavingsHandler(db *gorm.DB) *SavingsHandler {
	return &SavingsHandler{DB: db}
}

// GetSavings returns the stored running balance as JSON. This is the
// one place the running (not recomputed) figure is exposed
// programmatically; a missing row reads as 0.0.
func (h *SavingsHandler) GetSavings(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.APIError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var balance models.SavingsBalance
	if err := h.DB.Where("user_id = ?", user.ID).First(&balance).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			util.APIError(c, http.StatusInternalServerError, "Failed to load savings")
			return
		}
		balance.Amount = 0.0
	}

	util.JSON(c, http.StatusOK, gin.H{
		"user_id":        user.ID,
		"savings_amount": balance.Amount,
	})
}

// GoalForm renders the goal-setting page.
func (h *SavingsHandler) GoalForm(c *gin.Context) {
	c.HTML(http.StatusOK, "goal.html", gin.H{
		"title": "Finance Tracker - Savings Goal",
	})
}

// SetGoal upserts the user's savings goal. Progress toward the goal is
// recomputed from the event tables, never read from the stored balance
// and never persisted.
func (h *SavingsHandler) SetGoal(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	target, err := parseAmount(c.PostForm("target_amount"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid target amount")
		return
	}

	progress, err := savingsAggregate(h.DB, user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to set goal")
		return
	}
	logger.Get().Debug("goal updated",
		zap.Uint("user_id", user.ID),
		zap.Float64("target", target),
		zap.Float64("progress", progress),
	)

	goal := models.SavingsGoal{
		UserID:       user.ID,
		TargetAmount: target,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"target_amount": target,
			"updated_at":    time.Now(),
		}),
	}).Create(&goal).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to set goal")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
