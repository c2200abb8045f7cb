package router

import (
	"github.com/NiharikaRamisetty/Finance-tracker/internal/config"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/handler"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/logger"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and route table.
// templateGlob points at the HTML templates, e.g. "web/templates/*".
func SetupRouter(cfg *config.Config, db *gorm.DB, templateGlob string) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger.Get()), gin.Recovery())

	r.LoadHTMLGlob(templateGlob)

	authHandler := handler.NewAuthHandler(db, cfg.Session)
	pageHandler := handler.NewPageHandler(db)
	txHandler := handler.NewTransactionHandler(db)
	savingsHandler := handler.NewSavingsHandler(db)
	exportHandler := handler.NewExportHandler(db)

	// public routes
	r.GET("/", pageHandler.Home)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	cookieName := authHandler.CookieName

	// protected HTML pages: redirect to the entry page when not logged in
	pages := r.Group("", middleware.RequirePageAuth(db, cookieName))
	pages.GET("/dashboard", pageHandler.Dashboard)
	pages.GET("/add_income", txHandler.AddIncomeForm)
	pages.POST("/add_income", txHandler.AddIncome)
	pages.GET("/add_expense", txHandler.AddExpenseForm)
	pages.POST("/add_expense", txHandler.AddExpense)
	pages.GET("/reports", pageHandler.Reports)
	pages.GET("/goal", savingsHandler.GoalForm)
	pages.POST("/goal", savingsHandler.SetGoal)

	// data routes: structured 401 instead of a redirect
	api := r.Group("", middleware.RequireAPIAuth(db, cookieName))
	api.GET("/api/savings", savingsHandler.GetSavings)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
