package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler streams a user's full transaction history as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// exportRow is one line of the export: income and expense events merged
// into a single chronological table.
type exportRow struct {
	Type     string
	Category string
	Amount   float64
	Date     time.Time
}

func (h *ExportHandler) loadRows(userID uint) ([]exportRow, error) {
	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		rows = append(rows, exportRow{
			Type:   "income",
			Amount: in.Amount,
			Date:   in.CreatedAt,
		})
	}
	for _, ex := range expenses {
		rows = append(rows, exportRow{
			Type:     "expense",
			Category: ex.Category,
			Amount:   ex.Amount,
			Date:     ex.Date,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// ExportCSV writes the history as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.APIError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.loadRows(user.ID)
	if err != nil {
		util.APIError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Type", "Category", "Amount", "Date"})
	for _, r := range rows {
		writer.Write([]string{
			r.Type,
			r.Category,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Date.Format("2006-01-02"),
		})
	}
}

// ExportXLSX writes the history as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.APIError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.loadRows(user.ID)
	if err != nil {
		util.APIError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.APIError(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"Type", "Category", "Amount", "Date"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, r := range rows {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Date.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.APIError(c, http.StatusInternalServerError, "Failed to export")
	}
}
