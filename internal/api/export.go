package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// ExportStatement streams a property's ledger as an xlsx statement:
// one row per entry with debit and credit columns and a running
// balance, oldest first.
func (h *Handler) ExportStatement(c *gin.Context) {
	propertyID := c.Param("id")

	property, err := h.svc.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	entries, err := h.svc.ListEntries(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Ledger"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		respondError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Description", "Category", "Debit", "Credit", "Balance"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	balance := decimal.Zero
	for idx, e := range entries {
		row := idx + 2

		debit := ""
		credit := ""
		switch e.Type {
		case models.EntryDebit:
			debit = e.Amount.String()
			balance = balance.Sub(e.Amount)
		case models.EntryCredit:
			credit = e.Amount.String()
			balance = balance.Add(e.Amount)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), debit)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), credit)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), balance.String())
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 40)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "F", 14)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_ledger_%s.xlsx\"",
		property.ID, time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error", Code: "INTERNAL", Message: "failed to write statement",
		})
	}
}
