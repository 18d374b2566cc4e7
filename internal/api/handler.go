package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kainat67-star/construction-management-sub000/internal/ledger"
	"github.com/kainat67-star/construction-management-sub000/internal/models"
	"github.com/kainat67-star/construction-management-sub000/internal/service"
)

// Handler wires the service into gin routes
type Handler struct {
	svc service.Service
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers all routes. Everything under /api requires a
// valid bearer token.
func (h *Handler) SetupRoutes(router *gin.Engine, jwtSecret []byte) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(AuthMiddleware(jwtSecret))

	api.POST("/properties", h.CreateProperty)
	api.GET("/properties", h.ListProperties)
	api.GET("/properties/:id", h.GetProperty)

	api.GET("/properties/:id/entries", h.ListEntries)
	api.POST("/properties/:id/entries", h.AddEntry)
	api.PUT("/properties/:id/entries/:entryId", h.UpdateEntry)
	api.DELETE("/properties/:id/entries/:entryId", h.DeleteEntry)
	api.POST("/properties/:id/entries/:entryId/lock", h.LockEntry)
	api.POST("/properties/:id/entries/:entryId/unlock", h.UnlockEntry)
	api.POST("/properties/:id/lock-entries", h.LockAllEntries)
	api.POST("/properties/:id/unlock-entries", h.UnlockAllEntries)

	api.GET("/properties/:id/totals", h.GetTotals)
	api.GET("/properties/:id/summary", h.MonthlySummary)
	api.GET("/properties/:id/rent-schedule", h.RentSchedule)
	api.POST("/properties/:id/rent-schedule/mark-received", h.MarkRentReceived)
	api.GET("/properties/:id/sale-summary", h.SaleSummary)
	api.POST("/properties/:id/sale-entries", h.AddSaleEntry)
	api.POST("/properties/:id/tax-entries", h.AddTaxEntry)
	api.GET("/properties/:id/statement.xlsx", h.ExportStatement)

	api.POST("/daily-logs", h.CreateDailyLog)
	api.GET("/daily-logs", h.ListDailyLogs)
	api.GET("/daily-logs/:id", h.GetDailyLog)
	api.POST("/daily-logs/:id/expenses", h.AddDailyExpense)
	api.POST("/daily-logs/:id/consolidate", h.ConsolidateDailyLog)
	api.POST("/daily-logs/:id/reopen", h.ReopenDailyLog)

	api.POST("/banks", h.AddBank)
	api.GET("/banks", h.ListBanks)
	api.PUT("/banks/:id", h.UpdateBank)
	api.DELETE("/banks/:id", h.DeleteBank)
}

// respondError translates domain errors into HTTP responses. Locked
// records come back as conflicts with an explicit message so the UI can
// tell the user why the action was refused.
func respondError(c *gin.Context, err error) {
	var validationErr *ledger.ValidationError
	var unknownBankErr *ledger.UnknownBankError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error", Code: "VALIDATION", Message: validationErr.Error(),
		})
	case errors.As(err, &unknownBankErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error", Code: "UNKNOWN_BANK", Message: unknownBankErr.Error(),
		})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status: "error", Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, ledger.ErrEntryLocked):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Status: "error", Code: "ENTRY_LOCKED", Message: "entry is locked and cannot be modified",
		})
	case errors.Is(err, ledger.ErrLogLocked):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Status: "error", Code: "LOG_LOCKED", Message: "daily log is consolidated and cannot be modified",
		})
	case errors.Is(err, ledger.ErrVersionConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Status: "error", Code: "VERSION_CONFLICT", Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error", Code: "INTERNAL", Message: "internal server error",
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status: "error", Code: "VALIDATION", Message: message,
	})
}

// Property handlers
func (h *Handler) CreateProperty(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	property, err := h.svc.CreateProperty(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "property": property})
}

func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.svc.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "property": property})
}

func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.svc.ListProperties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "properties": properties})
}

// Ledger entry handlers
func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.svc.ListEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	totals := ledger.ComputeTotals(entries)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"entries": entries,
		"totals":  totals,
		"display": totals.Display(),
	})
}

func (h *Handler) AddEntry(c *gin.Context) {
	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.svc.AddEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "entry": entry})
}

func (h *Handler) UpdateEntry(c *gin.Context) {
	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.svc.UpdateEntry(c.Request.Context(), c.Param("id"), c.Param("entryId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "entry": entry})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	if err := h.svc.DeleteEntry(c.Request.Context(), c.Param("id"), c.Param("entryId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) LockEntry(c *gin.Context) {
	entry, err := h.svc.LockEntry(c.Request.Context(), c.Param("id"), c.Param("entryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "entry": entry})
}

func (h *Handler) UnlockEntry(c *gin.Context) {
	entry, err := h.svc.UnlockEntry(c.Request.Context(), c.Param("id"), c.Param("entryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "entry": entry})
}

func (h *Handler) LockAllEntries(c *gin.Context) {
	changed, err := h.svc.LockAllEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "locked": changed})
}

func (h *Handler) UnlockAllEntries(c *gin.Context) {
	changed, err := h.svc.UnlockAllEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "unlocked": changed})
}

// Derived view handlers
func (h *Handler) GetTotals(c *gin.Context) {
	totals, err := h.svc.GetTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"totals":  totals,
		"display": totals.Display(),
	})
}

func (h *Handler) MonthlySummary(c *gin.Context) {
	monthStr := c.DefaultQuery("month", time.Now().UTC().Format("2006-01"))
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		badRequest(c, "month must be in YYYY-MM format")
		return
	}

	summary, err := h.svc.MonthlySummary(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "summary": summary})
}

func (h *Handler) RentSchedule(c *gin.Context) {
	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		t, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			badRequest(c, "asOf must be in YYYY-MM-DD format")
			return
		}
		asOf = t
	}

	records, err := h.svc.RentSchedule(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "schedule": records})
}

func (h *Handler) MarkRentReceived(c *gin.Context) {
	var req models.MarkRentReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.svc.MarkRentReceived(c.Request.Context(), c.Param("id"), req.Year, time.Month(req.Month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MarkRentResponse{
		Status:          "success",
		AlreadyRecorded: result.AlreadyRecorded,
		Entry:           result.Entry,
	})
}

func (h *Handler) SaleSummary(c *gin.Context) {
	summary, err := h.svc.SaleSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "saleSummary": summary})
}

func (h *Handler) AddSaleEntry(c *gin.Context) {
	var req models.SaleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.svc.AddSaleEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "entry": entry})
}

func (h *Handler) AddTaxEntry(c *gin.Context) {
	var req models.TaxEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.svc.AddTaxEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "entry": entry})
}

// Daily log handlers
func (h *Handler) CreateDailyLog(c *gin.Context) {
	var req models.CreateDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	log, err := h.svc.CreateDailyLog(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "dailyLog": log})
}

func (h *Handler) GetDailyLog(c *gin.Context) {
	log, err := h.svc.GetDailyLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "dailyLog": log})
}

func (h *Handler) ListDailyLogs(c *gin.Context) {
	logs, err := h.svc.ListDailyLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "dailyLogs": logs})
}

func (h *Handler) AddDailyExpense(c *gin.Context) {
	var req models.DailyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	log, err := h.svc.AddDailyExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "dailyLog": log})
}

func (h *Handler) ConsolidateDailyLog(c *gin.Context) {
	log, err := h.svc.ConsolidateDailyLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "dailyLog": log})
}

func (h *Handler) ReopenDailyLog(c *gin.Context) {
	var req models.ReopenDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	log, err := h.svc.ReopenDailyLog(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "dailyLog": log})
}

// Bank registry handlers
func (h *Handler) AddBank(c *gin.Context) {
	var req models.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	bank, err := h.svc.AddBank(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "bank": bank})
}

func (h *Handler) ListBanks(c *gin.Context) {
	banks, err := h.svc.ListBanks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "banks": banks})
}

func (h *Handler) UpdateBank(c *gin.Context) {
	var req models.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	bank, err := h.svc.UpdateBank(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "bank": bank})
}

func (h *Handler) DeleteBank(c *gin.Context) {
	if err := h.svc.DeleteBank(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
