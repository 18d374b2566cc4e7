package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/ledger"
	"github.com/kainat67-star/construction-management-sub000/internal/models"
	"github.com/kainat67-star/construction-management-sub000/internal/repository"
	"github.com/kainat67-star/construction-management-sub000/internal/utils"
)

// MarkRentResult reports the outcome of marking a rent month received.
// Marking an already-received month is a no-op, not an error; the flag
// tells the caller which case happened.
type MarkRentResult struct {
	AlreadyRecorded bool
	Entry           *models.LedgerEntry
}

// CategoryTotals is one category line of a monthly summary.
type CategoryTotals struct {
	Category    string          `json:"category"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// MonthlySummary is the derived month view over a property's entries.
type MonthlySummary struct {
	Month      string           `json:"month"`
	Totals     ledger.Totals    `json:"totals"`
	ByCategory []CategoryTotals `json:"byCategory"`
}

// Service defines all the business logic operations
type Service interface {
	// Properties
	CreateProperty(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error)
	GetProperty(ctx context.Context, propertyID string) (*models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)

	// Ledger entries
	AddEntry(ctx context.Context, propertyID string, req models.EntryRequest) (*models.LedgerEntry, error)
	UpdateEntry(ctx context.Context, propertyID, entryID string, req models.EntryRequest) (*models.LedgerEntry, error)
	DeleteEntry(ctx context.Context, propertyID, entryID string) error
	LockEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error)
	UnlockEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error)
	LockAllEntries(ctx context.Context, propertyID string) (int, error)
	UnlockAllEntries(ctx context.Context, propertyID string) (int, error)
	ListEntries(ctx context.Context, propertyID string) ([]models.LedgerEntry, error)
	GetTotals(ctx context.Context, propertyID string) (ledger.Totals, error)
	MonthlySummary(ctx context.Context, propertyID string, month time.Time) (*MonthlySummary, error)

	// Rent register
	RentSchedule(ctx context.Context, propertyID string, asOf time.Time) ([]models.RentRecord, error)
	MarkRentReceived(ctx context.Context, propertyID string, year int, month time.Month) (*MarkRentResult, error)

	// Sale accounting and tax entries
	SaleSummary(ctx context.Context, propertyID string) (ledger.SaleSummary, error)
	AddSaleEntry(ctx context.Context, propertyID string, req models.SaleEntryRequest) (*models.LedgerEntry, error)
	AddTaxEntry(ctx context.Context, propertyID string, req models.TaxEntryRequest) (*models.LedgerEntry, error)

	// Daily logs
	CreateDailyLog(ctx context.Context, req models.CreateDailyLogRequest) (*models.DailyLog, error)
	GetDailyLog(ctx context.Context, logID string) (*models.DailyLog, error)
	ListDailyLogs(ctx context.Context) ([]models.DailyLog, error)
	AddDailyExpense(ctx context.Context, logID string, req models.DailyExpenseRequest) (*models.DailyLog, error)
	ConsolidateDailyLog(ctx context.Context, logID string) (*models.DailyLog, error)
	ReopenDailyLog(ctx context.Context, logID, reason string) (*models.DailyLog, error)

	// Bank registry
	AddBank(ctx context.Context, req models.BankRequest) (*models.Bank, error)
	UpdateBank(ctx context.Context, bankID string, req models.BankRequest) (*models.Bank, error)
	DeleteBank(ctx context.Context, bankID string) error
	ListBanks(ctx context.Context) ([]models.Bank, error)
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo   repository.Repository
	logger *utils.Logger
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, logger *utils.Logger) Service {
	return &DefaultService{
		repo:   repo,
		logger: logger,
	}
}

// dateLayouts accepted for dates arriving over the wire.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ledger.ValidationError{Field: "date", Reason: fmt.Sprintf("unrecognized date %q", s)}
}

// Property methods
func (s *DefaultService) CreateProperty(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error) {
	purchaseDate, err := parseDate(req.PurchaseDate, time.Time{})
	if err != nil {
		return nil, err
	}
	if purchaseDate.IsZero() {
		return nil, &ledger.ValidationError{Field: "purchaseDate", Reason: "must not be empty"}
	}

	property := &models.Property{
		Name:         req.Name,
		Type:         models.PropertyType(req.Type),
		PurchaseDate: purchaseDate,
		TenantName:   req.TenantName,
		RentalDetails: models.RentalDetails{
			MonthlyRentAmount: req.MonthlyRentAmount,
			RentDueDay:        req.RentDueDay,
		},
	}

	if err := s.repo.CreateProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("error creating property: %w", err)
	}
	return property, nil
}

func (s *DefaultService) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	property, err := s.repo.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error getting property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s: %w", propertyID, ledger.ErrNotFound)
	}
	return property, nil
}

func (s *DefaultService) ListProperties(ctx context.Context) ([]models.Property, error) {
	properties, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing properties: %w", err)
	}
	return properties, nil
}

// Ledger entry methods
func (s *DefaultService) AddEntry(ctx context.Context, propertyID string, req models.EntryRequest) (*models.LedgerEntry, error) {
	if _, err := s.GetProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		PropertyID:       propertyID,
		Date:             date,
		Description:      req.Description,
		Type:             models.EntryType(req.Type),
		Amount:           req.Amount,
		Category:         req.Category,
		PaymentMethod:    models.PaymentMethod(req.PaymentMethod),
		Counterparty:     req.Counterparty,
		LinkedDocumentID: req.LinkedDocumentID,
		LinkedImageID:    req.LinkedImageID,
		Attachment:       req.Attachment,
		Notes:            req.Notes,
		IsOpeningBalance: req.IsOpeningBalance,
	}

	if err := ledger.ValidateEntry(*entry); err != nil {
		return nil, err
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return entry, nil
}

// getMutableEntry fetches an entry and refuses to hand it back for
// mutation when it is locked or the caller's version is stale.
func (s *DefaultService) getMutableEntry(ctx context.Context, propertyID, entryID string, expectedVersion int64) (*models.LedgerEntry, error) {
	entry, err := s.repo.GetEntry(ctx, propertyID, entryID)
	if err != nil {
		return nil, fmt.Errorf("error getting entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("entry %s: %w", entryID, ledger.ErrNotFound)
	}
	if entry.IsLocked {
		return nil, fmt.Errorf("entry %s: %w", entryID, ledger.ErrEntryLocked)
	}
	if expectedVersion != 0 && entry.Version != expectedVersion {
		return nil, fmt.Errorf("entry %s at version %d, expected %d: %w",
			entryID, entry.Version, expectedVersion, ledger.ErrVersionConflict)
	}
	return entry, nil
}

func (s *DefaultService) UpdateEntry(ctx context.Context, propertyID, entryID string, req models.EntryRequest) (*models.LedgerEntry, error) {
	entry, err := s.getMutableEntry(ctx, propertyID, entryID, req.ExpectedVersion)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date, entry.Date)
	if err != nil {
		return nil, err
	}

	entry.Date = date
	entry.Description = req.Description
	entry.Type = models.EntryType(req.Type)
	entry.Amount = req.Amount
	entry.Category = req.Category
	entry.PaymentMethod = models.PaymentMethod(req.PaymentMethod)
	entry.Counterparty = req.Counterparty
	entry.LinkedDocumentID = req.LinkedDocumentID
	entry.LinkedImageID = req.LinkedImageID
	entry.Attachment = req.Attachment
	entry.Notes = req.Notes
	entry.IsOpeningBalance = req.IsOpeningBalance

	if err := ledger.ValidateEntry(*entry); err != nil {
		return nil, err
	}

	entry.Version++
	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error updating entry: %w", err)
	}
	return entry, nil
}

func (s *DefaultService) DeleteEntry(ctx context.Context, propertyID, entryID string) error {
	if _, err := s.getMutableEntry(ctx, propertyID, entryID, 0); err != nil {
		return err
	}
	if err := s.repo.DeleteEntry(ctx, propertyID, entryID); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}

// setEntryLock is the single place the lock flag flips. Lock and unlock
// are idempotent and touch nothing but the flag and version.
func (s *DefaultService) setEntryLock(ctx context.Context, propertyID, entryID string, locked bool) (*models.LedgerEntry, error) {
	entry, err := s.repo.GetEntry(ctx, propertyID, entryID)
	if err != nil {
		return nil, fmt.Errorf("error getting entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("entry %s: %w", entryID, ledger.ErrNotFound)
	}
	if entry.IsLocked == locked {
		return entry, nil
	}

	entry.IsLocked = locked
	entry.Version++
	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error updating entry lock: %w", err)
	}
	return entry, nil
}

func (s *DefaultService) LockEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error) {
	return s.setEntryLock(ctx, propertyID, entryID, true)
}

func (s *DefaultService) UnlockEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error) {
	return s.setEntryLock(ctx, propertyID, entryID, false)
}

// setAllEntryLocks applies the single-entry lock primitive across a
// property and returns how many entries actually changed state.
func (s *DefaultService) setAllEntryLocks(ctx context.Context, propertyID string, locked bool) (int, error) {
	entries, err := s.ListEntries(ctx, propertyID)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, e := range entries {
		if e.IsLocked == locked {
			continue
		}
		if _, err := s.setEntryLock(ctx, propertyID, e.ID, locked); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func (s *DefaultService) LockAllEntries(ctx context.Context, propertyID string) (int, error) {
	return s.setAllEntryLocks(ctx, propertyID, true)
}

func (s *DefaultService) UnlockAllEntries(ctx context.Context, propertyID string) (int, error) {
	return s.setAllEntryLocks(ctx, propertyID, false)
}

func (s *DefaultService) ListEntries(ctx context.Context, propertyID string) ([]models.LedgerEntry, error) {
	if _, err := s.GetProperty(ctx, propertyID); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntriesByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

func (s *DefaultService) GetTotals(ctx context.Context, propertyID string) (ledger.Totals, error) {
	entries, err := s.ListEntries(ctx, propertyID)
	if err != nil {
		return ledger.Totals{}, err
	}
	return ledger.ComputeTotals(entries), nil
}

func (s *DefaultService) MonthlySummary(ctx context.Context, propertyID string, month time.Time) (*MonthlySummary, error) {
	entries, err := s.ListEntries(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var monthEntries []models.LedgerEntry
	for _, e := range entries {
		d := e.Date
		if !d.Before(start) && d.Before(end) {
			monthEntries = append(monthEntries, e)
		}
	}

	byCategory := make(map[string]*CategoryTotals)
	var order []string
	for _, e := range monthEntries {
		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &CategoryTotals{Category: e.Category}
			byCategory[e.Category] = ct
			order = append(order, e.Category)
		}
		switch e.Type {
		case models.EntryDebit:
			ct.TotalDebit = ct.TotalDebit.Add(e.Amount)
		case models.EntryCredit:
			ct.TotalCredit = ct.TotalCredit.Add(e.Amount)
		}
	}

	summary := &MonthlySummary{
		Month:  start.Format("2006-01"),
		Totals: ledger.ComputeTotals(monthEntries),
	}
	for _, category := range order {
		ct := byCategory[category]
		ct.Balance = ct.TotalCredit.Sub(ct.TotalDebit)
		summary.ByCategory = append(summary.ByCategory, *ct)
	}
	return summary, nil
}

// Rent register methods
func (s *DefaultService) RentSchedule(ctx context.Context, propertyID string, asOf time.Time) ([]models.RentRecord, error) {
	property, err := s.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntriesByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return ledger.GenerateRentSchedule(property.RentalDetails, property.PurchaseDate, entries, asOf)
}

func (s *DefaultService) MarkRentReceived(ctx context.Context, propertyID string, year int, month time.Month) (*MarkRentResult, error) {
	property, err := s.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.RentDueDay < 1 || property.RentDueDay > 31 {
		return nil, &ledger.ValidationError{Field: "rentDueDay", Reason: "rental details are not configured for this property"}
	}
	if !property.MonthlyRentAmount.IsPositive() {
		return nil, &ledger.ValidationError{Field: "monthlyRentAmount", Reason: "rental details are not configured for this property"}
	}

	entries, err := s.repo.ListEntriesByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	for _, e := range entries {
		if e.Type == models.EntryCredit && e.Category == models.CategoryRent &&
			e.Date.Year() == year && e.Date.Month() == month {
			existing := e
			return &MarkRentResult{AlreadyRecorded: true, Entry: &existing}, nil
		}
	}

	// the receipt is dated today, not on the due date
	entry := &models.LedgerEntry{
		PropertyID:   propertyID,
		Date:         time.Now().UTC(),
		Description:  fmt.Sprintf("Rent received for %s %d", month, year),
		Type:         models.EntryCredit,
		Amount:       property.MonthlyRentAmount,
		Category:     models.CategoryRent,
		Counterparty: property.TenantName,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating rent entry: %w", err)
	}
	return &MarkRentResult{Entry: entry}, nil
}

// Sale accounting and tax entry methods
func (s *DefaultService) SaleSummary(ctx context.Context, propertyID string) (ledger.SaleSummary, error) {
	entries, err := s.ListEntries(ctx, propertyID)
	if err != nil {
		return ledger.SaleSummary{}, err
	}
	return ledger.SummarizeSales(entries), nil
}

func (s *DefaultService) AddSaleEntry(ctx context.Context, propertyID string, req models.SaleEntryRequest) (*models.LedgerEntry, error) {
	description, ok := ledger.SaleStageDescription(req.Stage)
	if !ok {
		return nil, &ledger.ValidationError{Field: "stage", Reason: fmt.Sprintf("unknown sale stage %q", req.Stage)}
	}
	return s.AddEntry(ctx, propertyID, models.EntryRequest{
		Date:         req.Date,
		Description:  description,
		Type:         string(models.EntryCredit),
		Amount:       req.Amount,
		Category:     req.Stage,
		Counterparty: req.Counterparty,
		Notes:        req.Notes,
	})
}

func (s *DefaultService) AddTaxEntry(ctx context.Context, propertyID string, req models.TaxEntryRequest) (*models.LedgerEntry, error) {
	property, err := s.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !ledger.TaxTypeAllowed(property.Type, req.TaxType) {
		return nil, &ledger.ValidationError{
			Field:  "taxType",
			Reason: fmt.Sprintf("%q is not offered for %s properties", req.TaxType, property.Type),
		}
	}

	return s.AddEntry(ctx, propertyID, models.EntryRequest{
		Date:        req.Date,
		Description: ledger.ComposeTaxDescription(req.TaxType, req.TaxRate, req.ChallanNumber),
		Type:        string(models.EntryDebit),
		Amount:      req.Amount,
		Category:    models.CategoryTax,
		Notes:       req.Notes,
	})
}

// Daily log methods
func (s *DefaultService) CreateDailyLog(ctx context.Context, req models.CreateDailyLogRequest) (*models.DailyLog, error) {
	date, err := parseDate(req.Date, time.Time{})
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, &ledger.ValidationError{Field: "date", Reason: "must not be empty"}
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.repo.GetDailyLogByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error checking daily log date: %w", err)
	}
	if existing != nil {
		return nil, &ledger.ValidationError{
			Field:  "date",
			Reason: fmt.Sprintf("a daily log already exists for %s", day.Format("2006-01-02")),
		}
	}

	banks := make(map[string]decimal.Decimal, len(req.OpeningBanks))
	for name, amount := range req.OpeningBanks {
		banks[name] = amount
	}

	log := &models.DailyLog{
		Date: day,
		OpeningBalances: models.BalanceSheet{
			Cash:  req.OpeningCash,
			Banks: banks,
		},
		ClosingBalances: models.BalanceSheet{Banks: map[string]decimal.Decimal{}},
		BankUsage:       map[string]decimal.Decimal{},
	}
	if err := s.repo.CreateDailyLog(ctx, log); err != nil {
		return nil, fmt.Errorf("error creating daily log: %w", err)
	}
	return log, nil
}

func (s *DefaultService) GetDailyLog(ctx context.Context, logID string) (*models.DailyLog, error) {
	log, err := s.repo.GetDailyLog(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("error getting daily log: %w", err)
	}
	if log == nil {
		return nil, fmt.Errorf("daily log %s: %w", logID, ledger.ErrNotFound)
	}
	return log, nil
}

func (s *DefaultService) ListDailyLogs(ctx context.Context) ([]models.DailyLog, error) {
	logs, err := s.repo.ListDailyLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing daily logs: %w", err)
	}
	return logs, nil
}

func (s *DefaultService) AddDailyExpense(ctx context.Context, logID string, req models.DailyExpenseRequest) (*models.DailyLog, error) {
	log, err := s.GetDailyLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.IsLocked {
		return nil, fmt.Errorf("daily log %s: %w", logID, ledger.ErrLogLocked)
	}

	expense := models.DailyExpense{
		LogID:         logID,
		PropertyID:    req.PropertyID,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		BankName:      req.BankName,
		CashAmount:    req.CashAmount,
		BankAmount:    req.BankAmount,
		IsPending:     req.IsPending,
	}
	if err := ledger.ValidateExpense(expense); err != nil {
		return nil, err
	}

	log.Expenses = append(log.Expenses, expense)
	log.Version++
	if err := s.repo.UpdateDailyLog(ctx, log); err != nil {
		return nil, fmt.Errorf("error adding expense: %w", err)
	}
	return log, nil
}

func (s *DefaultService) ConsolidateDailyLog(ctx context.Context, logID string) (*models.DailyLog, error) {
	log, err := s.GetDailyLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.IsLocked {
		return nil, fmt.Errorf("daily log %s already consolidated: %w", logID, ledger.ErrLogLocked)
	}

	consolidated, err := ledger.ConsolidateDay(*log)
	if err != nil {
		return nil, err
	}
	consolidated.Version = log.Version + 1

	if err := s.repo.UpdateDailyLog(ctx, &consolidated); err != nil {
		return nil, fmt.Errorf("error saving consolidated log: %w", err)
	}
	return &consolidated, nil
}

// ReopenDailyLog undoes consolidation for a day so a data-entry mistake
// can be corrected. It is deliberately separate from consolidation,
// requires a reason, and writes that reason to the audit log.
func (s *DefaultService) ReopenDailyLog(ctx context.Context, logID, reason string) (*models.DailyLog, error) {
	if reason == "" {
		return nil, &ledger.ValidationError{Field: "reason", Reason: "a reason is required to reopen a consolidated day"}
	}

	log, err := s.GetDailyLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if !log.IsLocked {
		return nil, &ledger.ValidationError{Field: "id", Reason: "daily log is not consolidated"}
	}

	log.IsLocked = false
	log.TotalDailyExpenses = decimal.Zero
	log.ClosingBalances = models.BalanceSheet{Banks: map[string]decimal.Decimal{}}
	log.BankUsage = map[string]decimal.Decimal{}
	log.Version++

	if err := s.repo.UpdateDailyLog(ctx, log); err != nil {
		return nil, fmt.Errorf("error reopening daily log: %w", err)
	}

	s.logger.Info("daily log %s (%s) reopened: %s", log.ID, log.Date.Format("2006-01-02"), reason)
	return log, nil
}

// Bank registry methods
func (s *DefaultService) AddBank(ctx context.Context, req models.BankRequest) (*models.Bank, error) {
	existing, err := s.repo.GetBankByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking bank name: %w", err)
	}
	if existing != nil {
		return nil, &ledger.ValidationError{Field: "name", Reason: fmt.Sprintf("bank %q already exists", req.Name)}
	}

	bank := &models.Bank{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		BranchName:    req.BranchName,
		AccountType:   req.AccountType,
		Balance:       req.Balance,
		Notes:         req.Notes,
	}
	if err := s.repo.CreateBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("error creating bank: %w", err)
	}
	return bank, nil
}

func (s *DefaultService) UpdateBank(ctx context.Context, bankID string, req models.BankRequest) (*models.Bank, error) {
	bank, err := s.repo.GetBank(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("error getting bank: %w", err)
	}
	if bank == nil {
		return nil, fmt.Errorf("bank %s: %w", bankID, ledger.ErrNotFound)
	}

	bank.Name = req.Name
	bank.AccountNumber = req.AccountNumber
	bank.BranchName = req.BranchName
	bank.AccountType = req.AccountType
	bank.Balance = req.Balance
	bank.Notes = req.Notes

	if err := s.repo.UpdateBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("error updating bank: %w", err)
	}
	return bank, nil
}

func (s *DefaultService) DeleteBank(ctx context.Context, bankID string) error {
	bank, err := s.repo.GetBank(ctx, bankID)
	if err != nil {
		return fmt.Errorf("error getting bank: %w", err)
	}
	if bank == nil {
		return fmt.Errorf("bank %s: %w", bankID, ledger.ErrNotFound)
	}
	if err := s.repo.DeleteBank(ctx, bankID); err != nil {
		return fmt.Errorf("error deleting bank: %w", err)
	}
	return nil
}

func (s *DefaultService) ListBanks(ctx context.Context) ([]models.Bank, error) {
	banks, err := s.repo.ListBanks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing banks: %w", err)
	}
	return banks, nil
}
