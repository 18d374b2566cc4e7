package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kainat67-star/construction-management-sub000/internal/ledger"
	"github.com/kainat67-star/construction-management-sub000/internal/models"
	"github.com/kainat67-star/construction-management-sub000/internal/repository"
	"github.com/kainat67-star/construction-management-sub000/internal/utils"
)

func newTestService() Service {
	return NewDefaultService(repository.NewMemoryRepository(), utils.NewLogger())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createTestProperty(t *testing.T, svc Service, propType string) *models.Property {
	t.Helper()
	property, err := svc.CreateProperty(context.Background(), models.CreatePropertyRequest{
		Name:              "Plot 42",
		Type:              propType,
		PurchaseDate:      "2024-01-05",
		TenantName:        "Mr. Khan",
		MonthlyRentAmount: dec("50000"),
		RentDueDay:        5,
	})
	require.NoError(t, err)
	return property
}

func entryReq(entryType, amount, description string) models.EntryRequest {
	return models.EntryRequest{
		Date:        "2024-02-10",
		Description: description,
		Type:        entryType,
		Amount:      dec(amount),
	}
}

func TestAddEntryAndTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	_, err := svc.AddEntry(ctx, property.ID, entryReq("Debit", "200", "materials"))
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, property.ID, entryReq("Credit", "500", "payment received"))
	require.NoError(t, err)

	totals, err := svc.GetTotals(ctx, property.ID)
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(dec("300")))
	assert.Equal(t, "300 (Credit)", totals.Display())
}

func TestAddEntryUnknownProperty(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddEntry(context.Background(), "no-such-id", entryReq("Debit", "100", "materials"))
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestAddEntryRejectsInvalid(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	_, err := svc.AddEntry(ctx, property.ID, entryReq("Debit", "0", "zero amount"))
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLockedEntryIsImmutable(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	entry, err := svc.AddEntry(ctx, property.ID, entryReq("Debit", "100", "materials"))
	require.NoError(t, err)

	locked, err := svc.LockEntry(ctx, property.ID, entry.ID)
	require.NoError(t, err)
	assert.True(t, locked.IsLocked)

	_, err = svc.UpdateEntry(ctx, property.ID, entry.ID, entryReq("Debit", "150", "materials revised"))
	assert.ErrorIs(t, err, ledger.ErrEntryLocked)

	err = svc.DeleteEntry(ctx, property.ID, entry.ID)
	assert.ErrorIs(t, err, ledger.ErrEntryLocked)

	// unlocking restores mutability
	_, err = svc.UnlockEntry(ctx, property.ID, entry.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(ctx, property.ID, entry.ID, entryReq("Debit", "150", "materials revised"))
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(dec("150")))

	assert.NoError(t, svc.DeleteEntry(ctx, property.ID, entry.ID))
}

func TestLockIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	entry, err := svc.AddEntry(ctx, property.ID, entryReq("Debit", "100", "materials"))
	require.NoError(t, err)

	first, err := svc.LockEntry(ctx, property.ID, entry.ID)
	require.NoError(t, err)
	second, err := svc.LockEntry(ctx, property.ID, entry.ID)
	require.NoError(t, err)

	// the second lock changes nothing, version included
	assert.Equal(t, first.Version, second.Version)
}

func TestUpdateEntryVersionConflict(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	entry, err := svc.AddEntry(ctx, property.ID, entryReq("Debit", "100", "materials"))
	require.NoError(t, err)

	req := entryReq("Debit", "120", "materials revised")
	req.ExpectedVersion = entry.Version
	_, err = svc.UpdateEntry(ctx, property.ID, entry.ID, req)
	require.NoError(t, err)

	// replaying with the stale version must fail
	stale := entryReq("Debit", "130", "materials revised again")
	stale.ExpectedVersion = entry.Version
	_, err = svc.UpdateEntry(ctx, property.ID, entry.ID, stale)
	assert.ErrorIs(t, err, ledger.ErrVersionConflict)
}

func TestLockAllEntries(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	e1, err := svc.AddEntry(ctx, property.ID, entryReq("Debit", "100", "materials"))
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, property.ID, entryReq("Credit", "200", "payment"))
	require.NoError(t, err)
	_, err = svc.LockEntry(ctx, property.ID, e1.ID)
	require.NoError(t, err)

	// one is already locked so only the other flips
	changed, err := svc.LockAllEntries(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	changed, err = svc.UnlockAllEntries(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
}

func TestMarkRentReceived(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Rent")

	// the receipt entry is dated today, so use the current month to
	// observe the repeat call becoming a no-op
	now := time.Now().UTC()

	result, err := svc.MarkRentReceived(ctx, property.ID, now.Year(), now.Month())
	require.NoError(t, err)
	assert.False(t, result.AlreadyRecorded)
	require.NotNil(t, result.Entry)
	assert.Equal(t, models.EntryCredit, result.Entry.Type)
	assert.Equal(t, models.CategoryRent, result.Entry.Category)
	assert.True(t, result.Entry.Amount.Equal(dec("50000")))
	assert.Equal(t, "Mr. Khan", result.Entry.Counterparty)

	again, err := svc.MarkRentReceived(ctx, property.ID, now.Year(), now.Month())
	require.NoError(t, err)
	assert.True(t, again.AlreadyRecorded)

	entries, err := svc.ListEntries(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMarkRentReceivedNeedsRentalDetails(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	property, err := svc.CreateProperty(ctx, models.CreatePropertyRequest{
		Name:         "Shop 7",
		Type:         "Sale",
		PurchaseDate: "2024-01-05",
	})
	require.NoError(t, err)

	_, err = svc.MarkRentReceived(ctx, property.ID, 2024, time.March)
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRentScheduleReflectsEntries(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Rent")

	req := entryReq("Credit", "50000", "Rent received for February 2024")
	req.Date = "2024-02-05"
	req.Category = models.CategoryRent
	_, err := svc.AddEntry(ctx, property.ID, req)
	require.NoError(t, err)

	records, err := svc.RentSchedule(ctx, property.ID, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, records)

	var feb *models.RentRecord
	for i := range records {
		if records[i].Month == time.February {
			feb = &records[i]
		}
	}
	require.NotNil(t, feb)
	assert.True(t, feb.IsReceived)
}

func TestAddSaleEntry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	entry, err := svc.AddSaleEntry(ctx, property.ID, models.SaleEntryRequest{
		Stage:        models.CategoryPartialPayment,
		Amount:       dec("250000"),
		Date:         "2024-03-01",
		Counterparty: "Buyer A",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntryCredit, entry.Type)
	assert.Equal(t, models.CategoryPartialPayment, entry.Category)
	assert.Equal(t, "Partial payment received", entry.Description)

	_, err = svc.AddSaleEntry(ctx, property.ID, models.SaleEntryRequest{
		Stage:  "Installment",
		Amount: dec("1000"),
	})
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	summary, err := svc.SaleSummary(ctx, property.ID)
	require.NoError(t, err)
	assert.True(t, summary.Total.Equal(dec("250000")))
}

func TestAddTaxEntry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	rate := dec("5.5")
	entry, err := svc.AddTaxEntry(ctx, property.ID, models.TaxEntryRequest{
		TaxType:       ledger.TaxPropertySale,
		Amount:        dec("5500"),
		Date:          "2024-03-01",
		TaxRate:       &rate,
		ChallanNumber: "CH-100",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntryDebit, entry.Type)
	assert.Equal(t, models.CategoryTax, entry.Category)
	assert.Equal(t, "Property Sale Tax (5.5%) - Challan: CH-100", entry.Description)

	// rental income tax is not offered for sale properties
	_, err = svc.AddTaxEntry(ctx, property.ID, models.TaxEntryRequest{
		TaxType: ledger.TaxRentalIncome,
		Amount:  dec("1000"),
	})
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func createTestDailyLog(t *testing.T, svc Service) *models.DailyLog {
	t.Helper()
	log, err := svc.CreateDailyLog(context.Background(), models.CreateDailyLogRequest{
		Date:        "2024-03-14",
		OpeningCash: dec("10000"),
		OpeningBanks: map[string]decimal.Decimal{
			"HBL":    dec("50000"),
			"Meezan": dec("20000"),
		},
	})
	require.NoError(t, err)
	return log
}

func TestDailyLogLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	log := createTestDailyLog(t, svc)

	_, err := svc.AddDailyExpense(ctx, log.ID, models.DailyExpenseRequest{
		Description:   "cement",
		Amount:        dec("3000"),
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)
	_, err = svc.AddDailyExpense(ctx, log.ID, models.DailyExpenseRequest{
		Description:   "steel",
		Amount:        dec("15000"),
		PaymentMethod: "Bank",
		BankName:      "HBL",
	})
	require.NoError(t, err)

	consolidated, err := svc.ConsolidateDailyLog(ctx, log.ID)
	require.NoError(t, err)
	assert.True(t, consolidated.IsLocked)
	assert.True(t, consolidated.TotalDailyExpenses.Equal(dec("18000")))
	assert.True(t, consolidated.ClosingBalances.Cash.Equal(dec("7000")))
	assert.True(t, consolidated.ClosingBalances.Banks["HBL"].Equal(dec("35000")))
	assert.True(t, consolidated.ClosingBalances.Banks["Meezan"].Equal(dec("20000")))

	// a locked day accepts no more expenses and no second consolidation
	_, err = svc.AddDailyExpense(ctx, log.ID, models.DailyExpenseRequest{
		Description:   "late entry",
		Amount:        dec("100"),
		PaymentMethod: "Cash",
	})
	assert.ErrorIs(t, err, ledger.ErrLogLocked)

	_, err = svc.ConsolidateDailyLog(ctx, log.ID)
	assert.ErrorIs(t, err, ledger.ErrLogLocked)
}

func TestDuplicateDailyLogDate(t *testing.T) {
	svc := newTestService()
	createTestDailyLog(t, svc)

	_, err := svc.CreateDailyLog(context.Background(), models.CreateDailyLogRequest{
		Date:        "2024-03-14",
		OpeningCash: dec("1"),
	})
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestConsolidateUnknownBank(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	log := createTestDailyLog(t, svc)

	_, err := svc.AddDailyExpense(ctx, log.ID, models.DailyExpenseRequest{
		Description:   "wires",
		Amount:        dec("100"),
		PaymentMethod: "Bank",
		BankName:      "UBL",
	})
	require.NoError(t, err)

	_, err = svc.ConsolidateDailyLog(ctx, log.ID)
	var bankErr *ledger.UnknownBankError
	require.ErrorAs(t, err, &bankErr)
	assert.Equal(t, "UBL", bankErr.Name)

	// the failed consolidation must leave the day open
	fetched, err := svc.GetDailyLog(ctx, log.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsLocked)
}

func TestReopenDailyLog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	log := createTestDailyLog(t, svc)

	_, err := svc.AddDailyExpense(ctx, log.ID, models.DailyExpenseRequest{
		Description:   "cement",
		Amount:        dec("3000"),
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)
	_, err = svc.ConsolidateDailyLog(ctx, log.ID)
	require.NoError(t, err)

	// reopening an open day or omitting the reason are both rejected
	_, err = svc.ReopenDailyLog(ctx, log.ID, "")
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	reopened, err := svc.ReopenDailyLog(ctx, log.ID, "wrong cement amount")
	require.NoError(t, err)
	assert.False(t, reopened.IsLocked)
	assert.True(t, reopened.TotalDailyExpenses.IsZero())
	assert.Len(t, reopened.Expenses, 1)

	_, err = svc.ReopenDailyLog(ctx, log.ID, "already open")
	assert.ErrorAs(t, err, &validationErr)

	// the corrected day consolidates again
	consolidated, err := svc.ConsolidateDailyLog(ctx, log.ID)
	require.NoError(t, err)
	assert.True(t, consolidated.IsLocked)
	assert.True(t, consolidated.TotalDailyExpenses.Equal(dec("3000")))
}

func TestBankRegistry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bank, err := svc.AddBank(ctx, models.BankRequest{
		Name:          "HBL",
		AccountNumber: "0011-22334455",
		Balance:       dec("100000"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, bank.ID)

	_, err = svc.AddBank(ctx, models.BankRequest{Name: "HBL"})
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	updated, err := svc.UpdateBank(ctx, bank.ID, models.BankRequest{
		Name:       "HBL",
		BranchName: "Main Branch",
		Balance:    dec("120000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Main Branch", updated.BranchName)

	banks, err := svc.ListBanks(ctx)
	require.NoError(t, err)
	assert.Len(t, banks, 1)

	require.NoError(t, svc.DeleteBank(ctx, bank.ID))
	err = svc.DeleteBank(ctx, bank.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestMonthlySummary(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	property := createTestProperty(t, svc, "Sale")

	feb := entryReq("Debit", "200", "materials")
	feb.Category = "Construction"
	_, err := svc.AddEntry(ctx, property.ID, feb)
	require.NoError(t, err)

	feb2 := entryReq("Credit", "500", "payment")
	feb2.Category = models.CategorySale
	_, err = svc.AddEntry(ctx, property.ID, feb2)
	require.NoError(t, err)

	mar := entryReq("Debit", "999", "outside the month")
	mar.Date = "2024-03-02"
	_, err = svc.AddEntry(ctx, property.ID, mar)
	require.NoError(t, err)

	summary, err := svc.MonthlySummary(ctx, property.ID, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2024-02", summary.Month)
	assert.True(t, summary.Totals.Balance.Equal(dec("300")))
	require.Len(t, summary.ByCategory, 2)
}
