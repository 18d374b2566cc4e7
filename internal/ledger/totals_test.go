package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debit(amount string) models.LedgerEntry {
	return models.LedgerEntry{Type: models.EntryDebit, Amount: dec(amount), Description: "debit"}
}

func credit(amount string) models.LedgerEntry {
	return models.LedgerEntry{Type: models.EntryCredit, Amount: dec(amount), Description: "credit"}
}

func TestComputeTotals(t *testing.T) {
	entries := []models.LedgerEntry{debit("200"), credit("500")}

	totals := ComputeTotals(entries)

	assert.True(t, totals.TotalDebit.Equal(dec("200")), "debit: %s", totals.TotalDebit)
	assert.True(t, totals.TotalCredit.Equal(dec("500")), "credit: %s", totals.TotalCredit)
	assert.True(t, totals.Balance.Equal(dec("300")), "balance: %s", totals.Balance)
	assert.Equal(t, "300 (Credit)", totals.Display())
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.TotalDebit.IsZero())
	assert.True(t, totals.TotalCredit.IsZero())
	assert.True(t, totals.Balance.IsZero())
	assert.Equal(t, "0 (Credit)", totals.Display())
}

func TestComputeTotalsBalanceIdentity(t *testing.T) {
	entries := []models.LedgerEntry{
		debit("120.50"), credit("99.99"), debit("0.01"), credit("1200"), debit("43.25"),
	}

	totals := ComputeTotals(entries)
	assert.True(t, totals.Balance.Equal(totals.TotalCredit.Sub(totals.TotalDebit)))
}

func TestComputeTotalsOrderInvariant(t *testing.T) {
	entries := []models.LedgerEntry{debit("10"), credit("25.75"), debit("3.33"), credit("7")}
	reversed := []models.LedgerEntry{entries[3], entries[2], entries[1], entries[0]}

	a := ComputeTotals(entries)
	b := ComputeTotals(reversed)

	assert.True(t, a.TotalDebit.Equal(b.TotalDebit))
	assert.True(t, a.TotalCredit.Equal(b.TotalCredit))
	assert.True(t, a.Balance.Equal(b.Balance))
}

func TestTotalsDisplayDebitSide(t *testing.T) {
	totals := ComputeTotals([]models.LedgerEntry{debit("800"), credit("500")})

	assert.True(t, totals.Balance.Equal(dec("-300")))
	// display shows the absolute value with the side label
	assert.Equal(t, "300 (Debit)", totals.Display())
}
