package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// Totals is the derived balance position of an entry set.
type Totals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// ComputeTotals derives debit, credit and net balance from the entries
// alone. There is no cached running total anywhere; every edit or
// delete is reflected simply by recomputing.
func ComputeTotals(entries []models.LedgerEntry) Totals {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case models.EntryDebit:
			totalDebit = totalDebit.Add(e.Amount)
		case models.EntryCredit:
			totalCredit = totalCredit.Add(e.Amount)
		}
	}
	return Totals{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Balance:     totalCredit.Sub(totalDebit),
	}
}

// Display renders the balance with the conventional side label: the
// absolute value followed by "(Credit)" when the ledger is in credit
// and "(Debit)" when in debit. A zero balance reads as credit.
func (t Totals) Display() string {
	side := "Credit"
	if t.Balance.IsNegative() {
		side = "Debit"
	}
	return fmt.Sprintf("%s (%s)", t.Balance.Abs(), side)
}
