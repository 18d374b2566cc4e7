package ledger

import (
	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// ValidateEntry enforces the store-boundary invariants on a ledger
// entry, keeping malformed records out of aggregation regardless of
// which form produced them.
func ValidateEntry(e models.LedgerEntry) error {
	if e.Type != models.EntryDebit && e.Type != models.EntryCredit {
		return invalidf("type", "must be %s or %s", models.EntryDebit, models.EntryCredit)
	}
	if !e.Amount.IsPositive() {
		return invalidf("amount", "must be greater than zero, got %s", e.Amount)
	}
	if e.Description == "" {
		return invalidf("description", "must not be empty")
	}
	switch e.PaymentMethod {
	case "", models.PaymentCash, models.PaymentBank, models.PaymentCheque:
	default:
		return invalidf("paymentMethod", "unsupported method %q", e.PaymentMethod)
	}
	return nil
}

// ValidateExpense enforces the capture-boundary invariants on a daily
// expense. Bank and Split payments need a bank name; Split payments
// need both portions, and they must add up to the full amount.
func ValidateExpense(x models.DailyExpense) error {
	if !x.Amount.IsPositive() {
		return invalidf("amount", "must be greater than zero, got %s", x.Amount)
	}
	if x.Description == "" {
		return invalidf("description", "must not be empty")
	}
	switch x.PaymentMethod {
	case models.PaymentCash:
	case models.PaymentBank:
		if x.BankName == "" {
			return invalidf("bankName", "required for bank payments")
		}
	case models.PaymentSplit:
		if x.BankName == "" {
			return invalidf("bankName", "required for split payments")
		}
		if x.CashAmount.IsNegative() || x.BankAmount.IsNegative() {
			return invalidf("cashAmount", "split portions must not be negative")
		}
		if !x.CashAmount.Add(x.BankAmount).Equal(x.Amount) {
			return invalidf("amount", "cash portion %s plus bank portion %s must equal %s",
				x.CashAmount, x.BankAmount, x.Amount)
		}
	default:
		return invalidf("paymentMethod", "unsupported method %q", x.PaymentMethod)
	}
	return nil
}
