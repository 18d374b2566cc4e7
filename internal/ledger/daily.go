package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// ConsolidateDay computes a day's closing position and returns a new,
// locked log. The input is never mutated, so re-running consolidation
// over the same log always produces the same result.
//
// The headline TotalDailyExpenses counts every captured expense,
// pending ones included. Bank usage and cash spent count only settled
// expenses: pending money is visible but has not moved yet. Closing
// balances may go negative; overspending is something to report, not a
// failure. An expense that draws on a bank absent from the opening
// balances is a hard error rather than a silent zero.
func ConsolidateDay(log models.DailyLog) (models.DailyLog, error) {
	out := log
	out.Expenses = append([]models.DailyExpense(nil), log.Expenses...)
	out.OpeningBalances = copySheet(log.OpeningBalances)

	total := decimal.Zero
	cashSpent := decimal.Zero
	bankUsage := make(map[string]decimal.Decimal)

	for _, x := range out.Expenses {
		total = total.Add(x.Amount)
		if x.IsPending {
			continue
		}
		switch x.PaymentMethod {
		case models.PaymentCash:
			cashSpent = cashSpent.Add(x.Amount)
		case models.PaymentBank:
			if _, ok := out.OpeningBalances.Banks[x.BankName]; !ok {
				return models.DailyLog{}, &UnknownBankError{Name: x.BankName}
			}
			bankUsage[x.BankName] = bankUsage[x.BankName].Add(x.Amount)
		case models.PaymentSplit:
			if _, ok := out.OpeningBalances.Banks[x.BankName]; !ok {
				return models.DailyLog{}, &UnknownBankError{Name: x.BankName}
			}
			cashSpent = cashSpent.Add(x.CashAmount)
			bankUsage[x.BankName] = bankUsage[x.BankName].Add(x.BankAmount)
		}
	}

	closing := models.BalanceSheet{
		Cash:  out.OpeningBalances.Cash.Sub(cashSpent),
		Banks: make(map[string]decimal.Decimal, len(out.OpeningBalances.Banks)),
	}
	// banks never touched by an expense keep their opening value
	for name, opening := range out.OpeningBalances.Banks {
		closing.Banks[name] = opening.Sub(bankUsage[name])
	}

	out.TotalDailyExpenses = total
	out.BankUsage = bankUsage
	out.ClosingBalances = closing
	out.IsLocked = true
	return out, nil
}

func copySheet(s models.BalanceSheet) models.BalanceSheet {
	out := models.BalanceSheet{Cash: s.Cash, Banks: make(map[string]decimal.Decimal, len(s.Banks))}
	for name, amount := range s.Banks {
		out.Banks[name] = amount
	}
	return out
}
