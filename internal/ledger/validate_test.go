package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

func TestValidateEntry(t *testing.T) {
	valid := models.LedgerEntry{
		Type:        models.EntryDebit,
		Amount:      dec("100"),
		Description: "cement purchase",
	}
	assert.NoError(t, ValidateEntry(valid))

	var validationErr *ValidationError

	bad := valid
	bad.Type = "Transfer"
	err := ValidateEntry(bad)
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type", validationErr.Field)

	bad = valid
	bad.Amount = dec("0")
	assert.ErrorAs(t, ValidateEntry(bad), &validationErr)

	bad = valid
	bad.Amount = dec("-50")
	assert.ErrorAs(t, ValidateEntry(bad), &validationErr)

	bad = valid
	bad.Description = ""
	assert.ErrorAs(t, ValidateEntry(bad), &validationErr)

	bad = valid
	bad.PaymentMethod = models.PaymentSplit
	assert.ErrorAs(t, ValidateEntry(bad), &validationErr)

	ok := valid
	ok.PaymentMethod = models.PaymentCheque
	assert.NoError(t, ValidateEntry(ok))
}

func TestValidateExpense(t *testing.T) {
	assert.NoError(t, ValidateExpense(models.DailyExpense{
		Description:   "fuel",
		Amount:        dec("500"),
		PaymentMethod: models.PaymentCash,
	}))

	var validationErr *ValidationError

	err := ValidateExpense(models.DailyExpense{
		Description:   "steel",
		Amount:        dec("500"),
		PaymentMethod: models.PaymentBank,
	})
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "bankName", validationErr.Field)

	assert.NoError(t, ValidateExpense(models.DailyExpense{
		Description:   "steel",
		Amount:        dec("500"),
		PaymentMethod: models.PaymentBank,
		BankName:      "HBL",
	}))
}

func TestValidateExpenseSplit(t *testing.T) {
	valid := models.DailyExpense{
		Description:   "labour",
		Amount:        dec("1000"),
		PaymentMethod: models.PaymentSplit,
		BankName:      "HBL",
		CashAmount:    dec("400"),
		BankAmount:    dec("600"),
	}
	assert.NoError(t, ValidateExpense(valid))

	var validationErr *ValidationError

	bad := valid
	bad.BankName = ""
	assert.ErrorAs(t, ValidateExpense(bad), &validationErr)

	bad = valid
	bad.CashAmount = dec("-1")
	bad.BankAmount = dec("1001")
	assert.ErrorAs(t, ValidateExpense(bad), &validationErr)

	// portions must reconcile with the headline amount
	bad = valid
	bad.BankAmount = dec("500")
	err := ValidateExpense(bad)
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}
