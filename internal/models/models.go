package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the side of a ledger entry. Debits subtract from the
// balance, credits add to it.
type EntryType string

const (
	EntryDebit  EntryType = "Debit"
	EntryCredit EntryType = "Credit"
)

// PaymentMethod identifies how money moved. Ledger entries use Cash,
// Bank or Cheque; daily expenses use Cash, Bank or Split.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentBank   PaymentMethod = "Bank"
	PaymentCheque PaymentMethod = "Cheque"
	PaymentSplit  PaymentMethod = "Split"
)

// PropertyType gates which tax entry types are offered for a property.
type PropertyType string

const (
	PropertySale PropertyType = "Sale"
	PropertyRent PropertyType = "Rent"
)

// Well-known entry categories.
const (
	CategoryRent            = "Rent"
	CategoryTax             = "Tax"
	CategorySale            = "Sale"
	CategoryAdvance         = "Advance"
	CategoryPartialPayment  = "Partial Payment"
	CategoryFinalSettlement = "Final Settlement"
)

// RentalDetails drives the recurring rent schedule. RentDueDay is a
// day-of-month between 1 and 31; months shorter than the due day clamp
// it to their last day.
type RentalDetails struct {
	MonthlyRentAmount decimal.Decimal `db:"monthly_rent_amount" json:"monthlyRentAmount"`
	RentDueDay        int             `db:"rent_due_day" json:"rentDueDay"`
}

// Property owns its ledger entries. Full property management (documents,
// images, valuation) lives outside this service; only the fields the
// ledger engine needs are kept here.
type Property struct {
	ID           string       `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Type         PropertyType `db:"type" json:"type"`
	PurchaseDate time.Time    `db:"purchase_date" json:"purchaseDate"`
	TenantName   string       `db:"tenant_name" json:"tenantName,omitempty"`
	RentalDetails
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// LedgerEntry is one dated debit or credit against a property. Once
// IsLocked is set the entry is immutable until explicitly unlocked.
type LedgerEntry struct {
	ID               string          `db:"id" json:"id"`
	PropertyID       string          `db:"property_id" json:"propertyId"`
	Date             time.Time       `db:"date" json:"date"`
	Description      string          `db:"description" json:"description"`
	Type             EntryType       `db:"type" json:"type"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
	Category         string          `db:"category" json:"category,omitempty"`
	PaymentMethod    PaymentMethod   `db:"payment_method" json:"paymentMethod,omitempty"`
	Counterparty     string          `db:"counterparty" json:"counterparty,omitempty"`
	LinkedDocumentID string          `db:"linked_document_id" json:"linkedDocumentId,omitempty"`
	LinkedImageID    string          `db:"linked_image_id" json:"linkedImageId,omitempty"`
	Attachment       string          `db:"attachment" json:"attachment,omitempty"`
	Notes            string          `db:"notes" json:"notes,omitempty"`
	IsOpeningBalance bool            `db:"is_opening_balance" json:"isOpeningBalance"`
	IsLocked         bool            `db:"is_locked" json:"isLocked"`
	Version          int64           `db:"version" json:"version"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}

// RentRecord is one month of the derived rent register. It is never
// persisted; the schedule is recomputed from rental details and the
// property's rent credit entries on every read.
type RentRecord struct {
	Year          int             `json:"year"`
	Month         time.Month      `json:"month"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	IsReceived    bool            `json:"isReceived"`
	ReceivedDate  *time.Time      `json:"receivedDate,omitempty"`
	SourceEntryID string          `json:"sourceEntryId,omitempty"`
}

// DailyExpense is one expense captured during a day. Split payments
// carry both a cash and a bank portion against a named bank. Pending
// expenses are recorded for visibility but move no money until settled.
type DailyExpense struct {
	ID            string          `db:"id" json:"id"`
	LogID         string          `db:"log_id" json:"-"`
	PropertyID    string          `db:"property_id" json:"propertyId,omitempty"`
	Description   string          `db:"description" json:"description"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod PaymentMethod   `db:"payment_method" json:"paymentMethod"`
	BankName      string          `db:"bank_name" json:"bankName,omitempty"`
	CashAmount    decimal.Decimal `db:"cash_amount" json:"cashAmount"`
	BankAmount    decimal.Decimal `db:"bank_amount" json:"bankAmount"`
	IsPending     bool            `db:"is_pending" json:"isPending"`
}

// BalanceSheet is a cash figure plus per-bank figures, used for both
// the opening and closing side of a daily log.
type BalanceSheet struct {
	Cash  decimal.Decimal            `json:"cash"`
	Banks map[string]decimal.Decimal `json:"banks"`
}

// DailyLog is one calendar day's opening balances, captured expenses
// and, once consolidated, the computed closing state. A consolidated
// log is locked; reopening it is a separate audited operation.
type DailyLog struct {
	ID                 string                     `db:"id" json:"id"`
	Date               time.Time                  `db:"date" json:"date"`
	OpeningBalances    BalanceSheet               `db:"-" json:"openingBalances"`
	Expenses           []DailyExpense             `db:"-" json:"expenses"`
	ClosingBalances    BalanceSheet               `db:"-" json:"closingBalances"`
	TotalDailyExpenses decimal.Decimal            `db:"total_expenses" json:"totalDailyExpenses"`
	BankUsage          map[string]decimal.Decimal `db:"-" json:"bankUsage"`
	IsLocked           bool                       `db:"is_locked" json:"isLocked"`
	Version            int64                      `db:"version" json:"version"`
	CreatedAt          time.Time                  `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time                  `db:"updated_at" json:"updatedAt"`
}

// Bank is a named account in the process-wide registry, referenced by
// payment forms and the consolidation engine.
type Bank struct {
	ID            string          `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	AccountNumber string          `db:"account_number" json:"accountNumber,omitempty"`
	BranchName    string          `db:"branch_name" json:"branchName,omitempty"`
	AccountType   string          `db:"account_type" json:"accountType,omitempty"`
	Balance       decimal.Decimal `db:"balance" json:"balance"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}
