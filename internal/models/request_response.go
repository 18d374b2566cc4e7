package models

import "github.com/shopspring/decimal"

// Request models
type CreatePropertyRequest struct {
	Name              string          `json:"name" binding:"required"`
	Type              string          `json:"type" binding:"required,oneof=Sale Rent"`
	PurchaseDate      string          `json:"purchaseDate" binding:"required"`
	TenantName        string          `json:"tenantName"`
	MonthlyRentAmount decimal.Decimal `json:"monthlyRentAmount"`
	RentDueDay        int             `json:"rentDueDay"`
}

type EntryRequest struct {
	Date             string          `json:"date"`
	Description      string          `json:"description" binding:"required"`
	Type             string          `json:"type" binding:"required,oneof=Debit Credit"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Category         string          `json:"category"`
	PaymentMethod    string          `json:"paymentMethod" binding:"omitempty,oneof=Cash Bank Cheque"`
	Counterparty     string          `json:"counterparty"`
	LinkedDocumentID string          `json:"linkedDocumentId"`
	LinkedImageID    string          `json:"linkedImageId"`
	Attachment       string          `json:"attachment"`
	Notes            string          `json:"notes"`
	IsOpeningBalance bool            `json:"isOpeningBalance"`
	// ExpectedVersion guards updates against concurrent edits. Zero
	// means "no check" (single-writer deployments).
	ExpectedVersion int64 `json:"expectedVersion"`
}

type MarkRentReceivedRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

type SaleEntryRequest struct {
	Stage        string          `json:"stage" binding:"required,oneof=Sale Advance 'Partial Payment' 'Final Settlement'"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Date         string          `json:"date"`
	Counterparty string          `json:"counterparty"`
	Notes        string          `json:"notes"`
}

type TaxEntryRequest struct {
	TaxType       string           `json:"taxType" binding:"required"`
	Amount        decimal.Decimal  `json:"amount" binding:"required"`
	Date          string           `json:"date"`
	TaxRate       *decimal.Decimal `json:"taxRate"`
	ChallanNumber string           `json:"challanNumber"`
	Notes         string           `json:"notes"`
}

type CreateDailyLogRequest struct {
	Date         string                     `json:"date" binding:"required"`
	OpeningCash  decimal.Decimal            `json:"openingCash"`
	OpeningBanks map[string]decimal.Decimal `json:"openingBanks"`
}

type DailyExpenseRequest struct {
	Description   string          `json:"description" binding:"required"`
	PropertyID    string          `json:"propertyId"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=Cash Bank Split"`
	BankName      string          `json:"bankName"`
	CashAmount    decimal.Decimal `json:"cashAmount"`
	BankAmount    decimal.Decimal `json:"bankAmount"`
	IsPending     bool            `json:"isPending"`
}

type ReopenDailyLogRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type BankRequest struct {
	Name          string          `json:"name" binding:"required"`
	AccountNumber string          `json:"accountNumber"`
	BranchName    string          `json:"branchName"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	Notes         string          `json:"notes"`
}

// Response models
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MarkRentResponse struct {
	Status          string       `json:"status"`
	AlreadyRecorded bool         `json:"alreadyRecorded"`
	Entry           *LedgerEntry `json:"entry,omitempty"`
}
