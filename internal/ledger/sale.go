package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// saleStageDescriptions maps a sale stage to the fixed description its
// credit entry is written with.
var saleStageDescriptions = map[string]string{
	models.CategorySale:            "Sale proceeds received",
	models.CategoryAdvance:         "Advance payment received",
	models.CategoryPartialPayment:  "Partial payment received",
	models.CategoryFinalSettlement: "Final settlement received",
}

// SaleStageDescription returns the fixed description for a sale stage
// and whether the stage is a recognized one.
func SaleStageDescription(stage string) (string, bool) {
	desc, ok := saleStageDescriptions[stage]
	return desc, ok
}

// IsSaleCategory reports whether a category belongs to the sale
// accounting sub-ledger.
func IsSaleCategory(category string) bool {
	_, ok := saleStageDescriptions[category]
	return ok
}

// SaleSummary aggregates the sale accounting view of an entry set.
type SaleSummary struct {
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	Total      decimal.Decimal            `json:"total"`
}

// SummarizeSales filters the credit entries belonging to the sale
// sub-ledger and totals them per category.
func SummarizeSales(entries []models.LedgerEntry) SaleSummary {
	summary := SaleSummary{
		ByCategory: make(map[string]decimal.Decimal),
		Total:      decimal.Zero,
	}
	for _, e := range entries {
		if e.Type != models.EntryCredit || !IsSaleCategory(e.Category) {
			continue
		}
		summary.ByCategory[e.Category] = summary.ByCategory[e.Category].Add(e.Amount)
		summary.Total = summary.Total.Add(e.Amount)
	}
	return summary
}
