package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// Tax entry types. Which ones a property offers depends on whether it
// was bought to sell or to rent; advance/withholding tax applies to both.
const (
	TaxPropertySale      = "Property Sale Tax"
	TaxRentalIncome      = "Rental Income Tax"
	TaxAdvanceWitholding = "Advance / Withholding Tax"
)

// AvailableTaxTypes returns the tax entry types offered for a property
// type.
func AvailableTaxTypes(pt models.PropertyType) []string {
	switch pt {
	case models.PropertySale:
		return []string{TaxPropertySale, TaxAdvanceWitholding}
	case models.PropertyRent:
		return []string{TaxRentalIncome, TaxAdvanceWitholding}
	default:
		return []string{TaxAdvanceWitholding}
	}
}

// TaxTypeAllowed reports whether taxType may be recorded against a
// property of the given type.
func TaxTypeAllowed(pt models.PropertyType, taxType string) bool {
	for _, t := range AvailableTaxTypes(pt) {
		if t == taxType {
			return true
		}
	}
	return false
}

// ComposeTaxDescription builds the synthesized description for a tax
// entry: "<desc> (<rate>%) - Challan: <num>". The rate and challan
// clauses are independent; either may be omitted without affecting the
// other. The composition is deterministic so stored descriptions can be
// compared byte-for-byte.
func ComposeTaxDescription(desc string, rate *decimal.Decimal, challan string) string {
	s := desc
	if rate != nil {
		s = fmt.Sprintf("%s (%s%%)", s, rate)
	}
	if challan != "" {
		s = fmt.Sprintf("%s - Challan: %s", s, challan)
	}
	return s
}
