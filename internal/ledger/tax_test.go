package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

func TestComposeTaxDescription(t *testing.T) {
	rate := dec("5.5")

	assert.Equal(t, "Property Sale Tax (5.5%) - Challan: CH-100",
		ComposeTaxDescription("Property Sale Tax", &rate, "CH-100"))

	// each clause is independently omittable
	assert.Equal(t, "Property Sale Tax (5.5%)",
		ComposeTaxDescription("Property Sale Tax", &rate, ""))
	assert.Equal(t, "Property Sale Tax - Challan: CH-100",
		ComposeTaxDescription("Property Sale Tax", nil, "CH-100"))
	assert.Equal(t, "Property Sale Tax",
		ComposeTaxDescription("Property Sale Tax", nil, ""))
}

func TestComposeTaxDescriptionWholeRate(t *testing.T) {
	rate := dec("15")
	assert.Equal(t, "Rental Income Tax (15%)",
		ComposeTaxDescription("Rental Income Tax", &rate, ""))
}

func TestAvailableTaxTypes(t *testing.T) {
	assert.Equal(t, []string{TaxPropertySale, TaxAdvanceWitholding},
		AvailableTaxTypes(models.PropertySale))
	assert.Equal(t, []string{TaxRentalIncome, TaxAdvanceWitholding},
		AvailableTaxTypes(models.PropertyRent))
}

func TestTaxTypeAllowed(t *testing.T) {
	assert.True(t, TaxTypeAllowed(models.PropertySale, TaxPropertySale))
	assert.True(t, TaxTypeAllowed(models.PropertySale, TaxAdvanceWitholding))
	assert.False(t, TaxTypeAllowed(models.PropertySale, TaxRentalIncome))

	assert.True(t, TaxTypeAllowed(models.PropertyRent, TaxRentalIncome))
	assert.True(t, TaxTypeAllowed(models.PropertyRent, TaxAdvanceWitholding))
	assert.False(t, TaxTypeAllowed(models.PropertyRent, TaxPropertySale))
}
