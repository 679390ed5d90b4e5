package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	labor := []LineItem{{UnitPrice: 1000, Quantity: 2, LineTotal: 2000}}
	materials := []RequiredMaterial{{UnitPrice: 500, Quantity: 3, LineTotal: 1500}}

	tests := []struct {
		name      string
		included  bool
		discount  float64
		tax       float64
		manual    float64
		wantGen   float64
		wantTotal float64
	}{
		{name: "materials included", included: true, discount: 10, tax: 21, wantGen: 3500, wantTotal: 3811.5},
		{name: "materials excluded", included: false, discount: 10, tax: 21, wantGen: 2000, wantTotal: 2178},
		{name: "manual adjustment", included: true, discount: 0, tax: 0, manual: 500, wantGen: 3500, wantTotal: 3000},
		{name: "no rates", included: true, wantGen: 3500, wantTotal: 3500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(labor, materials, tt.included, tt.discount, tt.tax, tt.manual)
			assert.InDelta(t, 2000, got.LaborSubtotal, 1e-9)
			assert.InDelta(t, 1500, got.MaterialsSubtotal, 1e-9, "materials subtotal is reported even when excluded")
			assert.InDelta(t, tt.wantGen, got.GeneralSubtotal, 1e-9)
			assert.InDelta(t, tt.wantTotal, got.Total, 1e-9)

			formula := (got.LaborSubtotal+materialsIf(tt.included, got.MaterialsSubtotal))*(1-tt.discount/100)*(1+tt.tax/100) - tt.manual
			assert.InDelta(t, formula, got.Total, 1e-9)
		})
	}
}

func TestComputeTotals_DiscountAndTaxAmounts(t *testing.T) {
	got := ComputeTotals(
		[]LineItem{{LineTotal: 2000}},
		[]RequiredMaterial{{LineTotal: 1500}},
		true, 10, 21, 0,
	)
	assert.InDelta(t, 350, got.DiscountAmount, 1e-9)
	assert.InDelta(t, 661.5, got.TaxAmount, 1e-9)
}

func TestComputeTotals_MatchesFormulaForManyInputs(t *testing.T) {
	for i := 1; i <= 25; i++ {
		labor := []LineItem{{LineTotal: float64(i) * 137.25}, {LineTotal: float64(i) * 3.5}}
		materials := []RequiredMaterial{{LineTotal: float64(i) * 41.1}}
		discount := float64(i % 30)
		tax := float64((i * 7) % 27)
		manual := float64(i)
		for _, included := range []bool{true, false} {
			got := ComputeTotals(labor, materials, included, discount, tax, manual)
			base := labor[0].LineTotal + labor[1].LineTotal + materialsIf(included, materials[0].LineTotal)
			want := base*(1-discount/100)*(1+tax/100) - manual
			if math.Abs(want-got.Total) > 1e-6 {
				t.Fatalf("i=%d included=%v: expected %v got %v", i, included, want, got.Total)
			}
		}
	}
}

func TestBudget_ApplyTotalsAndBreakdown(t *testing.T) {
	b := Budget{
		LaborItems:        []LineItem{{LineTotal: 2000}},
		Materials:         []RequiredMaterial{{LineTotal: 1500}},
		MaterialsIncluded: true,
		DiscountPercent:   10,
		TaxRatePercent:    21,
	}
	b.ApplyTotals(ComputeTotals(b.LaborItems, b.Materials, b.MaterialsIncluded, b.DiscountPercent, b.TaxRatePercent, b.ManualAdjustment))
	assert.InDelta(t, 3811.5, b.Total, 1e-9)

	// Editing a line after saving does not move the stored total.
	b.LaborItems[0].LineTotal = 9999
	br := b.Breakdown()
	assert.InDelta(t, 3811.5, br.Total, 1e-9)
	assert.InDelta(t, 3500, br.GeneralSubtotal, 1e-9)
	assert.InDelta(t, 350, br.DiscountAmount, 1e-9)
	assert.InDelta(t, 661.5, br.TaxAmount, 1e-9)
}

func TestUnitTypeAndStatus(t *testing.T) {
	assert.True(t, UnitSquareMeter.IsValid())
	assert.True(t, UnitSheet.IsValid())
	assert.False(t, UnitType("pie").IsValid())
	assert.Len(t, UnitTypes(), 10)

	assert.True(t, BudgetStatusAceptado.IsValid())
	assert.False(t, BudgetStatus("cancelado").IsValid())
}

func materialsIf(included bool, v float64) float64 {
	if included {
		return v
	}
	return 0
}
