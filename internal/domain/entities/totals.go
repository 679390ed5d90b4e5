package entities

// Totals is the derived money breakdown of a budget.
type Totals struct {
	LaborSubtotal     float64 `json:"laborSubtotal"`
	MaterialsSubtotal float64 `json:"materialsSubtotal"`
	GeneralSubtotal   float64 `json:"generalSubtotal"`
	DiscountAmount    float64 `json:"discountAmount"`
	TaxAmount         float64 `json:"taxAmount"`
	Total             float64 `json:"total"`
}

// ComputeTotals derives the breakdown of a set of lines.
//
//	total = (labor + materials if included) * (1 - discount/100) * (1 + tax/100) - manualAdjustment
//
// MaterialsSubtotal is always reported, even when materials are excluded from
// the total.
func ComputeTotals(labor []LineItem, materials []RequiredMaterial, materialsIncluded bool, discountPercent, taxRatePercent, manualAdjustment float64) Totals {
	var t Totals
	for _, l := range labor {
		t.LaborSubtotal += l.LineTotal
	}
	for _, m := range materials {
		t.MaterialsSubtotal += m.LineTotal
	}

	t.GeneralSubtotal = t.LaborSubtotal
	if materialsIncluded {
		t.GeneralSubtotal += t.MaterialsSubtotal
	}

	t.DiscountAmount = t.GeneralSubtotal * discountPercent / 100
	afterDiscount := t.GeneralSubtotal - t.DiscountAmount
	t.TaxAmount = afterDiscount * taxRatePercent / 100
	t.Total = afterDiscount + t.TaxAmount - manualAdjustment
	return t
}

// Breakdown rebuilds the display breakdown from the materialized subtotals.
// Total is the stored value, never a recomputation.
func (b Budget) Breakdown() Totals {
	t := Totals{
		LaborSubtotal:     b.LaborSubtotal,
		MaterialsSubtotal: b.MaterialsSubtotal,
		GeneralSubtotal:   b.LaborSubtotal,
		Total:             b.Total,
	}
	if b.MaterialsIncluded {
		t.GeneralSubtotal += b.MaterialsSubtotal
	}
	t.DiscountAmount = t.GeneralSubtotal * b.DiscountPercent / 100
	t.TaxAmount = (t.GeneralSubtotal - t.DiscountAmount) * b.TaxRatePercent / 100
	return t
}
