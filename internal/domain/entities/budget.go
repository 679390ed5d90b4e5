package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (presupuesto).
//
// Status is the only field with its own write path: it changes without
// touching any other attribute of the stored budget.
type BudgetStatus string

const (
	BudgetStatusPendiente BudgetStatus = "pendiente"
	BudgetStatusAceptado  BudgetStatus = "aceptado"
	BudgetStatusRechazado BudgetStatus = "rechazado"
)

func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusPendiente, BudgetStatusAceptado, BudgetStatusRechazado:
		return true
	}
	return false
}

// DefaultValidityDays is how long a new budget stays valid unless overridden.
const DefaultValidityDays = 15

// LineItem is a labor line snapshotted from a CatalogItem when it was added.
type LineItem struct {
	CatalogItemID string   `json:"catalogItemId"`
	Name          string   `json:"name"`
	UnitPrice     float64  `json:"unitPrice"`
	Unit          UnitType `json:"unit"`
	Quantity      float64  `json:"quantity"`
	LineTotal     float64  `json:"lineTotal"`
}

// Recalculate refreshes the cached LineTotal from price and quantity.
func (l *LineItem) Recalculate() {
	l.LineTotal = l.UnitPrice * l.Quantity
}

// RequiredMaterial is a free-form material entry not tied to the catalog.
type RequiredMaterial struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

func (m *RequiredMaterial) Recalculate() {
	m.LineTotal = m.UnitPrice * m.Quantity
}

type ClientInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
}

// Budget is the aggregate root persisted by the budget store.
//
// LaborSubtotal, MaterialsSubtotal and Total are materialized once when the
// budget is saved and are not recomputed on read: later catalog price changes
// must not alter a quote already issued.
type Budget struct {
	ID         string     `json:"id"`
	IssueDate  time.Time  `json:"issueDate"`
	ValidUntil time.Time  `json:"validUntil"`
	Client     ClientInfo `json:"client"`

	LaborItems []LineItem         `json:"laborItems"`
	Materials  []RequiredMaterial `json:"materials"`

	MaterialsIncluded       bool `json:"materialsIncluded"`
	ClientSuppliesMaterials bool `json:"clientSuppliesMaterials"`

	TaxRatePercent   float64 `json:"taxRatePercent"`
	DiscountPercent  float64 `json:"discountPercent"`
	ManualAdjustment float64 `json:"manualAdjustment"`

	LaborSubtotal     float64 `json:"laborSubtotal"`
	MaterialsSubtotal float64 `json:"materialsSubtotal"`
	Total             float64 `json:"total"`

	Status BudgetStatus `json:"status"`
}

// ApplyTotals stores the computed totals on the budget.
func (b *Budget) ApplyTotals(t Totals) {
	b.LaborSubtotal = t.LaborSubtotal
	b.MaterialsSubtotal = t.MaterialsSubtotal
	b.Total = t.Total
}

// IsExpired reports whether the validity window ended before now.
func (b Budget) IsExpired(now time.Time) bool {
	return !b.ValidUntil.IsZero() && b.ValidUntil.Before(now)
}
