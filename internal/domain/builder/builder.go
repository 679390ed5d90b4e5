// Package builder accumulates the lines of a budget before it is saved.
//
// A Builder is request scoped: it is created from the current catalog,
// receives the user's edits in order and produces a Budget with materialized
// totals. Nothing is persisted here.
package builder

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"presubuild/internal/domain/entities"
)

var (
	ErrValidation        = errors.New("budget requires a client name and at least one labor item or material")
	ErrIndexOutOfRange   = errors.New("line index out of range")
	ErrUnknownField      = errors.New("unknown line field")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidUnitPrice  = errors.New("unit price must not be negative")
	ErrInvalidMaterial   = errors.New("material requires a name and a quantity")
	ErrInvalidPercentage = errors.New("percentage must not be negative")
)

// LineField names an editable attribute of a labor line.
type LineField string

const (
	FieldQuantity  LineField = "quantity"
	FieldUnitPrice LineField = "unitPrice"
)

// MaterialForm is the raw user input for an ad hoc material.
type MaterialForm struct {
	Name      string
	Quantity  string
	Unit      string
	UnitPrice string
}

// IDFunc generates the id of a new budget.
type IDFunc func(now time.Time) string

// NewBudgetID formats ids as OBRA- followed by the last five digits of the
// Unix millisecond clock.
func NewBudgetID(now time.Time) string {
	return fmt.Sprintf("OBRA-%05d", now.UnixMilli()%100000)
}

type Builder struct {
	catalog map[string]entities.CatalogItem

	editing   bool
	id        string
	issueDate time.Time
	status    entities.BudgetStatus

	client                  entities.ClientInfo
	laborItems              []entities.LineItem
	materials               []entities.RequiredMaterial
	materialsIncluded       bool
	clientSuppliesMaterials bool
	taxRatePercent          float64
	discountPercent         float64
	manualAdjustment        float64
	validityDays            int

	newID IDFunc
}

// New opens a builder in create mode. defaultTaxPercent comes from the
// business settings.
func New(catalog []entities.CatalogItem, defaultTaxPercent float64) *Builder {
	b := &Builder{
		catalog:           make(map[string]entities.CatalogItem, len(catalog)),
		materialsIncluded: true,
		taxRatePercent:    defaultTaxPercent,
		validityDays:      entities.DefaultValidityDays,
		status:            entities.BudgetStatusPendiente,
		newID:             NewBudgetID,
	}
	for _, it := range catalog {
		b.catalog[it.ID] = it
	}
	return b
}

// FromBudget opens a builder in edit mode: the saved budget keeps its id,
// issue date and status. Existing lines are kept as snapshots even if the
// catalog item changed or no longer exists.
func FromBudget(existing entities.Budget, catalog []entities.CatalogItem) *Builder {
	b := New(catalog, existing.TaxRatePercent)
	b.editing = true
	b.id = existing.ID
	b.issueDate = existing.IssueDate
	b.status = existing.Status
	b.client = existing.Client
	b.laborItems = append([]entities.LineItem(nil), existing.LaborItems...)
	b.materials = append([]entities.RequiredMaterial(nil), existing.Materials...)
	b.materialsIncluded = existing.MaterialsIncluded
	b.clientSuppliesMaterials = existing.ClientSuppliesMaterials
	b.discountPercent = existing.DiscountPercent
	b.manualAdjustment = existing.ManualAdjustment
	if !existing.IssueDate.IsZero() && !existing.ValidUntil.IsZero() {
		b.validityDays = int(existing.ValidUntil.Sub(existing.IssueDate).Hours() / 24)
	}
	return b
}

// WithIDFunc replaces the id generator used in create mode.
func (b *Builder) WithIDFunc(f IDFunc) *Builder {
	b.newID = f
	return b
}

func (b *Builder) Editing() bool { return b.editing }

// ResetLines drops every labor line and material. Used when an edit request
// carries the full new line set.
func (b *Builder) ResetLines() {
	b.laborItems = nil
	b.materials = nil
}

// AddLaborItem appends a snapshot of a catalog item. It reports false and
// leaves the builder untouched when quantity is not positive or the item is
// not in the catalog.
func (b *Builder) AddLaborItem(catalogItemID string, quantity float64) bool {
	if quantity <= 0 {
		return false
	}
	item, ok := b.catalog[catalogItemID]
	if !ok {
		return false
	}
	line := entities.LineItem{
		CatalogItemID: item.ID,
		Name:          item.Name,
		UnitPrice:     item.UnitPrice,
		Unit:          item.Unit,
		Quantity:      quantity,
	}
	line.Recalculate()
	b.laborItems = append(b.laborItems, line)
	return true
}

// RestoreLaborItem appends a line that was snapshotted earlier, as carried by
// an edit request. The catalog is not consulted.
func (b *Builder) RestoreLaborItem(line entities.LineItem) error {
	if line.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if line.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	line.Recalculate()
	b.laborItems = append(b.laborItems, line)
	return nil
}

// EditLaborItem changes one field of the line at index and recomputes that
// line's total only.
func (b *Builder) EditLaborItem(index int, field LineField, value float64) error {
	if index < 0 || index >= len(b.laborItems) {
		return ErrIndexOutOfRange
	}
	line := b.laborItems[index]
	switch field {
	case FieldQuantity:
		if value <= 0 {
			return ErrInvalidQuantity
		}
		line.Quantity = value
	case FieldUnitPrice:
		if value < 0 {
			return ErrInvalidUnitPrice
		}
		line.UnitPrice = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	line.Recalculate()
	b.laborItems[index] = line
	return nil
}

// RemoveLaborItem removes by position. Duplicated catalog items are only
// told apart by their index.
func (b *Builder) RemoveLaborItem(index int) error {
	if index < 0 || index >= len(b.laborItems) {
		return ErrIndexOutOfRange
	}
	b.laborItems = append(b.laborItems[:index:index], b.laborItems[index+1:]...)
	return nil
}

// AddMaterial appends an ad hoc material. An unparseable price counts as 0.
func (b *Builder) AddMaterial(form MaterialForm) error {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return ErrInvalidMaterial
	}
	qty, ok := parseNumber(form.Quantity)
	if !ok || qty <= 0 {
		return ErrInvalidMaterial
	}
	price, _ := parseNumber(form.UnitPrice)

	m := entities.RequiredMaterial{
		Name:      name,
		Quantity:  qty,
		Unit:      strings.TrimSpace(form.Unit),
		UnitPrice: price,
	}
	m.Recalculate()
	b.materials = append(b.materials, m)
	return nil
}

func (b *Builder) RemoveMaterial(index int) error {
	if index < 0 || index >= len(b.materials) {
		return ErrIndexOutOfRange
	}
	b.materials = append(b.materials[:index:index], b.materials[index+1:]...)
	return nil
}

func (b *Builder) SetClient(c entities.ClientInfo) { b.client = c }

func (b *Builder) SetMaterialsIncluded(v bool) { b.materialsIncluded = v }

func (b *Builder) SetClientSuppliesMaterials(v bool) { b.clientSuppliesMaterials = v }

func (b *Builder) SetManualAdjustment(v float64) { b.manualAdjustment = v }

func (b *Builder) SetTaxRatePercent(v float64) error {
	if v < 0 {
		return ErrInvalidPercentage
	}
	b.taxRatePercent = v
	return nil
}

func (b *Builder) SetDiscountPercent(v float64) error {
	if v < 0 {
		return ErrInvalidPercentage
	}
	b.discountPercent = v
	return nil
}

// SetValidityDays sets the validity window. Negative values count as 0.
func (b *Builder) SetValidityDays(days int) {
	if days < 0 {
		days = 0
	}
	b.validityDays = days
}

func (b *Builder) LaborItems() []entities.LineItem {
	return append([]entities.LineItem(nil), b.laborItems...)
}

func (b *Builder) Materials() []entities.RequiredMaterial {
	return append([]entities.RequiredMaterial(nil), b.materials...)
}

// Totals is recomputed on every call from the current lines and rates.
func (b *Builder) Totals() entities.Totals {
	return entities.ComputeTotals(b.laborItems, b.materials, b.materialsIncluded, b.discountPercent, b.taxRatePercent, b.manualAdjustment)
}

// Validate checks the save preconditions without building anything.
func (b *Builder) Validate() error {
	if strings.TrimSpace(b.client.Name) == "" {
		return ErrValidation
	}
	if len(b.laborItems) == 0 && len(b.materials) == 0 {
		return ErrValidation
	}
	return nil
}

// Build validates and produces the budget to persist. In create mode it gets
// a fresh id, issue date and pending status; in edit mode the original id,
// issue date and status are kept and only the totals are recomputed.
func (b *Builder) Build(now time.Time) (entities.Budget, error) {
	if err := b.Validate(); err != nil {
		return entities.Budget{}, err
	}

	now = now.UTC()
	id, issueDate, status := b.id, b.issueDate, b.status
	if !b.editing {
		id = b.newID(now)
		issueDate = now
		status = entities.BudgetStatusPendiente
	}
	if issueDate.IsZero() {
		issueDate = now
	}

	client := b.client
	client.Name = strings.TrimSpace(client.Name)

	budget := entities.Budget{
		ID:                      id,
		IssueDate:               issueDate,
		ValidUntil:              issueDate.AddDate(0, 0, b.validityDays),
		Client:                  client,
		LaborItems:              b.LaborItems(),
		Materials:               b.Materials(),
		MaterialsIncluded:       b.materialsIncluded,
		ClientSuppliesMaterials: b.clientSuppliesMaterials,
		TaxRatePercent:          b.taxRatePercent,
		DiscountPercent:         b.discountPercent,
		ManualAdjustment:        b.manualAdjustment,
		Status:                  status,
	}
	if budget.LaborItems == nil {
		budget.LaborItems = []entities.LineItem{}
	}
	if budget.Materials == nil {
		budget.Materials = []entities.RequiredMaterial{}
	}
	budget.ApplyTotals(b.Totals())
	return budget, nil
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
