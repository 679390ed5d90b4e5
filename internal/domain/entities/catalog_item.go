package entities

// DefaultCategory is assigned to catalog items saved without a category.
const DefaultCategory = "General"

// CatalogItem is a reusable priced entry (labor or material) of the catalog.
//
// Budgets never reference a catalog item live: LineItem keeps a snapshot of
// name, price and unit taken when the line was added.
type CatalogItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unitPrice"`
	Unit      UnitType `json:"unit"`
	Category  string   `json:"category"`
}
