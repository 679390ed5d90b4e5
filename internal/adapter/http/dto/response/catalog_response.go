package response

import "presubuild/internal/domain/entities"

type CatalogItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
}

func FromCatalogItem(it entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Unit:      string(it.Unit),
		Category:  it.Category,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}

// UnitsResponse lists the closed set of units accepted by the catalog.
type UnitsResponse struct {
	Units []string `json:"units"`
}

func FromUnitTypes(units []entities.UnitType) UnitsResponse {
	out := UnitsResponse{Units: make([]string, 0, len(units))}
	for _, u := range units {
		out.Units = append(out.Units, string(u))
	}
	return out
}
