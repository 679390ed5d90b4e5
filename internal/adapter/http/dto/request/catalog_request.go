package request

import (
	"strings"

	"presubuild/internal/domain/entities"
)

type CatalogItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"gt=0"`
	Unit      string  `json:"unit" binding:"required,unit"`
	Category  string  `json:"category"`
}

func (r CatalogItemRequest) ToEntity(id string) entities.CatalogItem {
	return entities.CatalogItem{
		ID:        strings.TrimSpace(id),
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		Unit:      entities.UnitType(strings.TrimSpace(r.Unit)),
		Category:  r.Category,
	}
}

// PriceAdjustmentRequest raises (or lowers, when negative) every price of a
// category by Percent. An empty category adjusts the whole catalog.
type PriceAdjustmentRequest struct {
	Percent  *float64 `json:"percent" binding:"required"`
	Category string   `json:"category"`
}
