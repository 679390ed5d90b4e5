package request

import (
	"strings"

	"presubuild/internal/domain/builder"
	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase"
)

type ClientRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
}

// LaborItemRequest references a catalog item. Lines echoed back from a saved
// budget also carry name and unit and are kept as snapshots.
type LaborItemRequest struct {
	CatalogItemID string   `json:"catalogItemId"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	Quantity      float64  `json:"quantity"`
	UnitPrice     *float64 `json:"unitPrice"`
}

type MaterialRequest struct {
	Name      string       `json:"name"`
	Quantity  NumberString `json:"quantity"`
	Unit      string       `json:"unit"`
	UnitPrice NumberString `json:"unitPrice"`
}

// BudgetDraftRequest is the body of create, update and preview.
type BudgetDraftRequest struct {
	Client                  ClientRequest      `json:"client"`
	LaborItems              []LaborItemRequest `json:"laborItems"`
	Materials               []MaterialRequest  `json:"materials"`
	MaterialsIncluded       *bool              `json:"materialsIncluded"`
	ClientSuppliesMaterials bool               `json:"clientSuppliesMaterials"`
	TaxRatePercent          *float64           `json:"taxRatePercent" binding:"omitempty,min=0"`
	DiscountPercent         float64            `json:"discountPercent" binding:"min=0"`
	ManualAdjustment        float64            `json:"manualAdjustment"`
	ValidityDays            *int               `json:"validityDays" binding:"omitempty,min=0"`
}

// ToDraft converts the payload. Materials are included in the total unless
// the request says otherwise.
func (r BudgetDraftRequest) ToDraft() usecase.BudgetDraft {
	d := usecase.BudgetDraft{
		Client: entities.ClientInfo{
			Name:         strings.TrimSpace(r.Client.Name),
			Phone:        strings.TrimSpace(r.Client.Phone),
			Observations: r.Client.Observations,
		},
		MaterialsIncluded:       true,
		ClientSuppliesMaterials: r.ClientSuppliesMaterials,
		TaxRatePercent:          r.TaxRatePercent,
		DiscountPercent:         r.DiscountPercent,
		ManualAdjustment:        r.ManualAdjustment,
		ValidityDays:            r.ValidityDays,
	}
	if r.MaterialsIncluded != nil {
		d.MaterialsIncluded = *r.MaterialsIncluded
	}
	for _, l := range r.LaborItems {
		d.LaborItems = append(d.LaborItems, usecase.DraftLaborItem{
			CatalogItemID: strings.TrimSpace(l.CatalogItemID),
			Name:          strings.TrimSpace(l.Name),
			Unit:          entities.UnitType(strings.TrimSpace(l.Unit)),
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
		})
	}
	for _, m := range r.Materials {
		d.Materials = append(d.Materials, builder.MaterialForm{
			Name:      m.Name,
			Quantity:  string(m.Quantity),
			Unit:      m.Unit,
			UnitPrice: string(m.UnitPrice),
		})
	}
	return d
}

type BudgetStatusRequest struct {
	Status string `json:"status" binding:"required,budget_status"`
}

// BudgetListQuery is bound from the query string of GET /budgets.
type BudgetListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status"`
}

func (q BudgetListQuery) ToFilter() usecase.BudgetFilter {
	return usecase.BudgetFilter{
		Query:  strings.TrimSpace(q.Query),
		Status: strings.TrimSpace(q.Status),
	}
}
