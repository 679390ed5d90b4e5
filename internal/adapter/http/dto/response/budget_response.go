package response

import (
	"time"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase"
	"presubuild/internal/usecase/interfaces"
)

type BudgetResponse struct {
	ID                      string                      `json:"id"`
	IssueDate               time.Time                   `json:"issueDate"`
	ValidUntil              time.Time                   `json:"validUntil"`
	Expired                 bool                        `json:"expired"`
	Client                  entities.ClientInfo         `json:"client"`
	LaborItems              []entities.LineItem         `json:"laborItems"`
	Materials               []entities.RequiredMaterial `json:"materials"`
	MaterialsIncluded       bool                        `json:"materialsIncluded"`
	ClientSuppliesMaterials bool                        `json:"clientSuppliesMaterials"`
	TaxRatePercent          float64                     `json:"taxRatePercent"`
	DiscountPercent         float64                     `json:"discountPercent"`
	ManualAdjustment        float64                     `json:"manualAdjustment"`
	LaborSubtotal           float64                     `json:"laborSubtotal"`
	MaterialsSubtotal       float64                     `json:"materialsSubtotal"`
	Total                   float64                     `json:"total"`
	Totals                  entities.Totals             `json:"totals"`
	Status                  string                      `json:"status"`
}

func FromBudget(b entities.Budget, now time.Time) BudgetResponse {
	r := BudgetResponse{
		ID:                      b.ID,
		IssueDate:               b.IssueDate,
		ValidUntil:              b.ValidUntil,
		Expired:                 b.IsExpired(now),
		Client:                  b.Client,
		LaborItems:              b.LaborItems,
		Materials:               b.Materials,
		MaterialsIncluded:       b.MaterialsIncluded,
		ClientSuppliesMaterials: b.ClientSuppliesMaterials,
		TaxRatePercent:          b.TaxRatePercent,
		DiscountPercent:         b.DiscountPercent,
		ManualAdjustment:        b.ManualAdjustment,
		LaborSubtotal:           b.LaborSubtotal,
		MaterialsSubtotal:       b.MaterialsSubtotal,
		Total:                   b.Total,
		Totals:                  b.Breakdown(),
		Status:                  string(b.Status),
	}
	if r.LaborItems == nil {
		r.LaborItems = []entities.LineItem{}
	}
	if r.Materials == nil {
		r.Materials = []entities.RequiredMaterial{}
	}
	return r
}

func FromBudgets(list []entities.Budget, now time.Time) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b, now))
	}
	return out
}

type BudgetPreviewResponse struct {
	LaborItems []entities.LineItem         `json:"laborItems"`
	Materials  []entities.RequiredMaterial `json:"materials"`
	Totals     entities.Totals             `json:"totals"`
}

func FromPreview(p usecase.BudgetPreview) BudgetPreviewResponse {
	r := BudgetPreviewResponse{LaborItems: p.LaborItems, Materials: p.Materials, Totals: p.Totals}
	if r.LaborItems == nil {
		r.LaborItems = []entities.LineItem{}
	}
	if r.Materials == nil {
		r.Materials = []entities.RequiredMaterial{}
	}
	return r
}

type PaymentLinkResponse struct {
	BudgetID         string `json:"budgetId"`
	PreferenceID     string `json:"preferenceId"`
	InitPoint        string `json:"initPoint"`
	SandboxInitPoint string `json:"sandboxInitPoint,omitempty"`
}

func FromPaymentLink(budgetID string, l interfaces.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		BudgetID:         budgetID,
		PreferenceID:     l.ProviderID,
		InitPoint:        l.InitPoint,
		SandboxInitPoint: l.SandboxInitPoint,
	}
}
