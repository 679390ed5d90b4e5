package usecase

import (
	"strings"

	"presubuild/internal/domain/builder"
	"presubuild/internal/domain/entities"

	"go.uber.org/zap"
)

// DraftLaborItem is one labor line of a draft.
//
// A line carrying a Name is a snapshot kept from a saved budget and is
// restored as is. Otherwise the line is resolved against the current catalog
// and UnitPrice, when set, overrides the snapshotted price.
type DraftLaborItem struct {
	CatalogItemID string
	Name          string
	Unit          entities.UnitType
	Quantity      float64
	UnitPrice     *float64
}

// BudgetDraft is the full content of a budget being created or edited.
type BudgetDraft struct {
	Client                  entities.ClientInfo
	LaborItems              []DraftLaborItem
	Materials               []builder.MaterialForm
	MaterialsIncluded       bool
	ClientSuppliesMaterials bool
	TaxRatePercent          *float64
	DiscountPercent         float64
	ManualAdjustment        float64
	ValidityDays            *int
}

// BudgetPreview is what the builder shows before saving.
type BudgetPreview struct {
	LaborItems []entities.LineItem
	Materials  []entities.RequiredMaterial
	Totals     entities.Totals
}

// applyDraft replays a draft onto b. Labor lines rejected by the builder are
// skipped; invalid materials and percentages are returned as errors.
func applyDraft(b *builder.Builder, d BudgetDraft, log *zap.Logger) error {
	b.SetClient(d.Client)
	b.SetMaterialsIncluded(d.MaterialsIncluded)
	b.SetClientSuppliesMaterials(d.ClientSuppliesMaterials)
	b.SetManualAdjustment(d.ManualAdjustment)
	if d.TaxRatePercent != nil {
		if err := b.SetTaxRatePercent(*d.TaxRatePercent); err != nil {
			return err
		}
	}
	if err := b.SetDiscountPercent(d.DiscountPercent); err != nil {
		return err
	}
	if d.ValidityDays != nil {
		b.SetValidityDays(*d.ValidityDays)
	}

	for i, li := range d.LaborItems {
		if strings.TrimSpace(li.Name) != "" {
			line := entities.LineItem{
				CatalogItemID: li.CatalogItemID,
				Name:          strings.TrimSpace(li.Name),
				Unit:          li.Unit,
				Quantity:      li.Quantity,
			}
			if li.UnitPrice != nil {
				line.UnitPrice = *li.UnitPrice
			}
			if err := b.RestoreLaborItem(line); err != nil {
				return err
			}
			continue
		}

		if !b.AddLaborItem(li.CatalogItemID, li.Quantity) {
			log.Debug("labor item skipped",
				zap.Int("index", i),
				zap.String("catalog_item_id", li.CatalogItemID),
				zap.Float64("quantity", li.Quantity),
			)
			continue
		}
		if li.UnitPrice != nil {
			last := len(b.LaborItems()) - 1
			if err := b.EditLaborItem(last, builder.FieldUnitPrice, *li.UnitPrice); err != nil {
				return err
			}
		}
	}

	for _, m := range d.Materials {
		if err := b.AddMaterial(m); err != nil {
			return err
		}
	}
	return nil
}
