package repository

import (
	"time"

	"presubuild/internal/domain/entities"

	"gorm.io/gorm"
)

type catalogRecord struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name;not null"`
	UnitPrice float64 `gorm:"column:unit_price;not null"`
	Unit      string  `gorm:"column:unit;not null"`
	Category  string  `gorm:"column:category;not null;default:General"`
}

func (catalogRecord) TableName() string { return DefaultProductsTableName }

type budgetRecord struct {
	ID                      string         `gorm:"column:id;primaryKey"`
	IssueDate               time.Time      `gorm:"column:issue_date;not null;index"`
	ValidUntil              time.Time      `gorm:"column:valid_until;not null"`
	ClientName              string         `gorm:"column:client_name;not null"`
	ClientPhone             string         `gorm:"column:client_phone"`
	ClientObservations      string         `gorm:"column:client_observations"`
	LaborItems              []lineItemAttr `gorm:"column:labor_items;type:text;serializer:json"`
	Materials               []materialAttr `gorm:"column:materials;type:text;serializer:json"`
	MaterialsIncluded       bool           `gorm:"column:materials_included"`
	ClientSuppliesMaterials bool           `gorm:"column:client_supplies_materials"`
	TaxRate                 float64        `gorm:"column:tax_rate"`
	DiscountPercent         float64        `gorm:"column:discount_percent"`
	ManualAdjustment        float64        `gorm:"column:manual_adjustment"`
	LaborSubtotal           float64        `gorm:"column:labor_subtotal"`
	MaterialsSubtotal       float64        `gorm:"column:materials_subtotal"`
	Total                   float64        `gorm:"column:total"`
	Status                  string         `gorm:"column:status;not null;index"`
}

func (budgetRecord) TableName() string { return DefaultBudgetsTableName }

type settingsRecord struct {
	ID   string       `gorm:"column:id;primaryKey"`
	Data settingsData `gorm:"column:data;type:text;serializer:json"`
}

func (settingsRecord) TableName() string { return DefaultSettingsTableName }

// AutoMigrate creates the tables on databases not managed by goose (sqlite).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&catalogRecord{}, &budgetRecord{}, &settingsRecord{})
}

func toBudgetRecord(b entities.Budget) budgetRecord {
	return budgetRecord{
		ID:                      b.ID,
		IssueDate:               b.IssueDate.UTC(),
		ValidUntil:              b.ValidUntil.UTC(),
		ClientName:              b.Client.Name,
		ClientPhone:             b.Client.Phone,
		ClientObservations:      b.Client.Observations,
		LaborItems:              toLineAttrs(b.LaborItems),
		Materials:               toMaterialAttrs(b.Materials),
		MaterialsIncluded:       b.MaterialsIncluded,
		ClientSuppliesMaterials: b.ClientSuppliesMaterials,
		TaxRate:                 b.TaxRatePercent,
		DiscountPercent:         b.DiscountPercent,
		ManualAdjustment:        b.ManualAdjustment,
		LaborSubtotal:           b.LaborSubtotal,
		MaterialsSubtotal:       b.MaterialsSubtotal,
		Total:                   b.Total,
		Status:                  string(b.Status),
	}
}

func fromBudgetRecord(rec budgetRecord) entities.Budget {
	return entities.Budget{
		ID:         rec.ID,
		IssueDate:  rec.IssueDate.UTC(),
		ValidUntil: rec.ValidUntil.UTC(),
		Client: entities.ClientInfo{
			Name:         rec.ClientName,
			Phone:        rec.ClientPhone,
			Observations: rec.ClientObservations,
		},
		LaborItems:              fromLineAttrs(rec.LaborItems),
		Materials:               fromMaterialAttrs(rec.Materials),
		MaterialsIncluded:       rec.MaterialsIncluded,
		ClientSuppliesMaterials: rec.ClientSuppliesMaterials,
		TaxRatePercent:          rec.TaxRate,
		DiscountPercent:         rec.DiscountPercent,
		ManualAdjustment:        rec.ManualAdjustment,
		LaborSubtotal:           rec.LaborSubtotal,
		MaterialsSubtotal:       rec.MaterialsSubtotal,
		Total:                   rec.Total,
		Status:                  entities.BudgetStatus(rec.Status),
	}
}
