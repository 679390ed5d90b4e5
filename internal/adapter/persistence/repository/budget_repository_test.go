package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"presubuild/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func sampleBudget(id string, issued time.Time) entities.Budget {
	b := entities.Budget{
		ID:         id,
		IssueDate:  issued,
		ValidUntil: issued.AddDate(0, 0, 15),
		Client:     entities.ClientInfo{Name: "Ana López", Phone: "11 5555-0000", Observations: "Timbre 2"},
		LaborItems: []entities.LineItem{
			{CatalogItemID: "p-1", Name: "Revoque grueso", UnitPrice: 1000, Unit: entities.UnitSquareMeter, Quantity: 3, LineTotal: 3000},
		},
		Materials: []entities.RequiredMaterial{
			{Name: "Cemento", Quantity: 2, Unit: "bolsa", UnitPrice: 500, LineTotal: 1000},
		},
		MaterialsIncluded:       true,
		ClientSuppliesMaterials: false,
		TaxRatePercent:          21,
		DiscountPercent:         10,
		ManualAdjustment:        456,
		Status:                  entities.BudgetStatusPendiente,
	}
	b.ApplyTotals(entities.ComputeTotals(b.LaborItems, b.Materials, b.MaterialsIncluded, b.DiscountPercent, b.TaxRatePercent, b.ManualAdjustment))
	return b
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, AutoMigrate(db))
	return db
}

func assertSameBudget(t *testing.T, want, got entities.Budget) {
	t.Helper()
	assert.True(t, want.IssueDate.Equal(got.IssueDate), "issue date %v != %v", want.IssueDate, got.IssueDate)
	assert.True(t, want.ValidUntil.Equal(got.ValidUntil), "valid until %v != %v", want.ValidUntil, got.ValidUntil)
	want.IssueDate, got.IssueDate = time.Time{}, time.Time{}
	want.ValidUntil, got.ValidUntil = time.Time{}, time.Time{}
	assert.Equal(t, want, got)
}

func TestBudgetItemMapping_RoundTrip(t *testing.T) {
	b := sampleBudget("OBRA-00001", time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC))

	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	require.NoError(t, err)

	for _, attr := range []string{"issue_date", "valid_until", "tax_rate", "labor_items", "materials_included", "labor_subtotal", "status"} {
		assert.Contains(t, av, attr)
	}
	_, isNumber := av["total"].(*types.AttributeValueMemberN)
	assert.True(t, isNumber, "total must be stored as a number")

	var it budgetItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	assertSameBudget(t, b, fromBudgetItem(it))
}

func TestBudgetDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewBudgetDynamoRepository(ddb, "", nil)

	first := sampleBudget("OBRA-00001", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	second := sampleBudget("OBRA-00002", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	_, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, second)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "OBRA-00002")
	require.NoError(t, err)
	assertSameBudget(t, second, got)

	missing, err := repo.GetByID(ctx, "OBRA-99999")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	updated, err := repo.UpdateStatus(ctx, "OBRA-00001", entities.BudgetStatusAceptado)
	require.NoError(t, err)
	assert.Equal(t, entities.BudgetStatusAceptado, updated.Status)

	require.Len(t, ddb.updates, 1)
	assert.Equal(t, "SET #status = :status", aws.ToString(ddb.updates[0].UpdateExpression))
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.updates[0].ConditionExpression))

	want := first
	want.Status = entities.BudgetStatusAceptado
	assertSameBudget(t, want, updated)

	untouched, err := repo.GetByID(ctx, "OBRA-00002")
	require.NoError(t, err)
	assertSameBudget(t, second, untouched)

	none, err := repo.UpdateStatus(ctx, "OBRA-99999", entities.BudgetStatusRechazado)
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "OBRA-00002"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBudgetGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetGormRepository(openTestDB(t), nil)

	first := sampleBudget("OBRA-00001", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	second := sampleBudget("OBRA-00002", time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC))
	second.Client.Name = "Bruno"
	second.Materials = []entities.RequiredMaterial{}
	for _, b := range []entities.Budget{first, second} {
		_, err := repo.Upsert(ctx, b)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "OBRA-00002", list[0].ID, "newest first")
	assertSameBudget(t, first, list[1])

	updated, err := repo.UpdateStatus(ctx, "OBRA-00001", entities.BudgetStatusRechazado)
	require.NoError(t, err)
	want := first
	want.Status = entities.BudgetStatusRechazado
	assertSameBudget(t, want, updated)

	other, err := repo.GetByID(ctx, "OBRA-00002")
	require.NoError(t, err)
	assertSameBudget(t, second, other)

	none, err := repo.UpdateStatus(ctx, "OBRA-99999", entities.BudgetStatusAceptado)
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	edited := second
	edited.Client.Name = "Bruno Díaz"
	edited.Total = 10
	_, err = repo.Upsert(ctx, edited)
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, "OBRA-00002")
	require.NoError(t, err)
	assertSameBudget(t, edited, got)

	require.NoError(t, repo.Delete(ctx, "OBRA-00002"))
	got, err = repo.GetByID(ctx, "OBRA-00002")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}
