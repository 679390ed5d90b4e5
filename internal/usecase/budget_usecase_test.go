package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"presubuild/internal/domain/builder"
	"presubuild/internal/domain/entities"
	mock_interfaces "presubuild/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var budgetTestCatalog = []entities.CatalogItem{
	{ID: "p-1", Name: "Revoque grueso", UnitPrice: 1000, Unit: entities.UnitSquareMeter, Category: "Albañilería"},
	{ID: "p-2", Name: "Pintura látex", UnitPrice: 250, Unit: entities.UnitSquareMeter, Category: "Pintura"},
}

type budgetMocks struct {
	budgets  *mock_interfaces.MockIBudgetRepository
	catalog  *mock_interfaces.MockICatalogRepository
	settings *mock_interfaces.MockISettingsRepository
}

func newBudgetUseCaseForTest(t *testing.T) (*BudgetUseCase, budgetMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		budgets:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		settings: mock_interfaces.NewMockISettingsRepository(ctrl),
	}
	uc := NewBudgetUseCase(m.budgets, m.catalog, m.settings, nil)
	uc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	uc.newID = func(time.Time) string { return "OBRA-12345" }
	return uc, m
}

func ptr[T any](v T) *T { return &v }

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("computes totals and saves as pending", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{DefaultTaxPercent: 21}, true, nil)
		m.budgets.EXPECT().GetByID(gomock.Any(), "OBRA-12345").Return(entities.Budget{}, nil)
		m.budgets.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Budget) (entities.Budget, error) {
			return b, nil
		})

		draft := BudgetDraft{
			Client: entities.ClientInfo{Name: " Juan Pérez ", Phone: "11 5555"},
			LaborItems: []DraftLaborItem{
				{CatalogItemID: "p-1", Quantity: 3},
				{CatalogItemID: "missing", Quantity: 1},
				{CatalogItemID: "p-2", Quantity: 0},
			},
			Materials:         []builder.MaterialForm{{Name: "Cemento", Quantity: "2", Unit: "bolsa", UnitPrice: "500"}},
			MaterialsIncluded: true,
			DiscountPercent:   10,
			ManualAdjustment:  456,
		}

		got, err := uc.Create(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "OBRA-12345" || got.Status != entities.BudgetStatusPendiente {
			t.Fatalf("unexpected identity: %+v", got)
		}
		if got.Client.Name != "Juan Pérez" {
			t.Fatalf("expected trimmed client name, got %q", got.Client.Name)
		}
		if len(got.LaborItems) != 1 {
			t.Fatalf("rejected labor entries must be skipped, got %d lines", len(got.LaborItems))
		}
		if got.TaxRatePercent != 21 {
			t.Fatalf("expected default tax from settings, got %v", got.TaxRatePercent)
		}
		if got.LaborSubtotal != 3000 || got.MaterialsSubtotal != 1000 || got.Total != 3900 {
			t.Fatalf("unexpected totals: labor=%v materials=%v total=%v", got.LaborSubtotal, got.MaterialsSubtotal, got.Total)
		}
		if !got.ValidUntil.Equal(got.IssueDate.AddDate(0, 0, entities.DefaultValidityDays)) {
			t.Fatalf("unexpected validity: %v -> %v", got.IssueDate, got.ValidUntil)
		}
	})

	t.Run("validation error does not write", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, false, nil)

		_, err := uc.Create(context.Background(), BudgetDraft{LaborItems: []DraftLaborItem{{CatalogItemID: "p-1", Quantity: 1}}})
		if !errors.Is(err, builder.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid material", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, false, nil)

		_, err := uc.Create(context.Background(), BudgetDraft{
			Client:    entities.ClientInfo{Name: "Ana"},
			Materials: []builder.MaterialForm{{Name: "Arena", Quantity: "abc"}},
		})
		if !errors.Is(err, builder.ErrInvalidMaterial) {
			t.Fatalf("expected ErrInvalidMaterial, got %v", err)
		}
	})

	t.Run("id collision", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, false, nil)
		m.budgets.EXPECT().GetByID(gomock.Any(), "OBRA-12345").Return(entities.Budget{ID: "OBRA-12345"}, nil)

		_, err := uc.Create(context.Background(), BudgetDraft{
			Client:     entities.ClientInfo{Name: "Ana"},
			LaborItems: []DraftLaborItem{{CatalogItemID: "p-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("backend failure is reported", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, false, nil)
		m.budgets.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Budget{}, nil)
		m.budgets.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.New("unavailable"))

		_, err := uc.Create(context.Background(), BudgetDraft{
			Client:     entities.ClientInfo{Name: "Ana"},
			LaborItems: []DraftLaborItem{{CatalogItemID: "p-1", Quantity: 1}},
		})
		if err == nil || err.Error() != "unavailable" {
			t.Fatalf("expected backend error, got %v", err)
		}
	})

	t.Run("unit price override", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, false, nil)
		m.budgets.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Budget{}, nil)
		m.budgets.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Budget) (entities.Budget, error) {
			return b, nil
		})

		got, err := uc.Create(context.Background(), BudgetDraft{
			Client:     entities.ClientInfo{Name: "Ana"},
			LaborItems: []DraftLaborItem{{CatalogItemID: "p-1", Quantity: 2, UnitPrice: ptr(800.0)}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.LaborItems[0].UnitPrice != 800 || got.LaborItems[0].LineTotal != 1600 || got.Total != 1600 {
			t.Fatalf("override not applied: %+v", got.LaborItems[0])
		}
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	issued := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	existing := entities.Budget{
		ID:         "OBRA-00042",
		IssueDate:  issued,
		ValidUntil: issued.AddDate(0, 0, 15),
		Client:     entities.ClientInfo{Name: "Ana"},
		LaborItems: []entities.LineItem{
			{CatalogItemID: "deleted", Name: "Cielorraso", UnitPrice: 900, Unit: entities.UnitSquareMeter, Quantity: 2, LineTotal: 1800},
		},
		Materials:         []entities.RequiredMaterial{},
		MaterialsIncluded: true,
		TaxRatePercent:    10,
		Status:            entities.BudgetStatusAceptado,
	}

	t.Run("keeps identity and restores snapshots", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "OBRA-00042").Return(existing, nil)
		m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
		m.budgets.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Budget) (entities.Budget, error) {
			return b, nil
		})

		got, err := uc.Update(context.Background(), "OBRA-00042", BudgetDraft{
			Client: entities.ClientInfo{Name: "Ana María"},
			LaborItems: []DraftLaborItem{
				{CatalogItemID: "deleted", Name: "Cielorraso", Unit: entities.UnitSquareMeter, Quantity: 3, UnitPrice: ptr(900.0)},
				{CatalogItemID: "p-2", Quantity: 4},
			},
			MaterialsIncluded: true,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != existing.ID || !got.IssueDate.Equal(issued) || got.Status != entities.BudgetStatusAceptado {
			t.Fatalf("identity not preserved: %+v", got)
		}
		if !got.ValidUntil.Equal(existing.ValidUntil) {
			t.Fatalf("validity window changed: %v", got.ValidUntil)
		}
		if len(got.LaborItems) != 2 || got.LaborItems[0].LineTotal != 2700 {
			t.Fatalf("unexpected lines: %+v", got.LaborItems)
		}
		if got.TaxRatePercent != 10 {
			t.Fatalf("expected stored tax rate, got %v", got.TaxRatePercent)
		}
		if got.Total != 4070 {
			t.Fatalf("unexpected total %v", got.Total)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "OBRA-99999").Return(entities.Budget{}, nil)

		if _, err := uc.Update(context.Background(), "OBRA-99999", BudgetDraft{}); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_Preview(t *testing.T) {
	uc, m := newBudgetUseCaseForTest(t)
	m.catalog.EXPECT().List(gomock.Any()).Return(budgetTestCatalog, nil)
	m.settings.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, false, nil)

	got, err := uc.Preview(context.Background(), BudgetDraft{
		LaborItems:        []DraftLaborItem{{CatalogItemID: "p-2", Quantity: 8}},
		Materials:         []builder.MaterialForm{{Name: "Látex", Quantity: "1", UnitPrice: "178"}},
		MaterialsIncluded: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Totals.Total != 2178 || len(got.LaborItems) != 1 || len(got.Materials) != 1 {
		t.Fatalf("unexpected preview: %+v", got)
	}
}

func TestBudgetUseCase_List(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC) }
	stored := []entities.Budget{
		{ID: "OBRA-00001", IssueDate: d(1), Client: entities.ClientInfo{Name: "Ana"}, Status: entities.BudgetStatusPendiente},
		{ID: "OBRA-00003", IssueDate: d(3), Client: entities.ClientInfo{Name: "Bruno"}, Status: entities.BudgetStatusAceptado},
		{ID: "OBRA-00002", IssueDate: d(2), Client: entities.ClientInfo{Name: "Ana Paula"}, Status: entities.BudgetStatusRechazado},
	}

	t.Run("newest first", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.budgets.EXPECT().List(gomock.Any()).Return(append([]entities.Budget(nil), stored...), nil)

		got, err := uc.List(context.Background(), BudgetFilter{Status: StatusFilterAll})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 3 || got[0].ID != "OBRA-00003" || got[2].ID != "OBRA-00001" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("query and status", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.budgets.EXPECT().List(gomock.Any()).Return(append([]entities.Budget(nil), stored...), nil)

		got, err := uc.List(context.Background(), BudgetFilter{Query: "ana", Status: "pendiente"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 || got[0].ID != "OBRA-00001" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("query matches id", func(t *testing.T) {
		got := FilterBudgets(stored, BudgetFilter{Query: "obra-00002"})
		if len(got) != 1 || got[0].Client.Name != "Ana Paula" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newBudgetUseCaseForTest(t)
		if _, err := uc.List(context.Background(), BudgetFilter{Status: "borrador"}); !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})
}

func TestBudgetUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newBudgetUseCaseForTest(t)
		if _, err := uc.UpdateStatus(context.Background(), "", entities.BudgetStatusAceptado); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
		if _, err := uc.UpdateStatus(context.Background(), "OBRA-1", "vencido"); !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("narrow write", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.budgets.EXPECT().UpdateStatus(gomock.Any(), "OBRA-00001", entities.BudgetStatusRechazado).
			Return(entities.Budget{ID: "OBRA-00001", Status: entities.BudgetStatusRechazado}, nil)

		got, err := uc.UpdateStatus(context.Background(), "OBRA-00001", entities.BudgetStatusRechazado)
		if err != nil || got.Status != entities.BudgetStatusRechazado {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBudgetUseCaseForTest(t)
		m.budgets.EXPECT().UpdateStatus(gomock.Any(), "OBRA-00009", entities.BudgetStatusAceptado).Return(entities.Budget{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "OBRA-00009", entities.BudgetStatusAceptado); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_Delete(t *testing.T) {
	uc, m := newBudgetUseCaseForTest(t)
	if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidBudgetID) {
		t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
	}
	m.budgets.EXPECT().Delete(gomock.Any(), "OBRA-00001").Return(nil)
	if err := uc.Delete(context.Background(), "OBRA-00001"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
