package usecase

import (
	"context"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const recentBudgetsLimit = 3

// DashboardSummary is the landing view of the app.
type DashboardSummary struct {
	AcceptedRevenue float64           `json:"acceptedRevenue"`
	PendingCount    int               `json:"pendingCount"`
	BudgetCount     int               `json:"budgetCount"`
	CatalogCount    int               `json:"catalogCount"`
	Recent          []entities.Budget `json:"recent"`
	CurrencySymbol  string            `json:"currencySymbol"`
}

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/mock_dashboard_usecase.go -package=mocks

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	budgetRepo   interfaces.IBudgetRepository
	catalogRepo  interfaces.ICatalogRepository
	settingsRepo interfaces.ISettingsRepository
	log          *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(budgetRepo interfaces.IBudgetRepository, catalogRepo interfaces.ICatalogRepository, settingsRepo interfaces.ISettingsRepository, log *zap.Logger) *DashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUseCase{budgetRepo: budgetRepo, catalogRepo: catalogRepo, settingsRepo: settingsRepo, log: log.Named("dashboard")}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	budgets, err := u.budgetRepo.List(ctx)
	if err != nil {
		u.log.Error("list budgets failed", zap.Error(err))
		return DashboardSummary{}, err
	}
	catalog, err := u.catalogRepo.List(ctx)
	if err != nil {
		u.log.Error("list catalog failed", zap.Error(err))
		return DashboardSummary{}, err
	}
	settings, err := loadSettings(ctx, u.settingsRepo)
	if err != nil {
		return DashboardSummary{}, err
	}

	sortByIssueDateDesc(budgets)
	s := DashboardSummary{
		BudgetCount:    len(budgets),
		CatalogCount:   len(catalog),
		CurrencySymbol: settings.CurrencySymbol,
		Recent:         []entities.Budget{},
	}
	for _, b := range budgets {
		switch b.Status {
		case entities.BudgetStatusAceptado:
			s.AcceptedRevenue += b.Total
		case entities.BudgetStatusPendiente:
			s.PendingCount++
		}
	}
	if len(budgets) > recentBudgetsLimit {
		budgets = budgets[:recentBudgetsLimit]
	}
	s.Recent = append(s.Recent, budgets...)
	return s, nil
}
