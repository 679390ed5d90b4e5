package interfaces

import (
	"context"
	"presubuild/internal/domain/entities"
)

//go:generate mockgen -source=budget_repository_interface.go -destination=mocks/mock_budget_repository_interface.go -package=mock_interfaces

// IBudgetRepository abstracts persistence of budgets.
//
// Lookups return a zero Budget (empty ID) and a nil error when nothing is
// stored under the id. The store must be able to:
//   - list every budget ordered by issue date, newest first
//   - upsert a whole budget (last write wins)
//   - change only the status of a budget, leaving every other field as stored

type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Upsert(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
}
