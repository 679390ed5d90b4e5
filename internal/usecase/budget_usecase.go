package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"presubuild/internal/domain/builder"
	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
	ErrBudgetAlreadyExists = errors.New("budget already exists")
)

// StatusFilterAll disables the status filter on listings.
const StatusFilterAll = "todos"

// BudgetFilter narrows a budget listing. Query matches the client name or the
// budget id, case-insensitively.
type BudgetFilter struct {
	Query  string
	Status string
}

//go:generate mockgen -source=budget_usecase.go -destination=../adapter/http/handlers/mocks/mock_budget_usecase.go -package=mocks

type IBudgetUseCase interface {
	Create(ctx context.Context, draft BudgetDraft) (entities.Budget, error)
	Update(ctx context.Context, id string, draft BudgetDraft) (entities.Budget, error)
	Preview(ctx context.Context, draft BudgetDraft) (BudgetPreview, error)
	Get(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter BudgetFilter) ([]entities.Budget, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo         interfaces.IBudgetRepository
	catalogRepo  interfaces.ICatalogRepository
	settingsRepo interfaces.ISettingsRepository
	log          *zap.Logger
	now          func() time.Time
	newID        builder.IDFunc
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, catalogRepo interfaces.ICatalogRepository, settingsRepo interfaces.ISettingsRepository, log *zap.Logger) *BudgetUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetUseCase{
		repo:         repo,
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
		log:          log.Named("budget"),
		now:          time.Now,
		newID:        builder.NewBudgetID,
	}
}

func (u *BudgetUseCase) Create(ctx context.Context, draft BudgetDraft) (entities.Budget, error) {
	b, err := u.newBuilder(ctx)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := applyDraft(b, draft, u.log); err != nil {
		return entities.Budget{}, err
	}
	budget, err := b.Build(u.now())
	if err != nil {
		return entities.Budget{}, err
	}

	existing, err := u.repo.GetByID(ctx, budget.ID)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID != "" {
		u.log.Warn("budget id collision", zap.String("id", budget.ID))
		return entities.Budget{}, ErrBudgetAlreadyExists
	}

	saved, err := u.repo.Upsert(ctx, budget)
	if err != nil {
		u.log.Error("save budget failed", zap.String("id", budget.ID), zap.Error(err))
		return entities.Budget{}, err
	}
	u.log.Info("budget created",
		zap.String("id", saved.ID),
		zap.String("client", saved.Client.Name),
		zap.Float64("total", saved.Total),
	)
	return saved, nil
}

// Update replaces the content of a saved budget. Id, issue date and status
// are kept.
func (u *BudgetUseCase) Update(ctx context.Context, id string, draft BudgetDraft) (entities.Budget, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	catalog, err := u.catalogRepo.List(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	b := builder.FromBudget(existing, catalog)
	b.ResetLines()
	if err := applyDraft(b, draft, u.log); err != nil {
		return entities.Budget{}, err
	}
	budget, err := b.Build(u.now())
	if err != nil {
		return entities.Budget{}, err
	}

	saved, err := u.repo.Upsert(ctx, budget)
	if err != nil {
		u.log.Error("update budget failed", zap.String("id", budget.ID), zap.Error(err))
		return entities.Budget{}, err
	}
	u.log.Info("budget updated", zap.String("id", saved.ID), zap.Float64("total", saved.Total))
	return saved, nil
}

// Preview runs a draft through the builder without saving it. Validation of
// the save preconditions is not applied.
func (u *BudgetUseCase) Preview(ctx context.Context, draft BudgetDraft) (BudgetPreview, error) {
	b, err := u.newBuilder(ctx)
	if err != nil {
		return BudgetPreview{}, err
	}
	if err := applyDraft(b, draft, u.log); err != nil {
		return BudgetPreview{}, err
	}
	return BudgetPreview{
		LaborItems: b.LaborItems(),
		Materials:  b.Materials(),
		Totals:     b.Totals(),
	}, nil
}

func (u *BudgetUseCase) Get(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context, filter BudgetFilter) ([]entities.Budget, error) {
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	if status != "" && status != StatusFilterAll && !entities.BudgetStatus(status).IsValid() {
		return nil, ErrInvalidBudgetStatus
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("list budgets failed", zap.Error(err))
		return nil, err
	}
	sortByIssueDateDesc(all)
	return FilterBudgets(all, filter), nil
}

// FilterBudgets keeps the budgets matching the query and status. Order is
// preserved.
func FilterBudgets(budgets []entities.Budget, filter BudgetFilter) []entities.Budget {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	out := make([]entities.Budget, 0, len(budgets))
	for _, b := range budgets {
		if status != "" && status != StatusFilterAll && string(b.Status) != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Client.Name), query) &&
			!strings.Contains(strings.ToLower(b.ID), query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func sortByIssueDateDesc(budgets []entities.Budget) {
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].IssueDate.After(budgets[j].IssueDate)
	})
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBudgetID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("delete budget failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus changes only the status of a saved budget.
func (u *BudgetUseCase) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if !status.IsValid() {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.log.Error("update budget status failed", zap.String("id", id), zap.Error(err))
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	u.log.Info("budget status updated", zap.String("id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *BudgetUseCase) newBuilder(ctx context.Context) (*builder.Builder, error) {
	catalog, err := u.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings(ctx, u.settingsRepo)
	if err != nil {
		return nil, err
	}
	return builder.New(catalog, settings.DefaultTaxPercent).WithIDFunc(u.newID), nil
}
