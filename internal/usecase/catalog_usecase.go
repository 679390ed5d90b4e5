package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCatalogItemNotFound  = errors.New("catalog item not found")
	ErrInvalidCatalogItemID = errors.New("invalid catalog item id")
	ErrInvalidCatalogItem   = errors.New("catalog item requires a name, a positive price and a known unit")
	ErrInvalidAdjustment    = errors.New("price adjustment must be greater than -100%")
)

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

// ICatalogUseCase exposes the price catalog.
//
// Filtering is applied here over the full list returned by the store; no
// query is pushed to the backend.
type ICatalogUseCase interface {
	List(ctx context.Context, query string) ([]entities.CatalogItem, error)
	Get(ctx context.Context, id string) (entities.CatalogItem, error)
	Save(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	AdjustPrices(ctx context.Context, percent float64, category string) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, log *zap.Logger) *CatalogUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogUseCase{repo: repo, log: log.Named("catalog")}
}

func (u *CatalogUseCase) List(ctx context.Context, query string) ([]entities.CatalogItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("list catalog failed", zap.Error(err))
		return nil, err
	}
	return FilterCatalog(items, query), nil
}

// FilterCatalog keeps the items whose name or category contains query,
// case-insensitively. An empty query keeps everything.
func FilterCatalog(items []entities.CatalogItem, query string) []entities.CatalogItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]entities.CatalogItem, 0, len(items))
	for _, it := range items {
		if query == "" ||
			strings.Contains(strings.ToLower(it.Name), query) ||
			strings.Contains(strings.ToLower(it.Category), query) {
			out = append(out, it)
		}
	}
	return out
}

func (u *CatalogUseCase) Get(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidCatalogItemID
	}

	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if it.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return it, nil
}

// Save creates or replaces a catalog item. Items without id get a new one.
func (u *CatalogUseCase) Save(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if item.Name == "" || item.UnitPrice <= 0 || math.IsInf(item.UnitPrice, 0) || !item.Unit.IsValid() {
		return entities.CatalogItem{}, ErrInvalidCatalogItem
	}
	if item.Category == "" {
		item.Category = entities.DefaultCategory
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	saved, err := u.repo.Upsert(ctx, item)
	if err != nil {
		u.log.Error("save catalog item failed", zap.String("id", item.ID), zap.Error(err))
		return entities.CatalogItem{}, err
	}
	u.log.Info("catalog item saved", zap.String("id", saved.ID), zap.Float64("unit_price", saved.UnitPrice))
	return saved, nil
}

func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogItemID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("delete catalog item failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// AdjustPrices applies a percentage change to every item (or every item of
// one category). Each item is written on its own: a failure midway leaves the
// items already written updated and returns the error.
func (u *CatalogUseCase) AdjustPrices(ctx context.Context, percent float64, category string) ([]entities.CatalogItem, error) {
	if percent <= -100 || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return nil, ErrInvalidAdjustment
	}
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	factor := 1 + percent/100
	updated := make([]entities.CatalogItem, 0, len(items))
	for _, it := range items {
		if category != "" && !strings.EqualFold(it.Category, category) {
			continue
		}
		it.UnitPrice = math.Round(it.UnitPrice*factor*100) / 100
		saved, err := u.repo.Upsert(ctx, it)
		if err != nil {
			u.log.Error("price adjustment interrupted",
				zap.String("id", it.ID),
				zap.Int("updated", len(updated)),
				zap.Error(err),
			)
			return updated, err
		}
		updated = append(updated, saved)
	}
	u.log.Info("price adjustment applied",
		zap.Float64("percent", percent),
		zap.String("category", category),
		zap.Int("updated", len(updated)),
	)
	return updated, nil
}
