package repository

import (
	"context"
	"errors"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogGormRepository stores catalog items in the products table of a SQL
// database.
type CatalogGormRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB, log *zap.Logger) *CatalogGormRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogGormRepository{db: db, log: log.Named("catalog.sql")}
}

func (r *CatalogGormRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	var recs []catalogRecord
	if err := r.db.WithContext(ctx).Order("category, name").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.CatalogItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromCatalogRecord(catalogItemRecord(rec)))
	}
	return out, nil
}

func (r *CatalogGormRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	var rec catalogRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CatalogItem{}, nil
	}
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogRecord(catalogItemRecord(rec)), nil
}

func (r *CatalogGormRepository) Upsert(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	rec := catalogRecord(toCatalogRecord(item))
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		r.log.Error("upsert failed", zap.String("id", item.ID), zap.Error(err))
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&catalogRecord{}).Error
}
