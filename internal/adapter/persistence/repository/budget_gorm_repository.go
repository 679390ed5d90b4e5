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

// BudgetGormRepository stores budgets in a SQL database. Lines and materials
// are JSON columns; the client is flattened into client_* columns.
type BudgetGormRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ interfaces.IBudgetRepository = (*BudgetGormRepository)(nil)

func NewBudgetGormRepository(db *gorm.DB, log *zap.Logger) *BudgetGormRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetGormRepository{db: db, log: log.Named("budget.sql")}
}

func (r *BudgetGormRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var recs []budgetRecord
	if err := r.db.WithContext(ctx).Order("issue_date DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Budget, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromBudgetRecord(rec))
	}
	return out, nil
}

func (r *BudgetGormRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var rec budgetRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Budget{}, nil
	}
	if err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetRecord(rec), nil
}

func (r *BudgetGormRepository) Upsert(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	rec := toBudgetRecord(b)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		r.log.Error("upsert failed", zap.String("id", b.ID), zap.Error(err))
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&budgetRecord{}).Error
}

// UpdateStatus issues an UPDATE of the status column only.
func (r *BudgetGormRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	res := r.db.WithContext(ctx).
		Model(&budgetRecord{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return entities.Budget{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Budget{}, nil
	}
	return r.GetByID(ctx, id)
}
