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

// SettingsGormRepository keeps the settings document in the row with id "main".
type SettingsGormRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ interfaces.ISettingsRepository = (*SettingsGormRepository)(nil)

func NewSettingsGormRepository(db *gorm.DB, log *zap.Logger) *SettingsGormRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsGormRepository{db: db, log: log.Named("settings.sql")}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (entities.BusinessSettings, bool, error) {
	var rec settingsRecord
	err := r.db.WithContext(ctx).Where("id = ?", entities.SettingsID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.BusinessSettings{}, false, nil
	}
	if err != nil {
		return entities.BusinessSettings{}, false, err
	}
	return entities.BusinessSettings(rec.Data), true, nil
}

func (r *SettingsGormRepository) Set(ctx context.Context, s entities.BusinessSettings) error {
	rec := settingsRecord{ID: entities.SettingsID, Data: settingsData(s)}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		r.log.Error("save settings failed", zap.Error(err))
		return err
	}
	return nil
}
