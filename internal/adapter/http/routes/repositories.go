package routes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"presubuild/internal/adapter/persistence/repository"
	"presubuild/internal/config"
	"presubuild/internal/infrastructure/database"
	"presubuild/internal/usecase/interfaces"
)

type repositories struct {
	catalog  interfaces.ICatalogRepository
	budgets  interfaces.IBudgetRepository
	settings interfaces.ISettingsRepository
	close    func()
}

// buildRepositories picks the storage backend named by cfg.Storage.Driver.
func buildRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger) (repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			catalog:  repository.NewCatalogDynamoRepository(ddb, cfg.DynamoDB.ProductsTable, log),
			budgets:  repository.NewBudgetDynamoRepository(ddb, cfg.DynamoDB.BudgetsTable, log),
			settings: repository.NewSettingsDynamoRepository(ddb, cfg.DynamoDB.SettingsTable, log),
			close:    func() {},
		}, nil

	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenGorm(cfg.Storage, log)
		if err != nil {
			return repositories{}, err
		}
		// postgres schema is owned by goose (cmd/migrate)
		if cfg.Storage.Driver == config.StorageSQLite {
			if err := repository.AutoMigrate(db); err != nil {
				return repositories{}, fmt.Errorf("failed to migrate sqlite schema: %w", err)
			}
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repositories{
			catalog:  repository.NewCatalogGormRepository(db, log),
			budgets:  repository.NewBudgetGormRepository(db, log),
			settings: repository.NewSettingsGormRepository(db, log),
			close:    closeDB,
		}, nil

	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
