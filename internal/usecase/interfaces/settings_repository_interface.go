package interfaces

import (
	"context"
	"presubuild/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/mock_settings_repository_interface.go -package=mock_interfaces

// ISettingsRepository stores the single settings record under
// entities.SettingsID. Get reports found=false when it was never saved.
type ISettingsRepository interface {
	Get(ctx context.Context) (settings entities.BusinessSettings, found bool, err error)
	Set(ctx context.Context, settings entities.BusinessSettings) error
}
