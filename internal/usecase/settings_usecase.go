package usecase

import (
	"context"
	"errors"
	"strings"

	"presubuild/internal/domain/entities"
	"presubuild/internal/infrastructure/media"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MaxLogoBytes caps the size of an uploaded logo before processing.
const MaxLogoBytes = 1 << 20

var (
	ErrLogoTooLarge    = errors.New("logo exceeds 1MB")
	ErrInvalidLogo     = errors.New("logo is not a supported image")
	ErrInvalidSettings = errors.New("default tax percent must not be negative")
)

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/mock_settings_usecase.go -package=mocks

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.BusinessSettings, error)
	Set(ctx context.Context, s entities.BusinessSettings) (entities.BusinessSettings, error)
	SetLogo(ctx context.Context, data []byte) (entities.BusinessSettings, error)
}

// LogoNormalizer turns an uploaded image into the stored logo data URL.
type LogoNormalizer func(data []byte) (string, error)

type SettingsUseCase struct {
	repo      interfaces.ISettingsRepository
	normalize LogoNormalizer
	log       *zap.Logger
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, log *zap.Logger) *SettingsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsUseCase{repo: repo, normalize: media.NormalizeLogo, log: log.Named("settings")}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.BusinessSettings, error) {
	return loadSettings(ctx, u.repo)
}

// Set replaces the whole settings record.
func (u *SettingsUseCase) Set(ctx context.Context, s entities.BusinessSettings) (entities.BusinessSettings, error) {
	s.BusinessName = strings.TrimSpace(s.BusinessName)
	s.CurrencySymbol = strings.TrimSpace(s.CurrencySymbol)
	if s.CurrencySymbol == "" {
		s.CurrencySymbol = entities.DefaultBusinessSettings().CurrencySymbol
	}
	if s.DefaultTaxPercent < 0 {
		return entities.BusinessSettings{}, ErrInvalidSettings
	}
	if err := u.repo.Set(ctx, s); err != nil {
		u.log.Error("save settings failed", zap.Error(err))
		return entities.BusinessSettings{}, err
	}
	u.log.Info("settings saved", zap.String("business_name", s.BusinessName))
	return s, nil
}

// SetLogo resizes the uploaded image and stores it on the current settings.
func (u *SettingsUseCase) SetLogo(ctx context.Context, data []byte) (entities.BusinessSettings, error) {
	if len(data) > MaxLogoBytes {
		return entities.BusinessSettings{}, ErrLogoTooLarge
	}
	if len(data) == 0 {
		return entities.BusinessSettings{}, ErrInvalidLogo
	}
	logo, err := u.normalize(data)
	if err != nil {
		u.log.Warn("logo rejected", zap.Int("bytes", len(data)), zap.Error(err))
		return entities.BusinessSettings{}, ErrInvalidLogo
	}

	s, err := loadSettings(ctx, u.repo)
	if err != nil {
		return entities.BusinessSettings{}, err
	}
	s.LogoImage = logo
	if err := u.repo.Set(ctx, s); err != nil {
		u.log.Error("save logo failed", zap.Error(err))
		return entities.BusinessSettings{}, err
	}
	return s, nil
}

func loadSettings(ctx context.Context, repo interfaces.ISettingsRepository) (entities.BusinessSettings, error) {
	s, found, err := repo.Get(ctx)
	if err != nil {
		return entities.BusinessSettings{}, err
	}
	if !found {
		return entities.DefaultBusinessSettings(), nil
	}
	return s, nil
}
