package request

import (
	"strings"

	"presubuild/internal/domain/entities"
)

// SettingsRequest replaces the whole settings record. LogoImage is only
// accepted as an already encoded data URL; uploads go through PUT
// /settings/logo.
type SettingsRequest struct {
	BusinessName      string  `json:"businessName"`
	OwnerName         string  `json:"ownerName"`
	Email             string  `json:"email" binding:"omitempty,email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	LogoImage         string  `json:"logoImage" binding:"omitempty,startswith=data:image/"`
	CurrencySymbol    string  `json:"currencySymbol" binding:"max=8"`
	DefaultTaxPercent float64 `json:"defaultTaxPercent" binding:"min=0"`
}

func (r SettingsRequest) ToEntity() entities.BusinessSettings {
	return entities.BusinessSettings{
		BusinessName:      r.BusinessName,
		OwnerName:         r.OwnerName,
		Email:             strings.TrimSpace(r.Email),
		Phone:             r.Phone,
		Address:           r.Address,
		LogoImage:         r.LogoImage,
		CurrencySymbol:    r.CurrencySymbol,
		DefaultTaxPercent: r.DefaultTaxPercent,
	}
}
