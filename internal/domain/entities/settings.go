package entities

// SettingsID is the sentinel key of the only settings record.
const SettingsID = "main"

// BusinessSettings is the shared business identity printed on every export.
//
// LogoImage holds an inline data URL (data:image/png;base64,...).
type BusinessSettings struct {
	BusinessName      string  `json:"businessName"`
	OwnerName         string  `json:"ownerName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	LogoImage         string  `json:"logoImage,omitempty"`
	CurrencySymbol    string  `json:"currencySymbol"`
	DefaultTaxPercent float64 `json:"defaultTaxPercent"`
}

// DefaultBusinessSettings is returned while no settings record exists yet.
func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		BusinessName:      "Mi Constructora",
		CurrencySymbol:    "$",
		DefaultTaxPercent: 0,
	}
}
