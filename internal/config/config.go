package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by StorageConfig.Driver.
const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DynamoDB DynamoDBConfig
	Payments PaymentsConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// StorageConfig selects the backend behind the repositories.
// DSN is only read by the postgres and sqlite drivers.
type StorageConfig struct {
	Driver string
	DSN    string
}

// DynamoDBConfig is used when Storage.Driver is "dynamodb".
// Endpoint is optional and points the client at a local DynamoDB.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ProductsTable   string
	BudgetsTable    string
	SettingsTable   string
}

type PaymentsConfig struct {
	AccessToken string
	CurrencyID  string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	EnableSwagger bool
}

// Load loads configuration from .env, an optional config.json and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB:
	case StoragePostgres, StorageSQLite:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("DATABASE_DSN is required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("invalid app port %d", c.App.Port)
	}
	return nil
}

// bindEnv keeps the historical variable names working alongside the
// dotted keys.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"app.port":                 {"APP_PORT", "PORT"},
		"storage.dsn":              {"DATABASE_DSN", "STORAGE_DSN"},
		"dynamodb.region":          {"AWS_REGION"},
		"dynamodb.endpoint":        {"DYNAMODB_ENDPOINT"},
		"dynamodb.accessKeyID":     {"AWS_ACCESS_KEY_ID"},
		"dynamodb.secretAccessKey": {"AWS_SECRET_ACCESS_KEY"},
		"dynamodb.productsTable":   {"PRODUCTS_TABLE"},
		"dynamodb.budgetsTable":    {"BUDGETS_TABLE"},
		"dynamodb.settingsTable":   {"SETTINGS_TABLE"},
		"payments.accessToken":     {"MERCADOPAGO_ACCESS_TOKEN"},
		"payments.currencyID":      {"MERCADOPAGO_CURRENCY_ID"},
		"cors.allowedOrigins":      {"CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "PresuBuild API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("storage.driver", StorageDynamoDB)
	v.SetDefault("storage.dsn", "")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.accessKeyID", "local")
	v.SetDefault("dynamodb.secretAccessKey", "local")
	v.SetDefault("dynamodb.productsTable", "products")
	v.SetDefault("dynamodb.budgetsTable", "budgets")
	v.SetDefault("dynamodb.settingsTable", "settings")

	v.SetDefault("payments.accessToken", "")
	v.SetDefault("payments.currencyID", "ARS")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Content-Disposition", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", false)
	v.SetDefault("cors.maxAge", 300)

	v.SetDefault("server.enableSwagger", true)
}
