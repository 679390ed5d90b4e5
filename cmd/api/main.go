package main

import (
	"context"
	"fmt"
	"os"

	_ "presubuild/docs"
	"presubuild/internal/adapter/http/routes"
	"presubuild/internal/config"
	"presubuild/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           PresuBuild API
// @version         1.0
// @description     Construction budgets: price catalog, quotes with PDF/WhatsApp/XLSX export and Mercado Pago payment links.

// @contact.name   API Support
// @contact.email  soporte@presubuild.app

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "presubuild: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(context.Background(), cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
