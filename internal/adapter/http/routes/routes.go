package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"presubuild/internal/adapter/http/handlers"
	"presubuild/internal/config"
	"presubuild/internal/infrastructure/payments"
	"presubuild/internal/logger"
	"presubuild/internal/usecase"
	"presubuild/internal/usecase/interfaces"
)

// maxMultipartMemory bounds the in-memory part of a logo upload.
const maxMultipartMemory = 2 << 20

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Catalog     *handlers.CatalogHandler
	Budget      *handlers.BudgetHandler
	Export      *handlers.ExportHandler
	PaymentLink *handlers.PaymentLinkHandler
	Settings    *handlers.SettingsHandler
	Dashboard   *handlers.DashboardHandler
}

// Run will start the server
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	h, closeRepos, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepos()

	router, err := NewRouter(cfg, log, h)
	if err != nil {
		return err
	}

	addr := ":" + strconv.Itoa(cfg.App.Port)
	log.Info("starting server", zap.String("addr", addr), zap.String("storage", cfg.Storage.Driver))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter mounts middlewares, swagger and the /v1 routes.
func NewRouter(cfg *config.Config, log *zap.Logger, h Handlers) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.MaxMultipartMemory = maxMultipartMemory
	setMiddlewares(router, cfg, log)

	if cfg.Server.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addBudgetRoutes(v1, h.Budget, h.Export, h.PaymentLink)
	addSettingsRoutes(v1, h.Settings)
	addDashboardRoutes(v1, h.Dashboard)

	return router, nil
}

func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, func(), error) {
	repos, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		return Handlers{}, nil, err
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.CurrencyID, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(repos.catalog, log)
	budgetUseCase := usecase.NewBudgetUseCase(repos.budgets, repos.catalog, repos.settings, log)
	settingsUseCase := usecase.NewSettingsUseCase(repos.settings, log)
	exportUseCase := usecase.NewExportUseCase(budgetUseCase, repos.settings, log)
	paymentLinkUseCase := usecase.NewPaymentLinkUseCase(repos.budgets, repos.settings, paymentGateway, log)
	dashboardUseCase := usecase.NewDashboardUseCase(repos.budgets, repos.catalog, repos.settings, log)

	return Handlers{
		Catalog:     handlers.NewCatalogHandler(catalogUseCase),
		Budget:      handlers.NewBudgetHandler(budgetUseCase),
		Export:      handlers.NewExportHandler(exportUseCase),
		PaymentLink: handlers.NewPaymentLinkHandler(paymentLinkUseCase),
		Settings:    handlers.NewSettingsHandler(settingsUseCase),
		Dashboard:   handlers.NewDashboardHandler(dashboardUseCase),
	}, repos.close, nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORS)))
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.DefaultConfig()
	if len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowedOrigins
	}
	if len(c.AllowedMethods) > 0 {
		cc.AllowMethods = c.AllowedMethods
	}
	cc.AddAllowHeaders(c.AllowedHeaders...)
	cc.AddExposeHeaders(c.ExposedHeaders...)
	// credentials cannot be combined with a wildcard origin
	cc.AllowCredentials = c.AllowCredentials && !cc.AllowAllOrigins
	if c.MaxAge > 0 {
		cc.MaxAge = time.Duration(c.MaxAge) * time.Second
	}
	return cc
}
