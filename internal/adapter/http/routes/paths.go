package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presubuild/internal/adapter/http/handlers"
)

const (
	PathPing      = "/ping"
	PathCatalog   = "/catalog"
	PathBudgets   = "/budgets"
	PathSettings  = "/settings"
	PathDashboard = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", h.ListCatalog)
		catalog.GET("/units", h.ListUnits)
		catalog.POST("", h.CreateCatalogItem)
		catalog.POST("/price-adjustment", h.AdjustPrices)
		catalog.GET("/:id", h.GetCatalogItem)
		catalog.PUT("/:id", h.UpdateCatalogItem)
		catalog.DELETE("/:id", h.DeleteCatalogItem)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler, export *handlers.ExportHandler, payment *handlers.PaymentLinkHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.ListBudgets)
		budgets.POST("", h.CreateBudget)
		budgets.POST("/preview", h.PreviewBudget)
		budgets.GET("/export.xlsx", export.ExportBudgetsXLSX)
		budgets.GET("/:id", h.GetBudget)
		budgets.PUT("/:id", h.UpdateBudget)
		budgets.DELETE("/:id", h.DeleteBudget)
		budgets.PATCH("/:id/status", h.UpdateBudgetStatus)
		budgets.GET("/:id/pdf", export.DownloadBudgetPDF)
		budgets.GET("/:id/whatsapp", export.ShareBudgetWhatsApp)
		budgets.POST("/:id/payment-link", payment.CreatePaymentLink)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
		settings.PUT("/logo", h.UploadLogo)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.GetDashboard)
}
