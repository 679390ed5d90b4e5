package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presubuild/internal/usecase"
	"presubuild/pkg"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary      Dashboard summary
// @Description  Accepted revenue, pending budgets, counts and the three newest budgets
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  usecase.DashboardSummary
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, summary)
}
