package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"presubuild/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the PDF, WhatsApp and XLSX renditions of budgets.
type ExportHandler struct {
	usecase usecase.IExportUseCase
	now     func() time.Time
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc, now: time.Now}
}

// DownloadBudgetPDF godoc
// @Summary  Download a budget as PDF
// @Tags     exports
// @Produce  application/pdf
// @Param    id   path      string  true  "Budget id"
// @Success  200  {file}    file
// @Failure  404  {object}  pkg.HTTPError
// @Router   /budgets/{id}/pdf [get]
func (h *ExportHandler) DownloadBudgetPDF(c *gin.Context) {
	file, err := h.usecase.BudgetPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, "application/pdf", file.Content)
}

// ShareBudgetWhatsApp godoc
// @Summary      WhatsApp message for a budget
// @Description  Text summary and a wa.me link addressed to the client phone
// @Tags         exports
// @Produce      json
// @Param        id   path      string  true  "Budget id"
// @Success      200  {object}  usecase.WhatsAppMessage
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budgets/{id}/whatsapp [get]
func (h *ExportHandler) ShareBudgetWhatsApp(c *gin.Context) {
	msg, err := h.usecase.BudgetWhatsApp(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, msg)
}

// ExportBudgetsXLSX godoc
// @Summary  Download the budget history as an Excel workbook
// @Tags     exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200  {file}    file
// @Failure  500  {object}  pkg.HTTPError
// @Router   /budgets/export.xlsx [get]
func (h *ExportHandler) ExportBudgetsXLSX(c *gin.Context) {
	content, err := h.usecase.BudgetsXLSX(c.Request.Context())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	name := fmt.Sprintf("PresuBuild_Presupuestos_%s.xlsx", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, content)
}
