package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "presubuild/internal/adapter/http/dto/response"
	"presubuild/internal/usecase"
	"presubuild/pkg"
)

// PaymentLinkHandler creates Mercado Pago checkouts for accepted budgets.
type PaymentLinkHandler struct {
	usecase usecase.IPaymentLinkUseCase
}

func NewPaymentLinkHandler(uc usecase.IPaymentLinkUseCase) *PaymentLinkHandler {
	return &PaymentLinkHandler{usecase: uc}
}

// CreatePaymentLink godoc
// @Summary      Create a payment link for an accepted budget
// @Description  The checkout is for the budget total with the budget id as external reference. Nothing is stored
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Budget id"
// @Success      201  {object}  response.PaymentLinkResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /budgets/{id}/payment-link [post]
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	id := c.Param("id")
	link, err := h.usecase.CreateForBudget(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapPaymentLinkError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentLink(id, link))
}

func mapPaymentLinkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotAccepted):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_ACCEPTED", "Only accepted budgets can be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment gateway rejected the credentials", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_GATEWAY_BAD_REQUEST", "Payment gateway rejected the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
