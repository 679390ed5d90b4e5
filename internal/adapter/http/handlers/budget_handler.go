package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "presubuild/internal/adapter/http/dto/request"
	response "presubuild/internal/adapter/http/dto/response"
	"presubuild/internal/domain/builder"
	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase"
	"presubuild/pkg"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_STATUS", "Invalid budget status payload", http.StatusBadRequest)
	errInvalidBudgetQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets (presupuestos).
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	now     func() time.Time
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc, now: time.Now}
}

// ListBudgets godoc
// @Summary      List budgets
// @Description  Newest first, filtered by client name or id substring and by status ("todos" for all)
// @Tags         budgets
// @Produce      json
// @Param        q       query     string  false  "Client name or budget id"
// @Param        status  query     string  false  "pendiente, aceptado, rechazado or todos"
// @Success      200     {array}   response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	var query request.BudgetListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidBudgetQuery)
		return
	}

	list, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list, h.now()))
}

// CreateBudget godoc
// @Summary      Create a budget
// @Description  Labor lines referencing unknown catalog items or with quantity <= 0 are skipped
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget  body      request.BudgetDraftRequest  true  "Budget draft"
// @Success      201     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidBudgetPayload, err))
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget, h.now()))
}

// PreviewBudget godoc
// @Summary  Compute the totals of a draft without saving it
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    budget  body      request.BudgetDraftRequest  true  "Budget draft"
// @Success  200     {object}  response.BudgetPreviewResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /budgets/preview [post]
func (h *BudgetHandler) PreviewBudget(c *gin.Context) {
	var payload request.BudgetDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidBudgetPayload, err))
		return
	}

	preview, err := h.usecase.Preview(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreview(preview))
}

// GetBudget godoc
// @Summary  Get a budget
// @Tags     budgets
// @Produce  json
// @Param    id   path      string  true  "Budget id"
// @Success  200  {object}  response.BudgetResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget, h.now()))
}

// UpdateBudget godoc
// @Summary      Edit a budget
// @Description  Replaces client, lines and rates. Id, issue date and status are kept; totals are recomputed
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id      path      string                      true  "Budget id"
// @Param        budget  body      request.BudgetDraftRequest  true  "Budget draft"
// @Success      200     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidBudgetPayload, err))
		return
	}

	budget, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget, h.now()))
}

// DeleteBudget godoc
// @Summary  Delete a budget
// @Tags     budgets
// @Param    id  path  string  true  "Budget id"
// @Success  204
// @Failure  500  {object}  pkg.HTTPError
// @Router   /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateBudgetStatus godoc
// @Summary      Change the status of a budget
// @Description  Only the status is written; every other field stays as stored
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Budget id"
// @Param        status  body      request.BudgetStatusRequest  true  "New status"
// @Success      200     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /budgets/{id}/status [patch]
func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	var payload request.BudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidStatusPayload, err))
		return
	}

	budget, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.BudgetStatus(payload.Status))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget, h.now()))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, builder.ErrValidation),
		errors.Is(err, builder.ErrInvalidMaterial),
		errors.Is(err, builder.ErrInvalidPercentage),
		errors.Is(err, builder.ErrInvalidQuantity),
		errors.Is(err, builder.ErrInvalidUnitPrice),
		errors.Is(err, builder.ErrIndexOutOfRange),
		errors.Is(err, builder.ErrUnknownField):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetStatus):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_STATUS", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "A budget with this id already exists, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
