package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "presubuild/internal/adapter/http/dto/request"
	response "presubuild/internal/adapter/http/dto/response"
	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase"
	"presubuild/pkg"
)

var (
	errInvalidCatalogPayload    = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog item payload", http.StatusBadRequest)
	errInvalidAdjustmentPayload = pkg.NewDomainErrorSimple("INVALID_PRICE_ADJUSTMENT", "Invalid price adjustment payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the price catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary      List catalog items
// @Description  Items sorted by category and name, filtered by a name or category substring
// @Tags         catalog
// @Produce      json
// @Param        q    query     string  false  "Name or category filter"
// @Success      200  {array}   response.CatalogItemResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

// GetCatalogItem godoc
// @Summary  Get a catalog item
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Catalog item id"
// @Success  200  {object}  response.CatalogItemResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /catalog/{id} [get]
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	item, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

// CreateCatalogItem godoc
// @Summary  Create a catalog item
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    item  body      request.CatalogItemRequest  true  "Catalog item"
// @Success  201   {object}  response.CatalogItemResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /catalog [post]
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	h.saveCatalogItem(c, "", http.StatusCreated)
}

// UpdateCatalogItem godoc
// @Summary      Replace a catalog item
// @Description  Saved budgets keep the snapshot taken when their lines were added
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Catalog item id"
// @Param        item  body      request.CatalogItemRequest  true  "Catalog item"
// @Success      200   {object}  response.CatalogItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /catalog/{id} [put]
func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	h.saveCatalogItem(c, c.Param("id"), http.StatusOK)
}

func (h *CatalogHandler) saveCatalogItem(c *gin.Context, id string, status int) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidCatalogPayload, err))
		return
	}

	item, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(status, response.FromCatalogItem(item))
}

// DeleteCatalogItem godoc
// @Summary  Delete a catalog item
// @Tags     catalog
// @Param    id  path  string  true  "Catalog item id"
// @Success  204
// @Failure  500  {object}  pkg.HTTPError
// @Router   /catalog/{id} [delete]
func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AdjustPrices godoc
// @Summary      Bulk price update
// @Description  Applies a percentage to every item of a category, or of the whole catalog when category is empty
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        adjustment  body      request.PriceAdjustmentRequest  true  "Adjustment"
// @Success      200         {array}   response.CatalogItemResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /catalog/price-adjustment [post]
func (h *CatalogHandler) AdjustPrices(c *gin.Context) {
	var payload request.PriceAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidAdjustmentPayload, err))
		return
	}

	items, err := h.usecase.AdjustPrices(c.Request.Context(), *payload.Percent, payload.Category)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

// ListUnits godoc
// @Summary  List measurement units
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  response.UnitsResponse
// @Router   /catalog/units [get]
func (h *CatalogHandler) ListUnits(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromUnitTypes(entities.UnitTypes()))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogItemID), errors.Is(err, usecase.ErrInvalidCatalogItem):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_PRICE_ADJUSTMENT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
