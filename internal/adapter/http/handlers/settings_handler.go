package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	request "presubuild/internal/adapter/http/dto/request"
	"presubuild/internal/usecase"
	"presubuild/pkg"
)

const logoFormField = "logo"

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
	errMissingLogo            = pkg.NewDomainErrorSimple("INVALID_LOGO", "Missing logo file", http.StatusBadRequest)
)

// SettingsHandler handles the single business settings record.
type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary      Get business settings
// @Description  Returns the defaults while nothing was saved
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entities.BusinessSettings
// @Failure      500  {object}  pkg.HTTPError
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSettings godoc
// @Summary  Replace business settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    settings  body      request.SettingsRequest  true  "Settings"
// @Success  200       {object}  entities.BusinessSettings
// @Failure  400       {object}  pkg.HTTPError
// @Router   /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(errInvalidSettingsPayload, err))
		return
	}

	s, err := h.usecase.Set(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// UploadLogo godoc
// @Summary      Upload the business logo
// @Description  Images up to 1MB; stored as a PNG data URL fitted in 400x400
// @Tags         settings
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Logo image"
// @Success      200   {object}  entities.BusinessSettings
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Router       /settings/logo [put]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile(logoFormField)
	if err != nil {
		writeError(c, errMissingLogo)
		return
	}
	if fh.Size > usecase.MaxLogoBytes {
		writeError(c, mapSettingsError(usecase.ErrLogoTooLarge))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	defer f.Close()

	// one byte over the limit is enough for the use case to reject it
	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxLogoBytes+1))
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}

	s, err := h.usecase.SetLogo(c.Request.Context(), data)
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLogoTooLarge):
		return pkg.NewDomainErrorSimple("LOGO_TOO_LARGE", "La imagen es muy pesada (máx 1MB)", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrInvalidLogo):
		return pkg.NewDomainErrorSimple("INVALID_LOGO", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSettings):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
