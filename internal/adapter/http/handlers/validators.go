package handlers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"presubuild/internal/domain/entities"
	"presubuild/pkg"
)

// RegisterValidators adds the custom binding tags used by the request DTOs:
//
//	unit           one of entities.UnitTypes()
//	budget_status  pendiente, aceptado or rechazado
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return entities.UnitType(strings.TrimSpace(fl.Field().String())).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("budget_status", func(fl validator.FieldLevel) bool {
		return entities.BudgetStatus(fl.Field().String()).IsValid()
	})
}

// invalidPayload builds a 400 error naming the fields that failed binding.
func invalidPayload(base *pkg.AppError, err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return base
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s %s", fe.Field(), validationErrorMessage(fe)))
	}
	sort.Strings(fields)
	return pkg.NewDomainError(base.Code, base.Message+": "+strings.Join(fields, ", "), err, base.HTTPStatus)
}

func validationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "unit":
		return "must be one of " + strings.Join(unitNames(), ", ")
	case "budget_status":
		return "must be pendiente, aceptado or rechazado"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email"
	default:
		return "is invalid"
	}
}

func unitNames() []string {
	units := entities.UnitTypes()
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, string(u))
	}
	return out
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
