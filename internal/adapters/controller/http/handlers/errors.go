package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 and must have been logged by the caller.
func respondError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case service.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, errorz.ErrInvalidCredentials),
		errors.Is(err, errorz.ErrAccountDisabled),
		errors.Is(err, errorz.ErrInvalidSession):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errorz.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errorz.ErrInvalidTimeFormat),
		errors.Is(err, errorz.ErrInvalidStyle),
		errors.Is(err, errorz.ErrInvalidDistance),
		errors.Is(err, errorz.ErrInvalidPoolLength),
		errors.Is(err, errorz.ErrUsernameTaken),
		errors.As(err, &validationErrs):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
