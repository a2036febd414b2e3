package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/domain/dto"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type AthleteHandler struct {
	users     *service.UserService
	rankings  *service.RankingService
	validator *validator.Validate
	logger    *zap.SugaredLogger
}

func NewAthleteHandler(users *service.UserService, rankings *service.RankingService, logger *zap.SugaredLogger) *AthleteHandler {
	return &AthleteHandler{
		users:     users,
		rankings:  rankings,
		validator: validator.New(),
		logger:    logger,
	}
}

func (h *AthleteHandler) List(c echo.Context) error {
	athletes, err := h.users.Athletes(c.Request().Context())
	if err != nil {
		h.logger.Errorf("failed to list athletes: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, athletes)
}

func (h *AthleteHandler) Create(c echo.Context) error {
	var req dto.CreateAthleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	athlete, err := h.users.Create(c.Request().Context(), req.ToEntity(), req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, athlete)
}

func (h *AthleteHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateAthleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	athlete, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if req.DisplayName != "" {
		athlete.DisplayName = req.DisplayName
	}
	if req.Kana != "" {
		athlete.Kana = req.Kana
	}
	if req.Gender != "" {
		athlete.Gender = entity.Gender(req.Gender)
	}
	if req.Active != nil {
		athlete.Active = *req.Active
	}

	updated, err := h.users.Update(c.Request().Context(), athlete)
	if err != nil {
		return respondError(c, err)
	}
	if req.Password != "" {
		if err := h.users.SetPassword(c.Request().Context(), id, req.Password); err != nil {
			return respondError(c, err)
		}
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes the athlete and all of their records.
func (h *AthleteHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := h.users.Get(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		h.logger.Errorf("failed to delete athlete %d: %v", id, err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Bests returns one athlete's personal bests per style, distance and pool.
func (h *AthleteHandler) Bests(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	bests, err := h.rankings.PersonalBests(c.Request().Context(), id)
	if err != nil {
		h.logger.Errorf("failed to compute personal bests: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, bests)
}
