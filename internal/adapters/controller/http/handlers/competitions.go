package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/domain/dto"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type CompetitionHandler struct {
	competitions *service.CompetitionService
	validator    *validator.Validate
	logger       *zap.SugaredLogger
}

func NewCompetitionHandler(competitions *service.CompetitionService, logger *zap.SugaredLogger) *CompetitionHandler {
	return &CompetitionHandler{
		competitions: competitions,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *CompetitionHandler) List(c echo.Context) error {
	competitions, err := h.competitions.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Errorf("failed to list competitions: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, competitions)
}

func (h *CompetitionHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	competition, err := h.competitions.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, competition)
}

func (h *CompetitionHandler) Create(c echo.Context) error {
	var req dto.CompetitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	competition := req.ToEntity()
	created, err := h.competitions.Create(c.Request().Context(), &competition)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CompetitionHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.CompetitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	competition := req.ToEntity()
	competition.ID = id
	updated, err := h.competitions.Update(c.Request().Context(), &competition)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CompetitionHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.competitions.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
