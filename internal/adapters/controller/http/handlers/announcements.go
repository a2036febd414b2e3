package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/controller/http/middlewares"
	"github.com/mizusawa-dev/swimtrack/internal/domain/dto"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type AnnouncementHandler struct {
	announcements *service.AnnouncementService
	validator     *validator.Validate
	logger        *zap.SugaredLogger
}

func NewAnnouncementHandler(announcements *service.AnnouncementService, logger *zap.SugaredLogger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcements: announcements,
		validator:     validator.New(),
		logger:        logger,
	}
}

// Latest returns the newest announcement, or 200 with null when none exists
// yet; an empty board is not an error.
func (h *AnnouncementHandler) Latest(c echo.Context) error {
	announcement, err := h.announcements.Latest(c.Request().Context())
	if err != nil {
		if service.IsNotFound(err) {
			return c.JSON(http.StatusOK, nil)
		}
		h.logger.Errorf("failed to load announcement: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) Publish(c echo.Context) error {
	var req dto.AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	announcement, err := h.announcements.Publish(c.Request().Context(), req.Content, middlewares.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, announcement)
}
