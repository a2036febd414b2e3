package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type RankingHandler struct {
	rankings    *service.RankingService
	growthLimit int
	logger      *zap.SugaredLogger
}

// NewRankingHandler takes the default growth cap; callers can override it
// per request with the limit query parameter (0 = no cap).
func NewRankingHandler(rankings *service.RankingService, growthLimit int, logger *zap.SugaredLogger) *RankingHandler {
	return &RankingHandler{
		rankings:    rankings,
		growthLimit: growthLimit,
		logger:      logger,
	}
}

// IM returns the monthly individual-medley podium; defaults to the current
// month.
func (h *RankingHandler) IM(c echo.Context) error {
	now := time.Now()
	year := now.Year()
	month := now.Month()
	if v, err := strconv.Atoi(c.QueryParam("year")); err == nil {
		year = v
	}
	if v, err := strconv.Atoi(c.QueryParam("month")); err == nil {
		if v < 1 || v > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, "month must be 1-12")
		}
		month = time.Month(v)
	}

	result, err := h.rankings.IM(c.Request().Context(), year, month)
	if err != nil {
		h.logger.Errorf("failed to compute IM rankings: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Growth returns the even-month growth ranking.
func (h *RankingHandler) Growth(c echo.Context) error {
	limit := h.growthLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v >= 0 {
		limit = v
	}

	result, err := h.rankings.Growth(c.Request().Context(), limit)
	if err != nil {
		h.logger.Errorf("failed to compute growth rankings: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
