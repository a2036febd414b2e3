package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/postgres"
	"github.com/mizusawa-dev/swimtrack/internal/domain/dto"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
	"github.com/mizusawa-dev/swimtrack/internal/domain/ranking"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type RecordHandler struct {
	records   *service.RecordService
	rankings  *service.RankingService
	validator *validator.Validate
	logger    *zap.SugaredLogger
}

func NewRecordHandler(records *service.RecordService, rankings *service.RankingService, logger *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{
		records:   records,
		rankings:  rankings,
		validator: validator.New(),
		logger:    logger,
	}
}

// filterFromQuery builds the store filter from list query parameters. The
// window/from/to handling mirrors the history view's date ranges.
func filterFromQuery(c echo.Context) postgres.RecordFilter {
	var filter postgres.RecordFilter
	if v, err := strconv.ParseUint(c.QueryParam("studentId"), 10, 64); err == nil {
		filter.StudentID = uint(v)
	}
	if v := c.QueryParam("style"); v != "" {
		filter.Style = entity.Style(v)
	}
	if v, err := strconv.Atoi(c.QueryParam("poolLength")); err == nil {
		filter.PoolLength = v
	}

	now := time.Now()
	dr := ranking.DateRange{Window: ranking.Window(c.QueryParam("window"))}
	if dr.Window == "" {
		if v, err := time.Parse("2006-01-02", c.QueryParam("from")); err == nil {
			dr.From = v
		}
		if v, err := time.Parse("2006-01-02", c.QueryParam("to")); err == nil {
			dr.To = v
		}
	}
	filter.From, filter.To = dr.Bounds(now)
	return filter
}

func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.records.GetAll(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		h.logger.Errorf("failed to list records: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ranking.FromEntities(records))
}

func (h *RecordHandler) Create(c echo.Context) error {
	var req dto.RecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	record, err := h.records.Create(c.Request().Context(), req.ToEntity())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *RecordHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.RecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	record := req.ToEntity()
	record.ID = id
	updated, err := h.records.Update(c.Request().Context(), &record)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.records.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Competitions lists records swum at competitions.
func (h *RecordHandler) Competitions(c echo.Context) error {
	records, err := h.records.Competitions(c.Request().Context())
	if err != nil {
		h.logger.Errorf("failed to list competition records: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ranking.FromEntities(records))
}

// Best returns the best-time grouping, nested by style or by distance.
func (h *RecordHandler) Best(c echo.Context) error {
	filter := ranking.BestTimeFilter{Style: entity.Style(c.QueryParam("style"))}
	if v, err := strconv.Atoi(c.QueryParam("poolLength")); err == nil {
		filter.PoolLength = v
	}
	byDistance := c.QueryParam("groupBy") == "distance"

	result, err := h.rankings.BestTimes(c.Request().Context(), filter, byDistance)
	if err != nil {
		h.logger.Errorf("failed to compute best times: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Export streams the filtered records as CSV.
func (h *RecordHandler) Export(c echo.Context) error {
	data, err := h.records.ExportCSV(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		h.logger.Errorf("failed to export records: %v", err)
		return respondError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="records.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
