package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/controller/http/middlewares"
	"github.com/mizusawa-dev/swimtrack/internal/domain/dto"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type DocumentHandler struct {
	documents  *service.DocumentService
	categories *service.CategoryService
	validator  *validator.Validate
	logger     *zap.SugaredLogger
}

func NewDocumentHandler(documents *service.DocumentService, categories *service.CategoryService, logger *zap.SugaredLogger) *DocumentHandler {
	return &DocumentHandler{
		documents:  documents,
		categories: categories,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *DocumentHandler) List(c echo.Context) error {
	documents, err := h.documents.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Errorf("failed to list documents: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, documents)
}

// Upload accepts a multipart form with a "file" part, an optional "title"
// and an optional "categoryId".
func (h *DocumentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}

	document := entity.Document{
		Title:       title,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		UploadedBy:  middlewares.CurrentUser(c).ID,
	}
	if v, err := strconv.ParseUint(c.FormValue("categoryId"), 10, 64); err == nil {
		categoryID := uint(v)
		document.CategoryID = &categoryID
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer src.Close()

	created, err := h.documents.Upload(c.Request().Context(), document, src)
	if err != nil {
		h.logger.Errorf("failed to store document: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Download streams the stored file with its original name.
func (h *DocumentHandler) Download(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	document, err := h.documents.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Attachment(h.documents.FilePath(document), document.FileName)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.documents.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DocumentHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Errorf("failed to list categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *DocumentHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	category, err := h.categories.Create(c.Request().Context(), &entity.Category{Name: req.Name})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}
