package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/controller/http/middlewares"
	"github.com/mizusawa-dev/swimtrack/internal/domain/dto"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

type AuthHandler struct {
	auth      *service.AuthService
	validator *validator.Validate
	logger    *zap.SugaredLogger
	ttl       time.Duration
}

func NewAuthHandler(auth *service.AuthService, ttl time.Duration, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		validator: validator.New(),
		logger:    logger,
		ttl:       ttl,
	}
}

// Login verifies the credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.ttl),
	})
	h.logger.Infow("login", "user", user.Username)
	return c.JSON(http.StatusOK, user)
}

// Logout drops the session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middlewares.SessionCookie)
	if err == nil && cookie.Value != "" {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Errorf("failed to delete session: %v", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.NoContent(http.StatusNoContent)
}

// Session returns the logged-in user.
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, middlewares.CurrentUser(c))
}
