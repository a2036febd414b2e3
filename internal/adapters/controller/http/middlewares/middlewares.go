package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

// SessionCookie is the name of the auth cookie the API issues on login.
const SessionCookie = "swimtrack_session"

// userKey is where Authorized stores the resolved user on the echo context.
const userKey = "user"

type Handler struct {
	auth   *service.AuthService
	logger *zap.SugaredLogger
}

func New(auth *service.AuthService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Authorized resolves the session cookie to a user and rejects the request
// with 401 when there is none.
func (h *Handler) Authorized(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		user, err := h.auth.Resolve(c.Request().Context(), cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		c.Set(userKey, user)
		return next(c)
	}
}

// CoachOnly allows coaches and admins through.
func (h *Handler) CoachOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.IsCoach() {
			return echo.NewHTTPError(http.StatusForbidden, "coach role required")
		}
		return next(c)
	}
}

// AdminOnly allows admins through.
func (h *Handler) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

// RequestLogger writes one line per request through the zap logger.
func (h *Handler) RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		h.logger.Infow("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
		)
		return err
	}
}

// CurrentUser returns the user Authorized stored, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userKey).(*entity.User)
	return user
}
