package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"nextpath/app/port"
)

// Context keys set by RequireAuth
const (
	ContextUserID    = "user_id"
	ContextUserName  = "user_name"
	ContextUserEmail = "user_email"
	ContextClaims    = "claims"
)

// AuthMiddleware provides bearer token authentication
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth rejects requests without a valid, unrevoked bearer token.
// Failures always produce the same 401 body so callers cannot probe for
// token state.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			rawToken := extractBearerToken(c)
			if rawToken == "" {
				return unauthorized(c)
			}

			claims, err := m.authUsecase.Authenticate(ctx, rawToken)
			if err != nil {
				m.logger.Warn("token authentication failed", "error", err)
				return unauthorized(c)
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserName, claims.Name)
			c.Set(ContextUserEmail, claims.Email)
			c.Set(ContextClaims, claims)

			return next(c)
		}
	}
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "Unauthorized",
	})
}
