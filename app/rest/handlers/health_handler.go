package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DBHealthChecker is the slice of the database driver the health
// endpoints need.
type DBHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UpstreamHealthChecker reports reachability of the chat upstream.
type UpstreamHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness probes
type HealthHandler struct {
	db     DBHealthChecker
	chat   UpstreamHealthChecker
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db DBHealthChecker, chat UpstreamHealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		chat:   chat,
		logger: logger.With("component", "health_handler"),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "nextpath-api",
	})
}

// Live handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready handles GET /health/ready. Readiness requires a reachable
// database. The chat upstream is reported but does not gate readiness,
// since every endpoint except /api/chat works without it.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.db.HealthCheck(ctx); err != nil {
		h.logger.Error("readiness check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
		})
	}

	chatStatus := "ok"
	if h.chat != nil {
		if err := h.chat.HealthCheck(ctx); err != nil {
			h.logger.Warn("chat upstream unreachable", "error", err)
			chatStatus = "unreachable"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":        "ready",
		"chat_upstream": chatStatus,
	})
}
