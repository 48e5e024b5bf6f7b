package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"nextpath/app/domain"
	apperrors "nextpath/app/utils/errors"
	"nextpath/app/utils/validator"
)

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// errInvalidBody is returned by handlers when request binding fails.
var errInvalidBody = apperrors.New(apperrors.ErrCodeBadRequest, "Invalid request body")

// respondError maps domain and validation errors onto the API's error
// envelopes. 422 bodies carry a field→message map; credential failures
// always produce the same opaque 401 body.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var fieldErr *validator.ValidationError
	if errors.As(err, &fieldErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error": fieldErr.Errors,
		})
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error": map[string]string{domainErr.Field: domainErr.Message},
		})
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error": map[string]string{"email": "The email has already been taken."},
		})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenRevoked),
		errors.Is(err, domain.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})

	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})

	case errors.Is(err, domain.ErrGoalNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Goal not found"})

	case errors.Is(err, domain.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})

	case errors.Is(err, domain.ErrArticleNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})

	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})

	case errors.Is(err, domain.ErrUpstream):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Upstream service unavailable"})
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		if len(appErr.Fields) > 0 {
			return c.JSON(appErr.StatusCode, map[string]interface{}{
				"error": appErr.Fields,
			})
		}
		return c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message})
	}

	logger.Error("unhandled error", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
