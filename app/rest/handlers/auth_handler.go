package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"nextpath/app/domain"
	"nextpath/app/port"
	"nextpath/app/rest/middleware"
	"nextpath/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, validator *validator.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register. Registration does not log
// the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	user, err := h.authUsecase.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("user registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, MessageResponse{Message: "User successfully registered"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	token, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, token)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	user, err := h.authUsecase.Me(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, user.Profile())
}

// Logout handles POST /api/auth/logout. The presented token stops
// working immediately.
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := c.Get(middleware.ContextClaims).(*domain.TokenClaims)

	if err := h.authUsecase.Logout(c.Request().Context(), claims); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Successfully logged out"})
}

// Refresh handles POST /api/auth/refresh. The presented token is
// revoked and a fresh one issued in the login envelope.
func (h *AuthHandler) Refresh(c echo.Context) error {
	claims := c.Get(middleware.ContextClaims).(*domain.TokenClaims)

	token, err := h.authUsecase.Refresh(c.Request().Context(), claims)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, token)
}
