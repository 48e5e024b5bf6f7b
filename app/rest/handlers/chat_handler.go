package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"nextpath/app/port"
	"nextpath/app/utils/validator"
)

// ChatHandler proxies free-text messages to the model-serving endpoint
type ChatHandler struct {
	chatUsecase port.ChatUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase port.ChatUsecase, validator *validator.Validator, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
		logger:      logger.With("component", "chat_handler"),
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Send handles POST /api/chat
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	reply, err := h.chatUsecase.Send(c.Request().Context(), req.Message)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, reply)
}
