package usecase

import (
	"context"
	"strings"

	"nextpath/app/domain"
	"nextpath/app/port"
)

// ChatUseCase forwards free-text messages to the model-serving endpoint.
type ChatUseCase struct {
	gateway port.ChatGateway
}

// NewChatUseCase creates a new ChatUseCase instance
func NewChatUseCase(gateway port.ChatGateway) *ChatUseCase {
	return &ChatUseCase{
		gateway: gateway,
	}
}

// Send relays a message and its reply. Blank messages are rejected
// before touching the upstream.
func (uc *ChatUseCase) Send(ctx context.Context, message string) (*domain.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.NewValidationError("message", message, "message is required")
	}

	return uc.gateway.Send(ctx, message)
}
