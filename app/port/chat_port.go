package port

//go:generate mockgen -source=chat_port.go -destination=../mocks/mock_chat_port.go

import (
	"context"

	"nextpath/app/domain"
)

// ChatUsecase forwards free-text messages to the model-serving endpoint.
type ChatUsecase interface {
	Send(ctx context.Context, message string) (*domain.ChatReply, error)
}

// ChatGateway is the HTTP client boundary to the external model service.
type ChatGateway interface {
	Send(ctx context.Context, message string) (*domain.ChatReply, error)
	HealthCheck(ctx context.Context) error
}
