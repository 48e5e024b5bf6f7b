package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"nextpath/app/domain"
	"nextpath/app/port"
)

const (
	chatRequestTimeout = 30 * time.Second
	healthTimeout      = 5 * time.Second
)

// ChatGateway is the HTTP client boundary to the external model-serving
// endpoint. Messages are forwarded verbatim; the reply body is relayed
// back unchanged.
type ChatGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type chatRequest struct {
	Message string `json:"message"`
}

// NewChatGateway creates a gateway targeting baseURL.
func NewChatGateway(baseURL string, logger *slog.Logger) port.ChatGateway {
	return &ChatGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
		logger: logger.With("component", "chat_gateway"),
	}
}

// Send forwards a message to the model endpoint and relays its reply.
// Transport failures and non-200 statuses map to domain.ErrUpstream.
func (g *ChatGateway) Send(ctx context.Context, message string) (*domain.ChatReply, error) {
	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("chat upstream unreachable", "url", g.baseURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			g.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		g.logger.Error("chat upstream returned non-200 status",
			"status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var reply domain.ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		g.logger.Error("failed to decode chat reply", "error", err)
		return nil, fmt.Errorf("%w: malformed upstream reply", domain.ErrUpstream)
	}

	g.logger.Info("chat reply relayed", "status", reply.Status, "response_length", len(reply.Response))
	return &reply, nil
}

// HealthCheck pings the model endpoint's health route.
func (g *ChatGateway) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: upstream status %d", domain.ErrUpstream, resp.StatusCode)
	}

	return nil
}
