package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the authenticated identity carried by a verified bearer
// token. Set on the request context by the auth middleware.
type TokenClaims struct {
	JTI       uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is the envelope returned by login and refresh.
type IssuedToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ChatReply is the answer relayed from the external model-serving endpoint.
type ChatReply struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}
