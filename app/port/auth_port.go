package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nextpath/app/domain"
)

// AuthUsecase defines authentication business logic
type AuthUsecase interface {
	// Credential flows
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.IssuedToken, error)

	// Token lifecycle
	Authenticate(ctx context.Context, rawToken string) (*domain.TokenClaims, error)
	Refresh(ctx context.Context, claims *domain.TokenClaims) (*domain.IssuedToken, error)
	Logout(ctx context.Context, claims *domain.TokenClaims) error

	// Profile
	Me(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenRepository defines the revocation blacklist. Revoked entries only
// need to survive until the token's own expiry.
type TokenRepository interface {
	Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// TokenIssuer signs and verifies bearer tokens
type TokenIssuer interface {
	Issue(user *domain.User) (*domain.IssuedToken, *domain.TokenClaims, error)
	Verify(rawToken string) (*domain.TokenClaims, error)
}
