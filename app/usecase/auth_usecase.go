package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"nextpath/app/domain"
	"nextpath/app/port"
)

// AuthUseCase implements authentication business logic
type AuthUseCase struct {
	userRepo  port.UserRepository
	tokenRepo port.TokenRepository
	issuer    port.TokenIssuer
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(userRepo port.UserRepository, tokenRepo port.TokenRepository, issuer port.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		issuer:    issuer,
	}
}

// Register creates a new user account. Registration does not log the
// user in; clients call Login afterwards.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a bearer token. A missing user
// and a wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.IssuedToken, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, _, err := uc.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Authenticate verifies a raw bearer token and checks the revocation
// blacklist. Returns the claims the middleware puts on the request.
func (uc *AuthUseCase) Authenticate(ctx context.Context, rawToken string) (*domain.TokenClaims, error) {
	claims, err := uc.issuer.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	revoked, err := uc.tokenRepo.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return claims, nil
}

// Refresh revokes the presented token and issues a fresh one for the
// same user. The old token stops working immediately.
func (uc *AuthUseCase) Refresh(ctx context.Context, claims *domain.TokenClaims) (*domain.IssuedToken, error) {
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if err := uc.tokenRepo.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	token, _, err := uc.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Logout revokes the presented token.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if err := uc.tokenRepo.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Me returns the authenticated user's record.
func (uc *AuthUseCase) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
