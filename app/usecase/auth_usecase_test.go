package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nextpath/app/domain"
	"nextpath/app/mocks"
)

type authMocks struct {
	userRepo  *mocks.MockUserRepository
	tokenRepo *mocks.MockTokenRepository
	issuer    *mocks.MockTokenIssuer
}

func newAuthUseCaseWithMocks(t *testing.T) (*AuthUseCase, authMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := authMocks{
		userRepo:  mocks.NewMockUserRepository(ctrl),
		tokenRepo: mocks.NewMockTokenRepository(ctrl),
		issuer:    mocks.NewMockTokenIssuer(ctrl),
	}

	return NewAuthUseCase(m.userRepo, m.tokenRepo, m.issuer), m
}

func testUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Test User", "test@example.com", "secret-pw")
	require.NoError(t, err)

	return user
}

func testClaims(userID uuid.UUID) *domain.TokenClaims {
	now := time.Now()
	return &domain.TokenClaims{
		JTI:       uuid.New(),
		UserID:    userID,
		Name:      "Test User",
		Email:     "test@example.com",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("creates user without logging in", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)

		m.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		user, err := uc.Register(context.Background(), "Test User", "test@example.com", "secret-pw")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("invalid input fails before hitting the repository", func(t *testing.T) {
		uc, _ := newAuthUseCaseWithMocks(t)

		var vErr *domain.ValidationError

		_, err := uc.Register(context.Background(), "", "test@example.com", "secret-pw")
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "name", vErr.Field)

		_, err = uc.Register(context.Background(), "Test User", "not-an-email", "secret-pw")
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)

		_, err = uc.Register(context.Background(), "Test User", "test@example.com", "short")
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "password", vErr.Field)
	})

	t.Run("duplicate email surfaces ErrEmailTaken", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)

		m.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrEmailTaken)

		_, err := uc.Register(context.Background(), "Test User", "taken@example.com", "secret-pw")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("issues token for valid credentials", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)
		user := testUser(t)

		m.userRepo.EXPECT().
			GetByEmail(gomock.Any(), user.Email).
			Return(user, nil)
		m.issuer.EXPECT().
			Issue(user).
			Return(&domain.IssuedToken{AccessToken: "signed", TokenType: "bearer", ExpiresIn: 3600}, testClaims(user.ID), nil)

		token, err := uc.Login(context.Background(), user.Email, "secret-pw")
		require.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, int64(3600), token.ExpiresIn)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)

		m.userRepo.EXPECT().
			GetByEmail(gomock.Any(), "missing@example.com").
			Return(nil, domain.ErrUserNotFound)

		_, err := uc.Login(context.Background(), "missing@example.com", "secret-pw")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password yields ErrInvalidCredentials", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)
		user := testUser(t)

		m.userRepo.EXPECT().
			GetByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		_, err := uc.Login(context.Background(), user.Email, "wrong-pw")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("valid unrevoked token", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)
		claims := testClaims(uuid.New())

		m.issuer.EXPECT().Verify("raw-token").Return(claims, nil)
		m.tokenRepo.EXPECT().IsRevoked(gomock.Any(), claims.JTI).Return(false, nil)

		got, err := uc.Authenticate(context.Background(), "raw-token")
		require.NoError(t, err)
		assert.Equal(t, claims.UserID, got.UserID)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)
		claims := testClaims(uuid.New())

		m.issuer.EXPECT().Verify("raw-token").Return(claims, nil)
		m.tokenRepo.EXPECT().IsRevoked(gomock.Any(), claims.JTI).Return(true, nil)

		_, err := uc.Authenticate(context.Background(), "raw-token")
		assert.ErrorIs(t, err, domain.ErrTokenRevoked)
	})

	t.Run("verification failure propagates", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)

		m.issuer.EXPECT().Verify("garbage").Return(nil, domain.ErrInvalidToken)

		_, err := uc.Authenticate(context.Background(), "garbage")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestAuthUseCase_Refresh(t *testing.T) {
	t.Run("revokes old token and issues new one", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)
		user := testUser(t)
		claims := testClaims(user.ID)

		m.userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		m.tokenRepo.EXPECT().Revoke(gomock.Any(), claims.JTI, claims.ExpiresAt).Return(nil)
		m.issuer.EXPECT().
			Issue(user).
			Return(&domain.IssuedToken{AccessToken: "fresh", TokenType: "bearer", ExpiresIn: 3600}, testClaims(user.ID), nil)

		token, err := uc.Refresh(context.Background(), claims)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token.AccessToken)
	})

	t.Run("deleted user maps to invalid token", func(t *testing.T) {
		uc, m := newAuthUseCaseWithMocks(t)
		claims := testClaims(uuid.New())

		m.userRepo.EXPECT().GetByID(gomock.Any(), claims.UserID).Return(nil, domain.ErrUserNotFound)

		_, err := uc.Refresh(context.Background(), claims)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	uc, m := newAuthUseCaseWithMocks(t)
	claims := testClaims(uuid.New())

	m.tokenRepo.EXPECT().Revoke(gomock.Any(), claims.JTI, claims.ExpiresAt).Return(nil)

	assert.NoError(t, uc.Logout(context.Background(), claims))
}

func TestAuthUseCase_Me(t *testing.T) {
	uc, m := newAuthUseCaseWithMocks(t)
	user := testUser(t)

	m.userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	got, err := uc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}
