package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nextpath/app/domain"
	"nextpath/app/mocks"
	"nextpath/app/rest/middleware"
	"nextpath/app/utils/logger"
	"nextpath/app/utils/validator"
)

func newAuthHandlerWithMock(t *testing.T) (*AuthHandler, *mocks.MockAuthUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authUsecase := mocks.NewMockAuthUsecase(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewAuthHandler(authUsecase, validator.New(), testLogger), authUsecase
}

func jsonContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("valid registration returns 201 without a token", func(t *testing.T) {
		h, authUsecase := newAuthHandlerWithMock(t)

		user, err := domain.NewUser("Test User", "test@example.com", "secret-pw")
		require.NoError(t, err)

		authUsecase.EXPECT().
			Register(gomock.Any(), "Test User", "test@example.com", "secret-pw").
			Return(user, nil)

		c, rec := jsonContext(t, http.MethodPost, "/api/auth/register",
			`{"name":"Test User","email":"test@example.com","password":"secret-pw"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"User successfully registered"}`, rec.Body.String())
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		h, _ := newAuthHandlerWithMock(t)

		c, rec := jsonContext(t, http.MethodPost, "/api/auth/register", `{"name":`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})

	t.Run("validation failures return a field map", func(t *testing.T) {
		h, _ := newAuthHandlerWithMock(t)

		c, rec := jsonContext(t, http.MethodPost, "/api/auth/register",
			`{"name":"","email":"not-an-email","password":"short"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name"`)
		assert.Contains(t, rec.Body.String(), `"email"`)
		assert.Contains(t, rec.Body.String(), `"password"`)
	})

	t.Run("duplicate email returns 422", func(t *testing.T) {
		h, authUsecase := newAuthHandlerWithMock(t)

		authUsecase.EXPECT().
			Register(gomock.Any(), "Test User", "taken@example.com", "secret-pw").
			Return(nil, domain.ErrEmailTaken)

		c, rec := jsonContext(t, http.MethodPost, "/api/auth/register",
			`{"name":"Test User","email":"taken@example.com","password":"secret-pw"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "already been taken")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials return the token envelope", func(t *testing.T) {
		h, authUsecase := newAuthHandlerWithMock(t)

		authUsecase.EXPECT().
			Login(gomock.Any(), "test@example.com", "secret-pw").
			Return(&domain.IssuedToken{AccessToken: "signed", TokenType: "bearer", ExpiresIn: 3600}, nil)

		c, rec := jsonContext(t, http.MethodPost, "/api/auth/login",
			`{"email":"test@example.com","password":"secret-pw"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer","expires_in":3600}`, rec.Body.String())
	})

	t.Run("bad credentials return opaque 401", func(t *testing.T) {
		h, authUsecase := newAuthHandlerWithMock(t)

		authUsecase.EXPECT().
			Login(gomock.Any(), "test@example.com", "wrong").
			Return(nil, domain.ErrInvalidCredentials)

		c, rec := jsonContext(t, http.MethodPost, "/api/auth/login",
			`{"email":"test@example.com","password":"wrong"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h, authUsecase := newAuthHandlerWithMock(t)

	user, err := domain.NewUser("Test User", "test@example.com", "secret-pw")
	require.NoError(t, err)

	authUsecase.EXPECT().Me(gomock.Any(), user.ID).Return(user, nil)

	c, rec := jsonContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.ContextUserID, user.ID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"test@example.com"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Logout(t *testing.T) {
	h, authUsecase := newAuthHandlerWithMock(t)

	claims := &domain.TokenClaims{
		JTI:       uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	authUsecase.EXPECT().Logout(gomock.Any(), claims).Return(nil)

	c, rec := jsonContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.ContextClaims, claims)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully logged out"}`, rec.Body.String())
}

func TestAuthHandler_Refresh(t *testing.T) {
	h, authUsecase := newAuthHandlerWithMock(t)

	claims := &domain.TokenClaims{
		JTI:       uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	authUsecase.EXPECT().
		Refresh(gomock.Any(), claims).
		Return(&domain.IssuedToken{AccessToken: "fresh", TokenType: "bearer", ExpiresIn: 3600}, nil)

	c, rec := jsonContext(t, http.MethodPost, "/api/auth/refresh", "")
	c.Set(middleware.ContextClaims, claims)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fresh"`)
}
