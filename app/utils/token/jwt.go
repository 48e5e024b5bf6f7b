package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nextpath/app/domain"
)

// JWTConfig holds JWT generation configuration.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// accessClaims represents the JWT claims carried by an access token.
type accessClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 access tokens.
// Implements port.TokenIssuer.
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer creates a new JWT issuer.
func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Issue generates a signed token for the user and returns both the wire
// envelope and the parsed claims (the caller needs the jti for rotation).
func (j *JWTIssuer) Issue(user *domain.User) (*domain.IssuedToken, *domain.TokenClaims, error) {
	now := time.Now()
	jti := uuid.New()
	expiresAt := now.Add(j.cfg.TTL)

	claims := accessClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Issuer:    j.cfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	issued := &domain.IssuedToken{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(j.cfg.TTL.Seconds()),
	}
	parsed := &domain.TokenClaims{
		JTI:       jti,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}
	return issued, parsed, nil
}

// Verify parses and validates a raw token string. Signature, expiry and
// issuer are all checked; revocation is the usecase's concern.
func (j *JWTIssuer) Verify(rawToken string) (*domain.TokenClaims, error) {
	var claims accessClaims

	_, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.cfg.Secret), nil
	}, jwt.WithIssuer(j.cfg.Issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	parsed := &domain.TokenClaims{
		JTI:    jti,
		UserID: userID,
		Name:   claims.Name,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		parsed.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		parsed.ExpiresAt = claims.ExpiresAt.Time
	}
	return parsed, nil
}
