package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nextpath/app/port"
)

// TokenRepository implements port.TokenRepository for PostgreSQL. Revoked
// tokens are tracked by jti; rows become garbage once the token itself
// would have expired and are reaped by DeleteExpired.
type TokenRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTokenRepository creates a new PostgreSQL token repository
func NewTokenRepository(db DatabaseIface, logger *slog.Logger) port.TokenRepository {
	return &TokenRepository{
		db:     db,
		logger: logger.With("component", "token_repository"),
	}
}

// Revoke blacklists a token by its jti. Revoking an already revoked
// token is a no-op.
func (r *TokenRepository) Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens (jti, expires_at, revoked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (jti) DO NOTHING`

	_, err := r.db.Exec(ctx, query, jti, expiresAt, time.Now())
	if err != nil {
		r.logger.Error("failed to revoke token", "jti", jti, "error", err)
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	r.logger.Info("token revoked", "jti", jti)
	return nil
}

// IsRevoked reports whether a token's jti is on the blacklist.
func (r *TokenRepository) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`

	var revoked bool
	if err := r.db.QueryRow(ctx, query, jti).Scan(&revoked); err != nil {
		r.logger.Error("failed to check token revocation", "jti", jti, "error", err)
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return revoked, nil
}

// DeleteExpired removes blacklist entries for tokens that are past their
// own expiry and can no longer be presented.
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM revoked_tokens WHERE expires_at < CURRENT_TIMESTAMP`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.logger.Error("failed to cleanup expired revocations", "error", err)
		return 0, fmt.Errorf("failed to cleanup expired revocations: %w", err)
	}

	rowsAffected := result.RowsAffected()
	r.logger.Info("expired revocations cleaned up", "rows_affected", rowsAffected)
	return rowsAffected, nil
}
