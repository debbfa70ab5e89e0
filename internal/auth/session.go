package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/gatehouse/backend/internal/store"
)

const (
	sessionByTokenStmt = `SELECT * FROM sessions WHERE token = $1`
	deleteSessionStmt  = `DELETE FROM sessions WHERE token = $1`
)

// SessionChecker validates bearer tokens against the session store. It is
// what the gate middleware calls on every protected request.
type SessionChecker struct {
	store  *store.Normalizer
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionChecker(n *store.Normalizer, logger *slog.Logger) *SessionChecker {
	return &SessionChecker{store: n, logger: logger, now: time.Now}
}

// Check reports whether token identifies exactly one live session. Unknown
// token, duplicate rows, expiry and store failures are all ErrNoSession;
// callers never learn which, only the logs do.
func (s *SessionChecker) Check(ctx context.Context, token string) error {
	row, err := s.store.ExecuteSingleRow(ctx, sessionByTokenStmt, token)
	if err != nil {
		s.logger.Debug("session lookup failed", "error", err)
		return ErrNoSession
	}

	if expiresAt, ok := row["expires_at"].(time.Time); ok {
		if !expiresAt.After(s.now()) {
			s.logger.Debug("session expired", "expires_at", expiresAt)
			return ErrNoSession
		}
	}

	return nil
}

// Revoke deletes the session row for token. A token with no session is not
// an error; revocation is idempotent.
func (s *SessionChecker) Revoke(ctx context.Context, token string) error {
	if _, err := s.store.ExecuteSingleBatch(ctx, deleteSessionStmt, token); err != nil {
		s.logger.Warn("session delete failed", "error", err)
		return ErrStoreWrite
	}
	return nil
}
