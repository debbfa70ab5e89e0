package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/gatehouse/backend/internal/crypto"
	"github.com/gatehouse/backend/internal/store"
)

const createSessionStmt = `
	INSERT INTO sessions (token, user_id, ip_address, issued_at, expires_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING token
`

// Issuer mints session rows for verified users.
type Issuer struct {
	store  *store.Normalizer
	logger *slog.Logger
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(n *store.Normalizer, logger *slog.Logger, ttl time.Duration) *Issuer {
	return &Issuer{store: n, logger: logger, ttl: ttl, now: time.Now}
}

// Issue creates one session row for the user and returns its bearer token.
// Any insert failure collapses to ErrStoreWrite; the token never leaves this
// process unless the row landed.
func (i *Issuer) Issue(ctx context.Context, userID, clientAddr string) (string, error) {
	token, err := crypto.NewSessionToken()
	if err != nil {
		i.logger.Error("token generation failed", "error", err)
		return "", ErrStoreWrite
	}

	issuedAt := i.now().UTC()
	_, err = i.store.ExecuteSingleRow(ctx, createSessionStmt,
		token, userID, clientAddr, issuedAt, issuedAt.Add(i.ttl))
	if err != nil {
		i.logger.Warn("session insert failed", "error", err, "user_id", userID)
		return "", ErrStoreWrite
	}

	return token, nil
}
