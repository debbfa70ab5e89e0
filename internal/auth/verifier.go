package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gatehouse/backend/internal/password"
	"github.com/gatehouse/backend/internal/store"
)

const userByEmailStmt = `SELECT * FROM users WHERE email = $1`

// Verifier checks submitted credentials against stored users. The lookup
// fetches by email only; the password hash is verified locally so the query
// shape leaks nothing about whether the password matched.
type Verifier struct {
	store  *store.Normalizer
	logger *slog.Logger
}

func NewVerifier(n *store.Normalizer, logger *slog.Logger) *Verifier {
	return &Verifier{store: n, logger: logger}
}

// Verify returns the matching user row on success. Empty credentials fail
// before any store round trip. Unknown email and wrong password are both
// ErrNoMatch; every other failure collapses to ErrStoreRead with detail
// only in the logs.
func (v *Verifier) Verify(ctx context.Context, email, pass string) (store.Object, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(pass) == "" {
		return nil, ErrPasswordRequired
	}

	user, err := v.store.ExecuteSingleRow(ctx, userByEmailStmt, email)
	if errors.Is(err, store.ErrNoSuchRow) {
		return nil, ErrNoMatch
	}
	if err != nil {
		v.logger.Warn("user lookup failed", "error", err)
		return nil, ErrStoreRead
	}

	hash, ok := FieldString(user, "pass")
	if !ok {
		v.logger.Error("user row is missing a password hash", "email_known", true)
		return nil, ErrStoreRead
	}

	switch err := password.Verify(hash, pass); {
	case err == nil:
		return user, nil
	case errors.Is(err, password.ErrMismatch):
		return nil, ErrNoMatch
	default:
		v.logger.Error("stored password hash is unusable", "error", err)
		return nil, ErrStoreRead
	}
}

// FieldString returns the named field of a row rendered as a string. Numeric
// ids are formatted; missing fields and non-scalar values report false.
func FieldString(obj store.Object, key string) (string, bool) {
	switch val := obj[key].(type) {
	case string:
		return val, true
	case int64:
		return fmt.Sprintf("%d", val), true
	case float64:
		return fmt.Sprintf("%.0f", val), true
	default:
		return "", false
	}
}
