package crypto

import "github.com/google/uuid"

// NewSessionToken returns a fresh opaque session token. UUIDv4 gives 122
// random bits from crypto/rand, safe for concurrent use.
func NewSessionToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
