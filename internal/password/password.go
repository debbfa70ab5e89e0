package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for newly minted hashes. Stored hashes carry their own
// parameters, so verification is independent of these.
const (
	timeCost   = 1
	memoryCost = 64 * 1024
	threads    = 4
	keyLength  = 32
	saltLength = 16
)

var (
	ErrMismatch     = errors.New("password does not match")
	ErrInvalidHash  = errors.New("stored hash is not a valid argon2id string")
	ErrIncompatible = errors.New("stored hash uses an unsupported argon2 version")
)

// Hash derives an argon2id digest of the plain-text password and returns it
// in the standard encoded form, salt included.
func Hash(plain string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(plain), salt, timeCost, memoryCost, threads, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryCost, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify compares an encoded argon2id hash with a plain-text candidate.
// Returns nil on success, ErrMismatch when the password is wrong, and a
// parse error when the stored hash is malformed.
func Verify(encoded, plain string) error {
	salt, key, m, t, p, err := decode(encoded)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(plain), salt, t, m, p, uint32(len(key)))

	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrMismatch
	}
	return nil
}

func decode(encoded string) (salt, key []byte, m, t uint32, p uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrIncompatible
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	return salt, key, m, t, p, nil
}
