package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var (
	ErrInvalidKey    = errors.New("invalid cookie key: must be 32 bytes")
	ErrInvalidCookie = errors.New("invalid cookie value")
	ErrOpenFailed    = errors.New("cookie authentication failed")
)

// CookieCodec seals and opens cookie values with AES-GCM under a process-wide
// key established at startup. A value that fails to open for any reason is
// indistinguishable from a missing cookie to callers.
type CookieCodec struct {
	aead cipher.AEAD
}

func NewCookieCodec(keyBase64 string) (*CookieCodec, error) {
	key, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, err
	}
	return NewCookieCodecFromBytes(key)
}

func NewCookieCodecFromBytes(key []byte) (*CookieCodec, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &CookieCodec{aead: aead}, nil
}

// Encode seals plaintext into a cookie-safe base64url string with a random
// nonce prepended to the ciphertext.
func (c *CookieCodec) Encode(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode opens a sealed cookie value. Tampered, truncated or garbage input
// returns an error; no detail about which check failed is exposed.
func (c *CookieCodec) Decode(value string) (string, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return "", ErrInvalidCookie
	}

	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", ErrInvalidCookie
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrOpenFailed
	}

	return string(plaintext), nil
}
