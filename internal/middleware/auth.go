package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/backend/internal/crypto"
)

// SessionValidator is the gate's view of the session store: token in,
// yes/no out.
type SessionValidator interface {
	Check(ctx context.Context, token string) error
}

type GateConfig struct {
	Codec      *crypto.CookieCodec
	Sessions   SessionValidator
	Logger     *slog.Logger
	CookieName string
	// Exempt reports whether a request path bypasses authentication.
	Exempt func(path string) bool
	// LoginURL is where denied requests are sent. The redirect is temporary
	// so clients retry the original URL after authenticating.
	LoginURL string
}

// Gate intercepts every request before the business handlers. Exempt paths
// pass through untouched; everything else needs a cookie that opens under
// the process key and names exactly one live session. Any failure along that
// chain collapses to a redirect: the gate fails closed and never explains
// itself to the client.
func Gate(cfg GateConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Exempt(c.Path()) {
			return c.Next()
		}

		deny := func(reason string) error {
			cfg.Logger.Debug("request denied", "path", c.Path(), "reason", reason)
			return c.Redirect(cfg.LoginURL, fiber.StatusTemporaryRedirect)
		}

		sealed := c.Cookies(cfg.CookieName)
		if sealed == "" {
			return deny("no session cookie")
		}

		token, err := cfg.Codec.Decode(sealed)
		if err != nil {
			return deny("cookie failed to authenticate")
		}

		if err := cfg.Sessions.Check(c.Context(), token); err != nil {
			return deny("no live session")
		}

		return c.Next()
	}
}

// PublicPaths builds the standard exemption predicate: the root path, any
// path containing the public segment, and an optional list of exact paths.
func PublicPaths(segment string, exact ...string) func(string) bool {
	return func(path string) bool {
		if path == "/" || strings.Contains(path, segment) {
			return true
		}
		for _, p := range exact {
			if path == p {
				return true
			}
		}
		return false
	}
}
