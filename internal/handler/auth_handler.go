package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/backend/internal/auth"
	"github.com/gatehouse/backend/internal/crypto"
	"github.com/gatehouse/backend/internal/store"
)

// User-facing bodies for login failures. These are the complete set; any
// internal detail beyond them stays in the logs.
const (
	MsgEmailRequired    = "Email must have a value"
	MsgPasswordRequired = "Password must have a value"
	MsgNoMatch          = "There is no email/password match"
	MsgStoreRead        = "There was an error retrieving data from the db"
	MsgStoreWrite       = "Failed to communicate with the database"
)

type CredentialVerifier interface {
	Verify(ctx context.Context, email, pass string) (store.Object, error)
}

type SessionIssuer interface {
	Issue(ctx context.Context, userID, clientAddr string) (string, error)
}

type SessionRevoker interface {
	Revoke(ctx context.Context, token string) error
}

type AuthHandler struct {
	verifier      CredentialVerifier
	issuer        SessionIssuer
	revoker       SessionRevoker
	codec         *crypto.CookieCodec
	logger        *slog.Logger
	cookieName    string
	sessionMaxAge time.Duration
	landingURL    string
}

type AuthHandlerConfig struct {
	Verifier      CredentialVerifier
	Issuer        SessionIssuer
	Revoker       SessionRevoker
	Codec         *crypto.CookieCodec
	Logger        *slog.Logger
	CookieName    string
	SessionMaxAge time.Duration
	LandingURL    string
}

func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		verifier:      cfg.Verifier,
		issuer:        cfg.Issuer,
		revoker:       cfg.Revoker,
		codec:         cfg.Codec,
		logger:        cfg.Logger,
		cookieName:    cfg.CookieName,
		sessionMaxAge: cfg.SessionMaxAge,
		landingURL:    cfg.LandingURL,
	}
}

func (h *AuthHandler) Register(app *fiber.App) {
	app.Post("/api/public/login", h.Login)
	app.Post("/api/logout", h.Logout)
}

type loginRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// Login verifies credentials, mints a session and hands the sealed token to
// the client as the `tok` cookie. Failure bodies are plain strings, one of
// the Msg constants above, so the response leaks nothing it should not.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	user, err := h.verifier.Verify(c.Context(), req.Email, req.Pass)
	if err != nil {
		return h.loginFailure(c, err)
	}

	userID, ok := auth.FieldString(user, "id")
	if !ok {
		h.logger.Error("user row has no usable id field")
		return c.Status(fiber.StatusInternalServerError).SendString(MsgStoreRead)
	}

	token, err := h.issuer.Issue(c.Context(), userID, c.IP())
	if err != nil {
		return h.loginFailure(c, err)
	}

	sealed, err := h.codec.Encode(token)
	if err != nil {
		h.logger.Error("cookie sealing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString(MsgStoreWrite)
	}

	// Replaces any cookie of the same name a previous login left behind.
	SetSessionCookie(c, h.cookieName, sealed, int(h.sessionMaxAge.Seconds()))

	h.logger.Info("login succeeded", "user_id", userID, "ip", c.IP())
	return c.Redirect(h.landingURL, fiber.StatusSeeOther)
}

// Logout revokes the presented session and clears the cookie. A missing or
// unreadable cookie still clears and redirects; logout cannot fail visibly.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sealed := c.Cookies(h.cookieName); sealed != "" {
		if token, err := h.codec.Decode(sealed); err == nil {
			if err := h.revoker.Revoke(c.Context(), token); err != nil {
				h.logger.Warn("session revocation failed", "error", err)
			}
		}
	}

	ClearSessionCookie(c, h.cookieName)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailRequired):
		return c.Status(fiber.StatusBadRequest).SendString(MsgEmailRequired)
	case errors.Is(err, auth.ErrPasswordRequired):
		return c.Status(fiber.StatusBadRequest).SendString(MsgPasswordRequired)
	case errors.Is(err, auth.ErrNoMatch):
		return c.Status(fiber.StatusUnauthorized).SendString(MsgNoMatch)
	case errors.Is(err, auth.ErrStoreWrite):
		return c.Status(fiber.StatusBadGateway).SendString(MsgStoreWrite)
	default:
		return c.Status(fiber.StatusInternalServerError).SendString(MsgStoreRead)
	}
}
