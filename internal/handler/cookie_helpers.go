package handler

import (
	"github.com/gofiber/fiber/v2"
)

// SetSessionCookie writes the session cookie with the attributes the gate
// expects: whole-site path, strict same-site, not readable from script.
func SetSessionCookie(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

func ClearSessionCookie(c *fiber.Ctx, name string) {
	SetSessionCookie(c, name, "", -1)
}
