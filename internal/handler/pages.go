package handler

import (
	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the handful of HTML surfaces around the login flow.
// The login page itself is a static file under public/; only the protected
// greeting lives here, as proof that a gated request reaches its handler.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Register(app *fiber.App) {
	app.Get("/hello", h.Hello)
}

func (h *PageHandler) Hello(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(`<!DOCTYPE html>
<html>
<head><link href="/public/static/styles.css" rel="stylesheet"></head>
<body><h1>Hello, you are signed in.</h1><form method="post" action="/api/logout"><button>Log out</button></form></body>
</html>`)
}
