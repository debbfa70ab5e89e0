package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TraceIDHeader = "X-Trace-ID"
	TraceIDKey    = "traceId"
)

// TraceID tags every request with an id, minting one when the client did not
// send its own, and echoes it back in the response headers.
func TraceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Locals(TraceIDKey, traceID)
		c.Set(TraceIDHeader, traceID)

		return c.Next()
	}
}

func GetTraceID(c *fiber.Ctx) string {
	if id, ok := c.Locals(TraceIDKey).(string); ok {
		return id
	}
	return ""
}
