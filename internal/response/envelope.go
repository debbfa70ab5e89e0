package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the JSON shape for API-style responses. The login surface
// deliberately does not use it; its failure bodies are plain strings.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *ErrorInfo  `json:"error"`
	Meta    Meta        `json:"meta"`
}

type ErrorInfo struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type Meta struct {
	TraceID string `json:"traceId,omitempty"`
}

type ErrorCode string

const (
	ErrCodeInvalidPayload ErrorCode = "INVALID_PAYLOAD"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeRateLimited    ErrorCode = "RATE_LIMITED"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

func OK(c *fiber.Ctx, data interface{}) error {
	return send(c, fiber.StatusOK, data, nil)
}

func RateLimited(c *fiber.Ctx, message string) error {
	return sendError(c, fiber.StatusTooManyRequests, ErrCodeRateLimited, message)
}

func send(c *fiber.Ctx, status int, data interface{}, errInfo *ErrorInfo) error {
	return c.Status(status).JSON(Envelope{
		Success: errInfo == nil,
		Data:    data,
		Error:   errInfo,
		Meta:    Meta{TraceID: getTraceID(c)},
	})
}

func sendError(c *fiber.Ctx, status int, code ErrorCode, message string) error {
	return send(c, status, nil, &ErrorInfo{Code: code, Message: message})
}

func getTraceID(c *fiber.Ctx) string {
	if traceID, ok := c.Locals("traceId").(string); ok {
		return traceID
	}
	return ""
}
