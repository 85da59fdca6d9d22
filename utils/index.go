package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes the uniform failure body. Every failure is a JSON
// object with an "error" field; no stack traces leak to clients.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ErrorResponseWithDetails adds a diagnostic "details" field, used by the
// access gate when the authorization service itself fails.
func ErrorResponseWithDetails(c *fiber.Ctx, status int, message string, err error) error {
	var details interface{}
	if err != nil {
		details = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}
