package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodNotAllowed answers every request with 405 and the allowed methods.
func MethodNotAllowed(allowed ...string) fiber.Handler {
	allow := strings.Join(allowed, ", ")

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)

		return c.Status(fiber.StatusMethodNotAllowed).
			SendString(fmt.Sprintf("Method %s Not Allowed", c.Method()))
	}
}
