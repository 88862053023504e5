package handler

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodNotAllowed(t *testing.T) {
	app := fiber.New()
	app.Get("/things", func(c *fiber.Ctx) error { return c.SendString("list") })
	app.All("/things", MethodNotAllowed(fiber.MethodGet, fiber.MethodPost))

	tests := []struct {
		method     string
		wantStatus int
		wantBody   string
	}{
		{method: fiber.MethodGet, wantStatus: fiber.StatusOK, wantBody: "list"},
		{method: fiber.MethodPatch, wantStatus: fiber.StatusMethodNotAllowed, wantBody: "Method PATCH Not Allowed"},
		{method: fiber.MethodDelete, wantStatus: fiber.StatusMethodNotAllowed, wantBody: "Method DELETE Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, "/things", nil))
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))

			if tt.wantStatus == fiber.StatusMethodNotAllowed {
				assert.Equal(t, "GET, POST", resp.Header.Get(fiber.HeaderAllow))
			}
		})
	}
}
