package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/innatural/internal/utils"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/", AdminOnly("secret"), func(c *fiber.Ctx) error {
		subject, _ := GetAdminSubject(c)
		return c.SendString(subject)
	})
	return app
}

func TestAdminOnly(t *testing.T) {
	admin, err := utils.GenerateToken("secret", "ops", utils.RoleAdmin, time.Hour)
	require.NoError(t, err)
	viewer, err := utils.GenerateToken("secret", "ops", "viewer", time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"malformed", "Token abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer abc", fiber.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, fiber.StatusForbidden},
		{"admin", "Bearer " + admin, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := newApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
