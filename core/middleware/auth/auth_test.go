package auth

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(New(apiKey))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("Rejects Missing Key", func(t *testing.T) {
		app := newApp("secret")
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Rejects Wrong Key", func(t *testing.T) {
		app := newApp("secret")
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-API-Key", "wrong")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Accepts Correct Key", func(t *testing.T) {
		app := newApp("secret")
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-API-Key", "secret")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Empty Key Disables Check", func(t *testing.T) {
		app := newApp("")
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
