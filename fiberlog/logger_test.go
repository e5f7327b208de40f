package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

func TestNew(t *testing.T) {
	t.Run(`logs configured tags`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(LocalsRequestID, "req-1")
			return c.Next()
		})
		app.Use(New(Config{
			Logger: newTestLogger(buf),
			Tags:   []string{TagMethod, TagPath, TagStatus, RequestID, TagBody},
		}))
		app.Post("/api/v1/echo", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTeapot).JSON(fiber.Map{"ok": true})
		})

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/echo", strings.NewReader(`{"a":1}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		_, err := app.Test(req)
		require.Nil(t, err)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "api request", entry["msg"])
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "POST", entry[TagMethod])
		require.Equal(t, "/api/v1/echo", entry[TagPath])
		require.Equal(t, float64(fiber.StatusTeapot), entry[TagStatus])
		require.Equal(t, "req-1", entry[RequestID])
		require.Equal(t, `{"a":1}`, entry[TagBody])
	})

	t.Run(`multipart body is not logged`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{Logger: newTestLogger(buf), Tags: []string{TagBody}}))
		app.Post("/careers/apply", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusSeeOther)
		})

		req := httptest.NewRequest(fiber.MethodPost, "/careers/apply", strings.NewReader("--x--"))
		req.Header.Set(fiber.HeaderContentType, "multipart/form-data; boundary=x")
		_, err := app.Test(req)
		require.Nil(t, err)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "page request", entry["msg"])
		require.Equal(t, "multipart", entry[TagBody])
	})

	t.Run(`assets are skipped`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{Logger: newTestLogger(buf), Tags: []string{TagPath}, Skip: SkipAssets}))
		app.Get("/static/css/site.css", func(c *fiber.Ctx) error {
			return c.SendString("body{}")
		})
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendString("home")
		})

		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/static/css/site.css", nil))
		require.Nil(t, err)
		require.Equal(t, 0, buf.Len())

		_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.Nil(t, err)
		require.Contains(t, buf.String(), `"path":"/"`)
	})
}
