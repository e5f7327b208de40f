package fiberlog

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// Skip excludes a request from logging. Assets and api docs are skipped by default.
	Skip func(c *fiber.Ctx) bool
}

var skippedPrefixes = []string{"/static/", "/swagger/", "/favicon.ico"}

// SkipAssets reports whether the request targets a static asset or the api docs.
func SkipAssets(c *fiber.Ctx) bool {
	path := c.Path()
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ConfigDefault is the default config
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
	Skip: SkipAssets,
}
