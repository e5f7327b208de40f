package fiberlog

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagURL       = "url"
	TagIP        = "ip"
	TagUA        = "ua"
	TagBody      = "body"
	TagResBody   = "resBody"
	RequestID    = "request_id"
	TagSessionID = "session_id"
)

// Locals keys shared with the request-id and session middleware.
const (
	LocalsRequestID = "requestID"
	LocalsSessionID = "sessionID"
)

const maxBodyLen = 2048

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag resolves a single log field from the request context.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			// resumes are binary and may carry personal data
			if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
				return "multipart"
			}
			return limit(string(c.Body()))
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			contentType := string(c.Response().Header.ContentType())
			if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
				return ""
			}
			return limit(string(c.Response().Body()))
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			id, _ := c.Locals(LocalsRequestID).(string)
			return id
		},
		TagSessionID: func(c *fiber.Ctx, _ *data) interface{} {
			id, _ := c.Locals(LocalsSessionID).(string)
			return id
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}

func limit(value string) string {
	if len(value) > maxBodyLen {
		return value[:maxBodyLen] + "..."
	}
	return value
}
