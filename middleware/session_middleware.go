package middleware

import (
	"time"

	"ocavior-site/fiberlog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader   = "X-Request-ID"
	SessionCookieName = "ocavior_sid"
)

// RequestID takes X-Request-ID from the request or generates one and echoes it in the response.
func RequestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Locals(fiberlog.LocalsRequestID, requestID)
		ctx.Set(RequestIDHeader, requestID)
		return ctx.Next()
	}
}

// VisitorSession issues the visitor session cookie that keys the careers form state.
func VisitorSession(ttl time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sessionID := ctx.Cookies(SessionCookieName)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}
		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		ctx.Locals(fiberlog.LocalsSessionID, sessionID)
		return ctx.Next()
	}
}

func GetRequestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(fiberlog.LocalsRequestID).(string)
	return id
}

func GetSessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(fiberlog.LocalsSessionID).(string)
	return id
}
