package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ocavior-site/fiberlog"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify posts a short JSON report to addr for every 5xx response.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if err != nil {
			statusCode = fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				statusCode = fiberErr.Code
			}
		}
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		body := c.Response().Body()
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Debug("error unmarshalling response body in middleware")
		}
		msg := data.Message
		if msg == "" {
			msg = string(body)
		}
		if msg == "" && err != nil {
			msg = err.Error()
		}

		method := c.Method()
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		requestID, _ := c.Locals(fiberlog.LocalsRequestID).(string)

		go func() {
			payload := fmt.Sprintf(
				`{"code":%d,"method":%q,"path":%q,"request_id":%q,"error":%q}`,
				statusCode, method, path, requestID, msg)
			resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			_ = resp.Body.Close()
		}()

		return err
	}
}
