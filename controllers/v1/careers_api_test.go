package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ocavior-site/lib/careers"
	"ocavior-site/lib/content"
	employeesclient "ocavior-site/lib/employees-client"
	"ocavior-site/middleware"
	apimodels "ocavior-site/models/api"
	careersapimodels "ocavior-site/models/api/careers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newCareersApp(t *testing.T, status int, body string) *fiber.App {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(backend.Close)

	content.NewHandler()
	careers.NewHandler(0, time.Minute, careers.Deps{Client: employeesclient.NewClient(backend.URL, nil)})

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.VisitorSession(time.Minute))
	InitCareersApiRouters(app)
	InitContentApiRouters(app)
	return app
}

func multipartApplication(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.Nil(t, w.WriteField(k, v))
	}
	require.Nil(t, w.Close())
	return buf, w.FormDataContentType()
}

func validApplication() map[string]string {
	return map[string]string{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"position":  "Software Engineer",
	}
}

func doApply(t *testing.T, app *fiber.App, fields map[string]string) (int, apimodels.Response) {
	body, contentType := multipartApplication(t, fields)
	req := httptest.NewRequest(fiber.MethodPost, "/careers/apply", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := app.Test(req)
	require.Nil(t, err)
	data, _ := io.ReadAll(resp.Body)
	var result apimodels.Response
	require.Nil(t, json.Unmarshal(data, &result))
	return resp.StatusCode, result
}

type blockingClient struct {
	entered chan struct{}
	release chan struct{}
}

func (b blockingClient) SubmitApplication(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
	close(b.entered)
	<-b.release
	return map[string]interface{}{"id": "1"}, nil
}

func applyRequest(t *testing.T, sessionID string) *http.Request {
	body, contentType := multipartApplication(t, validApplication())
	req := httptest.NewRequest(fiber.MethodPost, "/careers/apply", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	}
	return req
}

func TestCareersApiSession(t *testing.T) {
	t.Run(`second apply while pending is a conflict`, func(t *testing.T) {
		client := blockingClient{entered: make(chan struct{}), release: make(chan struct{})}
		careers.NewHandler(0, time.Minute, careers.Deps{Client: client})
		app := fiber.New()
		app.Use(middleware.VisitorSession(time.Minute))
		InitCareersApiRouters(app)

		sessionID := "5b0e8c1e-3f7a-4d55-9b36-2c1f6a9e4d10"
		firstDone := make(chan int, 1)
		go func() {
			resp, err := app.Test(applyRequest(t, sessionID), -1)
			if err != nil {
				firstDone <- 0
				return
			}
			firstDone <- resp.StatusCode
		}()
		<-client.entered

		resp, err := app.Test(applyRequest(t, sessionID))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)

		close(client.release)
		require.Equal(t, fiber.StatusOK, <-firstDone)
	})

	t.Run(`apply without visitor session`, func(t *testing.T) {
		careers.NewHandler(0, time.Minute, careers.Deps{Client: employeesclient.NewClient("http://127.0.0.1:1", nil)})
		app := fiber.New()
		InitCareersApiRouters(app)

		resp, err := app.Test(applyRequest(t, ""))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var result apimodels.Response
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Equal(t, careers.ErrNoSession.Error(), result.Message)
	})
}

func TestCareersApi(t *testing.T) {
	t.Run(`apply success`, func(t *testing.T) {
		status, resp := doApply(t, newCareersApp(t, fiber.StatusCreated, `{"id":"123"}`), validApplication())
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "success", resp.Status)
		data := resp.Data.(map[string]interface{})
		require.Equal(t, "success", data["status"])
		require.Equal(t, "Application submitted successfully! We'll be in touch soon.", data["message"])
		require.Equal(t, "123", data["data"].(map[string]interface{})["id"])
	})

	t.Run(`apply backend message`, func(t *testing.T) {
		status, resp := doApply(t, newCareersApp(t, fiber.StatusUnprocessableEntity, `{"message":"Email already used"}`), validApplication())
		require.Equal(t, fiber.StatusBadGateway, status)
		require.Equal(t, "fail", resp.Status)
		require.Equal(t, "Email already used", resp.Message)
	})

	t.Run(`apply fallback message`, func(t *testing.T) {
		status, resp := doApply(t, newCareersApp(t, fiber.StatusServiceUnavailable, `oops`), validApplication())
		require.Equal(t, fiber.StatusBadGateway, status)
		require.Equal(t, "Failed to submit application", resp.Message)
	})

	t.Run(`apply validation`, func(t *testing.T) {
		fields := validApplication()
		fields["position"] = "Astronaut"
		status, resp := doApply(t, newCareersApp(t, fiber.StatusCreated, `{}`), fields)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Contains(t, resp.Message, "open positions")
	})

	t.Run(`positions`, func(t *testing.T) {
		app := newCareersApp(t, fiber.StatusCreated, `{}`)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/careers/positions", nil))
		require.Nil(t, err)
		var result apimodels.Response
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result.Data, 5)
	})

	t.Run(`content sections`, func(t *testing.T) {
		app := newCareersApp(t, fiber.StatusCreated, `{}`)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/content/testimonials", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var result apimodels.Response
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result.Data, 3)

		resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/content/pricing", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
