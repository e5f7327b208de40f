package employeesclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	careersapimodels "ocavior-site/models/api/careers"
)

func testForm(withResume bool) careersapimodels.ApplicationForm {
	form := careersapimodels.ApplicationForm{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@example.com",
		Position:   "Software Engineer",
		Experience: "5 years of Go",
	}
	if withResume {
		form.Resume = &careersapimodels.ResumeFile{
			FileName:    "cv.pdf",
			ContentType: "application/pdf",
			Body:        []byte("%PDF-1.4 resume"),
		}
	}
	return form
}

type received struct {
	calls       atomic.Int32
	fields      map[string]string
	resumeName  string
	resumeType  string
	resumeBody  string
	hasResume   bool
	method      string
	path        string
	contentType string
}

func newBackend(t *testing.T, status int, body string, rec *received) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.calls.Add(1)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.contentType = r.Header.Get("Content-Type")
		require.Nil(t, r.ParseMultipartForm(1<<20))
		rec.fields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			rec.fields[k] = v[0]
		}
		if files := r.MultipartForm.File["resume"]; len(files) == 1 {
			rec.hasResume = true
			rec.resumeName = files[0].Filename
			rec.resumeType = files[0].Header.Get("Content-Type")
			f, err := files[0].Open()
			require.Nil(t, err)
			data, _ := io.ReadAll(f)
			rec.resumeBody = string(data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestSubmitApplication(t *testing.T) {
	t.Run(`multipart parts equal form fields`, func(t *testing.T) {
		rec := &received{}
		srv := newBackend(t, http.StatusCreated, `{"id":"123"}`, rec)
		defer srv.Close()

		client := NewClient(srv.URL+"/", nil)
		data, err := client.SubmitApplication(context.TODO(), testForm(true))
		require.Nil(t, err)
		require.Equal(t, "123", data["id"])

		require.Equal(t, int32(1), rec.calls.Load())
		require.Equal(t, http.MethodPost, rec.method)
		require.Equal(t, "/api/employees/submit", rec.path)
		require.Contains(t, rec.contentType, "multipart/form-data")
		require.Equal(t, map[string]string{
			"firstName":  "John",
			"lastName":   "Doe",
			"email":      "john@example.com",
			"position":   "Software Engineer",
			"experience": "5 years of Go",
		}, rec.fields)
		require.True(t, rec.hasResume)
		require.Equal(t, "cv.pdf", rec.resumeName)
		require.Equal(t, "application/pdf", rec.resumeType)
		require.Equal(t, "%PDF-1.4 resume", rec.resumeBody)
	})

	t.Run(`no resume part without resume`, func(t *testing.T) {
		rec := &received{}
		srv := newBackend(t, http.StatusOK, `{"id":"1"}`, rec)
		defer srv.Close()

		_, err := NewClient(srv.URL, nil).SubmitApplication(context.TODO(), testForm(false))
		require.Nil(t, err)
		require.False(t, rec.hasResume)
		require.Len(t, rec.fields, 5)
	})

	t.Run(`error message from response body`, func(t *testing.T) {
		rec := &received{}
		srv := newBackend(t, http.StatusUnprocessableEntity, `{"message":"Email already used"}`, rec)
		defer srv.Close()

		_, err := NewClient(srv.URL, nil).SubmitApplication(context.TODO(), testForm(false))
		require.NotNil(t, err)
		require.Equal(t, "Email already used", err.Error())
		require.Equal(t, "Email already used", FailureMessage(err))
		failure, ok := err.(*SubmissionFailure)
		require.True(t, ok)
		require.Equal(t, http.StatusUnprocessableEntity, failure.StatusCode)
	})

	t.Run(`fallback message without body message`, func(t *testing.T) {
		rec := &received{}
		srv := newBackend(t, http.StatusInternalServerError, `{"error":"boom"}`, rec)
		defer srv.Close()

		_, err := NewClient(srv.URL, nil).SubmitApplication(context.TODO(), testForm(false))
		require.Equal(t, FallbackMessage, FailureMessage(err))
	})

	t.Run(`fallback message on network failure`, func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := NewClient(url, nil).SubmitApplication(context.TODO(), testForm(false))
		require.NotNil(t, err)
		require.Equal(t, "Failed to submit application", err.Error())
	})

	t.Run(`undecodable success body is a failure`, func(t *testing.T) {
		rec := &received{}
		srv := newBackend(t, http.StatusOK, `<html>`, rec)
		defer srv.Close()

		_, err := NewClient(srv.URL, nil).SubmitApplication(context.TODO(), testForm(false))
		require.Equal(t, FallbackMessage, FailureMessage(err))
	})

	t.Run(`empty success body`, func(t *testing.T) {
		rec := &received{}
		srv := newBackend(t, http.StatusNoContent, ``, rec)
		defer srv.Close()

		data, err := NewClient(srv.URL, nil).SubmitApplication(context.TODO(), testForm(false))
		require.Nil(t, err)
		require.Nil(t, data)
	})
}
