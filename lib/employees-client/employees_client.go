package employeesclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	careersapimodels "ocavior-site/models/api/careers"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// SubmitApplication sends the form as one multipart request.
	// Any failure is returned as *SubmissionFailure.
	SubmitApplication(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error)
}

var Instance Provider

func NewProvider(baseURL string, timeout time.Duration) {
	Instance = NewClient(baseURL, &http.Client{Timeout: timeout})
}

func NewClient(baseURL string, httpClient *http.Client) Provider {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &impl{
		host:       strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

const (
	submitPath      string = "%s/api/employees/submit"
	FallbackMessage string = "Failed to submit application"
)

type SubmissionFailure struct {
	Message    string
	StatusCode int
	cause      error
}

func (e *SubmissionFailure) Error() string {
	return e.Message
}

func (e *SubmissionFailure) Unwrap() error {
	return e.cause
}

// FailureMessage returns the text to show the visitor for any submit error.
func FailureMessage(err error) string {
	var failure *SubmissionFailure
	if errors.As(err, &failure) && failure.Message != "" {
		return failure.Message
	}
	return FallbackMessage
}

type errorData struct {
	Message string `json:"message"`
}

type impl struct {
	host       string
	httpClient *http.Client
}

func (i impl) SubmitApplication(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
	uri := fmt.Sprintf(submitPath, i.host)
	logger := log.
		WithField("external_request", uri).
		WithField("position", form.Position).
		WithField("has_resume", form.Resume != nil)

	body, contentType, err := encodeForm(form)
	if err != nil {
		logger.WithError(err).Error("error encoding application form")
		return nil, &SubmissionFailure{Message: FallbackMessage, cause: err}
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, body)
	if err != nil {
		logger.WithError(err).Error("error building application request")
		return nil, &SubmissionFailure{Message: FallbackMessage, cause: err}
	}
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Accept", "application/json")

	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("error sending application to employees backend")
		return nil, &SubmissionFailure{Message: FallbackMessage, cause: errors.Wrap(err, "error sending application")}
	}
	defer response.Body.Close()
	// body is read only once
	responseBody, err := io.ReadAll(response.Body)
	logger = logger.
		WithField("response_status_code", response.StatusCode).
		WithField("response_body", string(responseBody))
	if err != nil {
		logger.WithError(err).Error("error reading employees backend response")
		return nil, &SubmissionFailure{Message: FallbackMessage, StatusCode: response.StatusCode, cause: err}
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if len(bytes.TrimSpace(responseBody)) == 0 {
			logger.Info("application submitted")
			return nil, nil
		}
		data := map[string]interface{}{}
		if err = json.Unmarshal(responseBody, &data); err != nil {
			logger.WithError(err).Error("error decoding employees backend response")
			return nil, &SubmissionFailure{Message: FallbackMessage, StatusCode: response.StatusCode, cause: err}
		}
		logger.Info("application submitted")
		return data, nil
	}

	logger.Warn("employees backend rejected application")
	failure := &SubmissionFailure{
		Message:    FallbackMessage,
		StatusCode: response.StatusCode,
		cause:      errors.Errorf("unexpected status %d", response.StatusCode),
	}
	errResp := errorData{}
	if len(responseBody) != 0 {
		if err = json.Unmarshal(responseBody, &errResp); err != nil {
			logger.WithError(err).Warn("error decoding employees backend error response")
		} else if errResp.Message != "" {
			failure.Message = errResp.Message
		}
	}
	return nil, failure
}

func encodeForm(form careersapimodels.ApplicationForm) (*bytes.Buffer, string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"position", form.Position},
		{"experience", form.Experience},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", errors.Wrapf(err, "error writing field %s", field.name)
		}
	}
	if form.Resume != nil {
		part, err := writer.CreatePart(resumeHeader(*form.Resume))
		if err != nil {
			return nil, "", errors.Wrap(err, "error creating resume part")
		}
		if _, err = part.Write(form.Resume.Body); err != nil {
			return nil, "", errors.Wrap(err, "error writing resume part")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "error closing multipart body")
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func resumeHeader(resume careersapimodels.ResumeFile) textproto.MIMEHeader {
	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="resume"; filename="%s"`, quoteEscaper.Replace(resume.FileName)))
	h.Set("Content-Type", contentType)
	return h
}
