package applicationform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	employeesclient "ocavior-site/lib/employees-client"
	"ocavior-site/models"
	careersapimodels "ocavior-site/models/api/careers"
)

func filledForm() careersapimodels.ApplicationForm {
	return careersapimodels.ApplicationForm{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@example.com",
		Position:   "software-engineer",
		Experience: "Go, Kubernetes",
		Resume: &careersapimodels.ResumeFile{
			FileName: "cv.docx",
			Body:     []byte("resume"),
		},
	}
}

func TestFormSubmit(t *testing.T) {
	t.Run(`success clears the fields`, func(t *testing.T) {
		f := New(0)
		f.Set(filledForm())
		var sent careersapimodels.ApplicationForm
		calls := 0
		result, err := f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			calls++
			sent = form
			return map[string]interface{}{"id": "123"}, nil
		})
		require.Nil(t, err)
		require.Equal(t, 1, calls)
		require.Equal(t, "Software Engineer", sent.Position)
		require.Equal(t, models.SubmissionStatusSuccess, result.Status)
		require.Equal(t, "123", result.Data["id"])
		require.Equal(t, careersapimodels.ApplicationForm{}, f.Fields())

		view := f.View()
		require.Equal(t, "", view.FirstName)
		require.Equal(t, "", view.ResumeName)
		require.Equal(t, models.SubmissionStatusSuccess, view.Status)

		status, message, ok := f.PopNotice()
		require.True(t, ok)
		require.Equal(t, models.SubmissionStatusSuccess, status)
		require.Equal(t, SuccessMessage, message)
		_, _, ok = f.PopNotice()
		require.False(t, ok)
	})

	t.Run(`error keeps the fields`, func(t *testing.T) {
		f := New(0)
		f.Set(filledForm())
		_, err := f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			return nil, &employeesclient.SubmissionFailure{Message: "Email already used", StatusCode: 422}
		})
		require.NotNil(t, err)
		status, message := f.Status()
		require.Equal(t, models.SubmissionStatusError, status)
		require.Equal(t, "Email already used", message)
		require.Equal(t, "John", f.Fields().FirstName)
		require.NotNil(t, f.Fields().Resume)
	})

	t.Run(`unknown error uses fallback message`, func(t *testing.T) {
		f := New(0)
		f.Set(filledForm())
		_, err := f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			return nil, context.DeadlineExceeded
		})
		require.NotNil(t, err)
		_, message := f.Status()
		require.Equal(t, "Failed to submit application", message)
	})

	t.Run(`invalid form sends nothing`, func(t *testing.T) {
		f := New(1024)
		form := filledForm()
		form.Email = "not-an-email"
		form.Position = "Astronaut"
		form.Resume.FileName = "cv.exe"
		f.Set(form)
		calls := 0
		_, err := f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			calls++
			return nil, nil
		})
		require.Equal(t, 0, calls)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Contains(t, vErr.Message, "email is invalid")
		require.Contains(t, vErr.Message, "open positions")
		require.Contains(t, vErr.Message, ".pdf, .doc, .docx")
		status, _ := f.Status()
		require.Equal(t, models.SubmissionStatusError, status)
		require.Equal(t, "not-an-email", f.Fields().Email)
	})

	t.Run(`resume size limit`, func(t *testing.T) {
		f := New(4)
		f.Set(filledForm())
		_, err := f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			return nil, nil
		})
		_, ok := err.(*ValidationError)
		require.True(t, ok)
	})

	t.Run(`submit while pending is ignored`, func(t *testing.T) {
		f := New(0)
		f.Set(filledForm())
		release := make(chan struct{})
		entered := make(chan struct{})
		var calls atomic.Int32
		submit := func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			calls.Add(1)
			close(entered)
			<-release
			return map[string]interface{}{"id": "1"}, nil
		}

		wg := sync.WaitGroup{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Submit(context.TODO(), submit)
			require.Nil(t, err)
		}()
		<-entered
		status, _ := f.Status()
		require.Equal(t, models.SubmissionStatusPending, status)

		result, err := f.Submit(context.TODO(), submit)
		require.Equal(t, ErrSubmitPending, err)
		require.Equal(t, models.SubmissionStatusPending, result.Status)

		close(release)
		wg.Wait()
		require.Equal(t, int32(1), calls.Load())
		status, _ = f.Status()
		require.Equal(t, models.SubmissionStatusSuccess, status)
	})

	t.Run(`resubmit after error`, func(t *testing.T) {
		f := New(0)
		f.Set(filledForm())
		attempts := 0
		submit := func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			attempts++
			if attempts == 1 {
				return nil, &employeesclient.SubmissionFailure{Message: employeesclient.FallbackMessage}
			}
			return nil, nil
		}
		_, err := f.Submit(context.TODO(), submit)
		require.NotNil(t, err)
		_, err = f.Submit(context.TODO(), submit)
		require.Nil(t, err)
		require.Equal(t, 2, attempts)
		status, _ := f.Status()
		require.Equal(t, models.SubmissionStatusSuccess, status)
	})

	t.Run(`panic in submit settles the form`, func(t *testing.T) {
		f := New(0)
		f.Set(filledForm())
		require.Panics(t, func() {
			_, _ = f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
				panic("storage exploded")
			})
		})
		status, message := f.Status()
		require.Equal(t, models.SubmissionStatusError, status)
		require.Equal(t, employeesclient.FallbackMessage, message)
		require.Equal(t, "John", f.Fields().FirstName)

		_, err := f.Submit(context.TODO(), func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			return nil, nil
		})
		require.Nil(t, err)
	})

	t.Run(`retry without a new file keeps the resume`, func(t *testing.T) {
		f := New(0)
		var sent []*careersapimodels.ResumeFile
		attempts := 0
		submit := func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error) {
			attempts++
			sent = append(sent, form.Resume)
			if attempts == 1 {
				return nil, &employeesclient.SubmissionFailure{Message: employeesclient.FallbackMessage}
			}
			return nil, nil
		}
		_, err := f.SubmitFields(context.TODO(), filledForm(), submit)
		require.NotNil(t, err)

		retry := filledForm()
		retry.Resume = nil
		_, err = f.SubmitFields(context.TODO(), retry, submit)
		require.Nil(t, err)
		require.Len(t, sent, 2)
		require.NotNil(t, sent[1])
		require.Equal(t, "cv.docx", sent[1].FileName)

		// after success nothing is carried over
		_, err = f.SubmitFields(context.TODO(), retry, submit)
		require.Nil(t, err)
		require.Len(t, sent, 3)
		require.Nil(t, sent[2])
	})

	t.Run(`end to end with backend statuses`, func(t *testing.T) {
		cases := []struct {
			status      int
			body        string
			wantStatus  models.SubmissionStatus
			wantMessage string
		}{
			{http.StatusCreated, `{"id":"123"}`, models.SubmissionStatusSuccess, SuccessMessage},
			{http.StatusUnprocessableEntity, `{"message":"Email already used"}`, models.SubmissionStatusError, "Email already used"},
			{http.StatusBadGateway, ``, models.SubmissionStatusError, "Failed to submit application"},
		}
		for _, tc := range cases {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			client := employeesclient.NewClient(srv.URL, nil)
			f := New(0)
			f.Set(filledForm())
			_, _ = f.Submit(context.TODO(), client.SubmitApplication)
			srv.Close()

			status, message := f.Status()
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantMessage, message)
			if tc.wantStatus == models.SubmissionStatusSuccess {
				require.Equal(t, careersapimodels.ApplicationForm{}, f.Fields())
			} else {
				require.Equal(t, "john@example.com", f.Fields().Email)
			}
		}
	})
}
