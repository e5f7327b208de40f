package applicationform

import (
	"context"
	employeesclient "ocavior-site/lib/employees-client"
	"ocavior-site/models"
	careersapimodels "ocavior-site/models/api/careers"
	"sync"

	"github.com/pkg/errors"
)

const SuccessMessage = "Application submitted successfully! We'll be in touch soon."

var ErrSubmitPending = errors.New("application submission already in progress")

// ValidationError is returned when the form is rejected before any request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Submitter func(ctx context.Context, form careersapimodels.ApplicationForm) (map[string]interface{}, error)

// Form owns the visitor's field values and the submission status.
type Form struct {
	mu            sync.Mutex
	fields        careersapimodels.ApplicationForm
	status        models.SubmissionStatus
	message       string
	notice        bool
	maxResumeSize int64
}

func New(maxResumeSize int64) *Form {
	return &Form{
		status:        models.SubmissionStatusIdle,
		maxResumeSize: maxResumeSize,
	}
}

// Set replaces the field values, as typing into the inputs would.
func (f *Form) Set(fields careersapimodels.ApplicationForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *Form) Fields() careersapimodels.ApplicationForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Status() (models.SubmissionStatus, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.message
}

func (f *Form) View() careersapimodels.FormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view()
}

// PopNotice returns the success/error notification once per settled submission.
func (f *Form) PopNotice() (status models.SubmissionStatus, message string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.notice {
		return "", "", false
	}
	f.notice = false
	return f.status, f.message, true
}

// Submit validates the current fields and calls submit exactly once.
// While a submission is pending further calls return ErrSubmitPending and send nothing.
func (f *Form) Submit(ctx context.Context, submit Submitter) (careersapimodels.SubmitResult, error) {
	return f.submit(ctx, nil, submit)
}

// SubmitFields is Submit preceded by Set, skipped as a whole while a submission is pending.
func (f *Form) SubmitFields(ctx context.Context, fields careersapimodels.ApplicationForm, submit Submitter) (careersapimodels.SubmitResult, error) {
	return f.submit(ctx, &fields, submit)
}

func (f *Form) submit(ctx context.Context, fields *careersapimodels.ApplicationForm, submit Submitter) (careersapimodels.SubmitResult, error) {
	f.mu.Lock()
	if f.status == models.SubmissionStatusPending {
		f.mu.Unlock()
		return careersapimodels.SubmitResult{Status: models.SubmissionStatusPending}, ErrSubmitPending
	}
	if fields != nil {
		f.replace(*fields)
	}
	payload := f.fields
	payload.Normalize()
	if err := payload.Validate(f.maxResumeSize); err != nil {
		f.settle(models.SubmissionStatusError, err.Error())
		result := f.result(nil)
		f.mu.Unlock()
		return result, &ValidationError{Message: err.Error()}
	}
	f.status = models.SubmissionStatusPending
	f.message = ""
	f.notice = false
	f.mu.Unlock()

	returned := false
	defer func() {
		if returned {
			return
		}
		f.mu.Lock()
		f.settle(models.SubmissionStatusError, employeesclient.FallbackMessage)
		f.mu.Unlock()
	}()
	data, err := submit(ctx, payload)
	returned = true

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.settle(models.SubmissionStatusError, employeesclient.FailureMessage(err))
		return f.result(nil), err
	}
	f.fields = careersapimodels.ApplicationForm{}
	f.settle(models.SubmissionStatusSuccess, SuccessMessage)
	return f.result(data), nil
}

// replace sets new field values. A file input is never refilled by the browser,
// so a retry after an error without a new file keeps the resume already chosen.
func (f *Form) replace(fields careersapimodels.ApplicationForm) {
	if fields.Resume == nil && f.status == models.SubmissionStatusError {
		fields.Resume = f.fields.Resume
	}
	f.fields = fields
}

func (f *Form) settle(status models.SubmissionStatus, message string) {
	f.status = status
	f.message = message
	f.notice = true
}

func (f *Form) result(data map[string]interface{}) careersapimodels.SubmitResult {
	return careersapimodels.SubmitResult{
		Status:  f.status,
		Message: f.message,
		Data:    data,
	}
}

func (f *Form) view() careersapimodels.FormView {
	v := careersapimodels.FormView{
		FirstName:  f.fields.FirstName,
		LastName:   f.fields.LastName,
		Email:      f.fields.Email,
		Position:   f.fields.Position,
		Experience: f.fields.Experience,
		Status:     f.status,
		Message:    f.message,
	}
	if f.fields.Resume != nil {
		v.ResumeName = f.fields.Resume.FileName
	}
	return v
}
