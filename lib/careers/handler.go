package careers

import (
	"context"
	"fmt"
	applicationform "ocavior-site/lib/application-form"
	auditstore "ocavior-site/lib/careers/audit-store"
	employeesclient "ocavior-site/lib/employees-client"
	filestorage "ocavior-site/lib/file-storage"
	"ocavior-site/lib/smtp"
	"ocavior-site/lib/utils/helpers"
	initchecker "ocavior-site/lib/utils/init-checker"
	"ocavior-site/models"
	careersapimodels "ocavior-site/models/api/careers"
	dbmodels "ocavior-site/models/db"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// View returns the form state of the visitor session (fields, status, message).
	View(sessionID string) careersapimodels.FormView
	// PopNotice returns the pending notification of the session once.
	PopNotice(sessionID string) (status models.SubmissionStatus, message string, ok bool)
	// Apply replaces the session form fields and submits them.
	Apply(ctx context.Context, sessionID, requestID string, fields careersapimodels.ApplicationForm) (careersapimodels.SubmitResult, error)
}

var Instance Provider

type Deps struct {
	Client      employeesclient.Provider
	Storage     filestorage.Provider
	AuditStore  auditstore.Provider
	Mailer      smtp.Provider
	NotifyEmail string
}

func NewHandler(maxResumeSize int64, sessionTTL time.Duration, deps Deps) {
	Instance = newImpl(maxResumeSize, sessionTTL, deps)
}

func newImpl(maxResumeSize int64, sessionTTL time.Duration, deps Deps) *impl {
	initchecker.CheckInit("employeesClient", deps.Client)
	return &impl{
		sessions:      cache.New(sessionTTL, sessionTTL*2),
		maxResumeSize: maxResumeSize,
		deps:          deps,
	}
}

var ErrNoSession = errors.New("visitor session is not set")

type impl struct {
	sessions      *cache.Cache
	maxResumeSize int64
	deps          Deps
}

func (i impl) form(sessionID string) *applicationform.Form {
	if x, found := i.sessions.Get(sessionID); found {
		f := x.(*applicationform.Form)
		i.sessions.SetDefault(sessionID, f)
		return f
	}
	f := applicationform.New(i.maxResumeSize)
	if err := i.sessions.Add(sessionID, f, cache.DefaultExpiration); err != nil {
		if x, found := i.sessions.Get(sessionID); found {
			return x.(*applicationform.Form)
		}
	}
	return f
}

func (i impl) View(sessionID string) careersapimodels.FormView {
	if sessionID == "" {
		return careersapimodels.FormView{Status: models.SubmissionStatusIdle}
	}
	return i.form(sessionID).View()
}

func (i impl) PopNotice(sessionID string) (models.SubmissionStatus, string, bool) {
	if sessionID == "" {
		return "", "", false
	}
	return i.form(sessionID).PopNotice()
}

func (i impl) Apply(ctx context.Context, sessionID, requestID string, fields careersapimodels.ApplicationForm) (careersapimodels.SubmitResult, error) {
	if sessionID == "" {
		return careersapimodels.SubmitResult{}, ErrNoSession
	}
	logger := log.
		WithField("session_id", sessionID).
		WithField("request_id", requestID).
		WithField("email", helpers.MaskEmail(fields.Email))

	submit := func(ctx context.Context, payload careersapimodels.ApplicationForm) (map[string]interface{}, error) {
		start := time.Now()
		objectName := i.archiveResume(ctx, logger, payload.Resume)
		data, err := i.deps.Client.SubmitApplication(ctx, payload)
		i.audit(logger, requestID, payload, objectName, err, time.Since(start))
		if err == nil {
			i.notifyHR(logger, payload)
		}
		return data, err
	}

	result, err := i.form(sessionID).SubmitFields(ctx, fields, submit)
	switch {
	case err == nil:
		logger.Info("application accepted")
	case errors.Is(err, applicationform.ErrSubmitPending):
		logger.Info("submit ignored: previous submission is pending")
	default:
		logger.WithError(err).Warn("application not accepted")
	}
	return result, err
}

func (i impl) archiveResume(ctx context.Context, logger *log.Entry, resume *careersapimodels.ResumeFile) string {
	if resume == nil || i.deps.Storage == nil {
		return ""
	}
	objectName, err := i.deps.Storage.ArchiveResume(ctx, *resume)
	if err != nil {
		logger.WithError(err).Error("error archiving resume")
		return ""
	}
	return objectName
}

func (i impl) audit(logger *log.Entry, requestID string, payload careersapimodels.ApplicationForm, objectName string, submitErr error, took time.Duration) {
	if i.deps.AuditStore == nil {
		return
	}
	rec := dbmodels.SubmissionAudit{
		RequestID:    requestID,
		Position:     payload.Position,
		Email:        payload.Email,
		HasResume:    payload.Resume != nil,
		ResumeObject: objectName,
		Status:       models.AuditStatusSuccess,
		DurationMs:   took.Milliseconds(),
	}
	if submitErr != nil {
		rec.Status = models.AuditStatusError
		rec.Message = employeesclient.FailureMessage(submitErr)
		var failure *employeesclient.SubmissionFailure
		if errors.As(submitErr, &failure) {
			rec.StatusCode = failure.StatusCode
		}
	}
	if _, err := i.deps.AuditStore.Create(rec); err != nil {
		logger.WithError(err).Error("error saving submission audit")
	}
}

func (i impl) notifyHR(logger *log.Entry, payload careersapimodels.ApplicationForm) {
	if i.deps.Mailer == nil || i.deps.NotifyEmail == "" {
		return
	}
	subject, message := notificationText(payload)
	go func() {
		if err := i.deps.Mailer.SendEMail(i.deps.NotifyEmail, subject, message); err != nil {
			logger.WithError(err).Warn("error notifying HR about new application")
		}
	}()
}

func notificationText(payload careersapimodels.ApplicationForm) (subject, message string) {
	subject = fmt.Sprintf("New application: %s", payload.Position)
	resume := "not attached"
	if payload.Resume != nil {
		resume = payload.Resume.FileName
	}
	message = fmt.Sprintf("Candidate: %s\nEmail: %s\nPosition: %s\nResume: %s\n\nExperience & Skills:\n%s",
		payload.FullName(), payload.Email, payload.Position, resume, payload.Experience)
	return subject, message
}
