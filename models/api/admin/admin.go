package adminapimodels

import (
	"ocavior-site/models"
	apimodels "ocavior-site/models/api"
	dbmodels "ocavior-site/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Login) == "" {
		return errors.New("login is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"token"`
}

type SubmissionsFilter struct {
	apimodels.Pagination
	Status   models.AuditStatus `query:"status"`   // success/error
	Position string             `query:"position"` // position title or slug
}

func (f SubmissionsFilter) ToDB() dbmodels.SubmissionAuditFilter {
	filter := dbmodels.SubmissionAuditFilter{Status: f.Status}
	if p, ok := models.ParsePosition(f.Position); ok {
		filter.Position = string(p)
	}
	return filter
}

type SubmissionView struct {
	ID           string             `json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	RequestID    string             `json:"request_id"`
	Position     string             `json:"position"`
	Email        string             `json:"email"`
	HasResume    bool               `json:"has_resume"`
	ResumeObject string             `json:"resume_object,omitempty"`
	Status       models.AuditStatus `json:"status"`
	StatusCode   int                `json:"status_code,omitempty"`
	Message      string             `json:"message,omitempty"`
	DurationMs   int64              `json:"duration_ms"`
}

func SubmissionConvert(rec dbmodels.SubmissionAudit) SubmissionView {
	return SubmissionView{
		ID:           rec.ID,
		CreatedAt:    rec.CreatedAt,
		RequestID:    rec.RequestID,
		Position:     rec.Position,
		Email:        rec.Email,
		HasResume:    rec.HasResume,
		ResumeObject: rec.ResumeObject,
		Status:       rec.Status,
		StatusCode:   rec.StatusCode,
		Message:      rec.Message,
		DurationMs:   rec.DurationMs,
	}
}
