package dbmodels

import (
	"ocavior-site/models"

	"github.com/pkg/errors"
)

// SubmissionAudit is one accepted submit of the careers form.
type SubmissionAudit struct {
	BaseModel
	RequestID    string             `gorm:"type:varchar(64);index" json:"request_id"`
	Position     string             `gorm:"type:varchar(128)" json:"position"`
	Email        string             `gorm:"type:varchar(255);index" json:"email"`
	HasResume    bool               `json:"has_resume"`
	ResumeObject string             `gorm:"type:varchar(512)" json:"resume_object,omitempty"`
	Status       models.AuditStatus `gorm:"type:varchar(16);index" json:"status"`
	StatusCode   int                `json:"status_code"`
	Message      string             `gorm:"type:text" json:"message,omitempty"`
	DurationMs   int64              `json:"duration_ms"`
}

func (a SubmissionAudit) Validate() error {
	if a.Status != models.AuditStatusSuccess && a.Status != models.AuditStatusError {
		return errors.Errorf("unknown submission status %q", a.Status)
	}
	if a.Email == "" {
		return errors.New("email is empty")
	}
	return nil
}

type SubmissionAuditFilter struct {
	Status   models.AuditStatus `query:"status"`
	Position string             `query:"position"`
}
