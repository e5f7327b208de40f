package careersapimodels

import (
	"fmt"
	"net/mail"
	"ocavior-site/models"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type ResumeFile struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"-"`
}

func (r ResumeFile) Ext() string {
	return strings.ToLower(filepath.Ext(r.FileName))
}

type ApplicationForm struct {
	FirstName  string      `json:"first_name" form:"firstName"`
	LastName   string      `json:"last_name" form:"lastName"`
	Email      string      `json:"email" form:"email"`
	Position   string      `json:"position" form:"position"`
	Experience string      `json:"experience" form:"experience"`
	Resume     *ResumeFile `json:"resume,omitempty" form:"-"`
}

// Normalize trims text fields and maps a position slug to its title.
func (f *ApplicationForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Experience = strings.TrimSpace(f.Experience)
	if p, ok := models.ParsePosition(f.Position); ok {
		f.Position = string(p)
	}
}

// Validate checks the form the way the careers page requires it before sending.
// maxResumeSize <= 0 disables the size check.
func (f ApplicationForm) Validate(maxResumeSize int64) error {
	var result *multierror.Error
	if strings.TrimSpace(f.FirstName) == "" {
		result = multierror.Append(result, errors.New("first name is required"))
	}
	if strings.TrimSpace(f.LastName) == "" {
		result = multierror.Append(result, errors.New("last name is required"))
	}
	if strings.TrimSpace(f.Email) == "" {
		result = multierror.Append(result, errors.New("email is required"))
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		result = multierror.Append(result, errors.New("email is invalid"))
	}
	if _, ok := models.ParsePosition(f.Position); !ok {
		result = multierror.Append(result, errors.New("please select one of the open positions"))
	}
	if f.Resume != nil {
		if !isAllowedExt(f.Resume.Ext()) {
			result = multierror.Append(result, errors.Errorf("resume must be one of %s", strings.Join(models.ResumeExtensions, ", ")))
		}
		if maxResumeSize > 0 && int64(len(f.Resume.Body)) > maxResumeSize {
			result = multierror.Append(result, errors.Errorf("resume must not exceed %d MB", maxResumeSize/(1024*1024)))
		}
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = func(list []error) string {
		msgs := make([]string, 0, len(list))
		for _, err := range list {
			msgs = append(msgs, err.Error())
		}
		return strings.Join(msgs, "; ")
	}
	return result
}

func (f ApplicationForm) FullName() string {
	return fmt.Sprintf("%s %s", f.FirstName, f.LastName)
}

func isAllowedExt(ext string) bool {
	for _, allowed := range models.ResumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// FormView is what the careers section renders for the visitor.
type FormView struct {
	FirstName  string                  `json:"first_name"`
	LastName   string                  `json:"last_name"`
	Email      string                  `json:"email"`
	Position   string                  `json:"position"`
	Experience string                  `json:"experience"`
	ResumeName string                  `json:"resume_name,omitempty"`
	Status     models.SubmissionStatus `json:"status"`
	Message    string                  `json:"message,omitempty"`
}

type SubmitResult struct {
	Status  models.SubmissionStatus `json:"status"`
	Message string                  `json:"message,omitempty"`
	Data    map[string]interface{}  `json:"data,omitempty"`
}
