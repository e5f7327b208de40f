package models

import "strings"

type Position string

const (
	PositionSoftwareEngineer Position = "Software Engineer"
	PositionUIUXDesigner     Position = "UI/UX Designer"
	PositionProductManager   Position = "Product Manager"
	PositionDevOpsEngineer   Position = "DevOps Engineer"
	PositionDataScientist    Position = "Data Scientist"
)

var OpenPositions = []Position{
	PositionSoftwareEngineer,
	PositionUIUXDesigner,
	PositionProductManager,
	PositionDevOpsEngineer,
	PositionDataScientist,
}

// Slug returns the form value used by the careers page ("software-engineer").
func (p Position) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(string(p))), "-")
}

// ParsePosition accepts either the title or the slug of an open position.
func ParsePosition(value string) (Position, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, p := range OpenPositions {
		if strings.EqualFold(string(p), value) || p.Slug() == strings.ToLower(value) {
			return p, true
		}
	}
	return "", false
}

type SubmissionStatus string

const (
	SubmissionStatusIdle    SubmissionStatus = "idle"
	SubmissionStatusPending SubmissionStatus = "pending"
	SubmissionStatusSuccess SubmissionStatus = "success"
	SubmissionStatusError   SubmissionStatus = "error"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// ResumeExtensions mirrors the accept attribute of the resume input.
var ResumeExtensions = []string{".pdf", ".doc", ".docx"}
