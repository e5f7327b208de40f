package xlsexport

import (
	"bytes"
	dbmodels "ocavior-site/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSubmissions(list []dbmodels.SubmissionAudit) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Submissions"

var submissionHeaders = []string{"Date", "Request ID", "Email", "Position", "Resume", "Status", "HTTP status", "Message", "Duration, ms"}

func (i impl) ExportSubmissions(list []dbmodels.SubmissionAudit) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, submissionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		if err = writeSubmissionData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "error writing xlsx data")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "error renaming sheet")
	}
	return f.WriteToBuffer()
}

func writeSubmissionData(f *excelize.File, sheet string, list []dbmodels.SubmissionAudit, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(submissionHeaders), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		resume := item.ResumeObject
		if resume == "" && item.HasResume {
			resume = "attached"
		}
		values := []interface{}{
			item.CreatedAt.Format("2006-01-02 15:04:05"),
			item.RequestID,
			item.Email,
			item.Position,
			resume,
			string(item.Status),
			item.StatusCode,
			item.Message,
			item.DurationMs,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
	}
	return nil
}
