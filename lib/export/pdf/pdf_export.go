package pdfexport

import (
	"bytes"
	"fmt"
	dbmodels "ocavior-site/models/db"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type column struct {
	title string
	width float64
}

var submissionColumns = []column{
	{"Date", 34},
	{"Email", 58},
	{"Position", 40},
	{"Status", 18},
	{"HTTP", 14},
	{"Message", 80},
	{"Resume", 20},
}

// SubmissionsReport renders the journal as an A4 landscape table.
func SubmissionsReport(list []dbmodels.SubmissionAudit, generatedAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("SubmissionsReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Ocavior careers submissions", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Careers submissions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s, %d records", generatedAt.Format("2006-01-02 15:04"), len(list)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(209, 250, 229)
	for _, col := range submissionColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range list {
		resume := "no"
		if item.HasResume {
			resume = "yes"
		}
		values := []string{
			item.CreatedAt.Format("2006-01-02 15:04"),
			item.Email,
			item.Position,
			string(item.Status),
			fmt.Sprintf("%d", item.StatusCode),
			item.Message,
			resume,
		}
		for idx, col := range submissionColumns {
			pdf.CellFormat(col.width, 7, tr(truncate(pdf, values[idx], col.width-2)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(pdf *fpdf.Fpdf, value string, width float64) string {
	if pdf.GetStringWidth(value) <= width {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
