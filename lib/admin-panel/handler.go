package adminpanelhandler

import (
	"bytes"
	"time"

	auditstore "ocavior-site/lib/careers/audit-store"
	pdfexport "ocavior-site/lib/export/pdf"
	xlsexport "ocavior-site/lib/export/xls"
	adminapimodels "ocavior-site/models/api/admin"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider serves the submission journal to the admin API.
type Provider interface {
	List(filter adminapimodels.SubmissionsFilter) (list []adminapimodels.SubmissionView, rowCount int64, err error)
	ExportXls(filter adminapimodels.SubmissionsFilter) (*bytes.Buffer, error)
	ExportPdf(filter adminapimodels.SubmissionsFilter) ([]byte, error)
}

var Instance Provider

// ErrJournalDisabled is returned when the database is not configured.
var ErrJournalDisabled = errors.New("submission journal is disabled")

func NewHandler(store auditstore.Provider, xls xlsexport.Provider) {
	Instance = impl{
		store: store,
		xls:   xls,
		now:   time.Now,
	}
}

type impl struct {
	store auditstore.Provider
	xls   xlsexport.Provider
	now   func() time.Time
}

func (i impl) List(filter adminapimodels.SubmissionsFilter) ([]adminapimodels.SubmissionView, int64, error) {
	if i.store == nil {
		return nil, 0, ErrJournalDisabled
	}
	page, limit := filter.GetPage()
	list, rowCount, err := i.store.List(filter.ToDB(), page, limit)
	if err != nil {
		log.WithError(err).Error("error listing submissions")
		return nil, 0, err
	}
	result := make([]adminapimodels.SubmissionView, 0, len(list))
	for _, rec := range list {
		result = append(result, adminapimodels.SubmissionConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ExportXls(filter adminapimodels.SubmissionsFilter) (*bytes.Buffer, error) {
	if i.store == nil {
		return nil, ErrJournalDisabled
	}
	list, err := i.store.ListAll(filter.ToDB())
	if err != nil {
		return nil, err
	}
	return i.xls.ExportSubmissions(list)
}

func (i impl) ExportPdf(filter adminapimodels.SubmissionsFilter) ([]byte, error) {
	if i.store == nil {
		return nil, ErrJournalDisabled
	}
	list, err := i.store.ListAll(filter.ToDB())
	if err != nil {
		return nil, err
	}
	return pdfexport.SubmissionsReport(list, i.now())
}
