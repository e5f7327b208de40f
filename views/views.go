package views

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"ocavior-site/models"
	careersapimodels "ocavior-site/models/api/careers"
	contentapimodels "ocavior-site/models/api/content"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"isPending": func(status models.SubmissionStatus) bool {
		return status == models.SubmissionStatusPending
	},
}).ParseFS(files, "templates/*.html"))

// Notice is the one-shot banner shown after a settled submission.
type Notice struct {
	Status  models.SubmissionStatus
	Message string
}

type HomePage struct {
	Site   contentapimodels.Site
	Form   careersapimodels.FormView
	Notice *Notice
	Accept string
}

func RenderHome(page HomePage) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := pages.ExecuteTemplate(buf, "home.html", page); err != nil {
		return nil, errors.Wrap(err, "error rendering home page")
	}
	return buf.Bytes(), nil
}
