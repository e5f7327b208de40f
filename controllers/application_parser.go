package controllers

import (
	"io"
	"mime/multipart"

	careersapimodels "ocavior-site/models/api/careers"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const resumeField = "resume"

// ApplicationParser reads the careers form: text fields plus an optional resume file part.
func (c *BaseAPIController) ApplicationParser(ctx *fiber.Ctx) (careersapimodels.ApplicationForm, error) {
	var form careersapimodels.ApplicationForm
	if err := c.BodyParser(ctx, &form); err != nil {
		return form, err
	}
	multipartForm, err := ctx.MultipartForm()
	if err != nil {
		// urlencoded or JSON body, no file parts
		return form, nil
	}
	files := multipartForm.File[resumeField]
	if len(files) == 0 || files[0].Filename == "" {
		return form, nil
	}
	resume, err := readResume(files[0])
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("error reading resume file")
		return form, errors.New("unable to read resume file")
	}
	form.Resume = resume
	return form, nil
}

func readResume(header *multipart.FileHeader) (*careersapimodels.ResumeFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "error opening resume part")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "error reading resume part")
	}
	return &careersapimodels.ResumeFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Body:        body,
	}, nil
}
