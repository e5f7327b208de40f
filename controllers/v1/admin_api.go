package apiv1

import (
	"fmt"
	"time"

	"ocavior-site/controllers"
	adminpanelhandler "ocavior-site/lib/admin-panel"
	adminpanelauthhandler "ocavior-site/lib/admin-panel/auth"
	"ocavior-site/middleware"
	apimodels "ocavior-site/models/api"
	adminapimodels "ocavior-site/models/api/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App, jwtSecret string) {
	controller := adminApiController{}
	app.Post("login", controller.login)

	submissions := fiber.New()
	app.Mount("/submissions", submissions)
	submissions.Use(middleware.AuthorizationRequired(jwtSecret))
	submissions.Use(middleware.AdminRequired())
	submissions.Get("", controller.submissionList)
	submissions.Get("export/xlsx", controller.exportXlsx)
	submissions.Get("export/pdf", controller.exportPdf)
}

// @Summary Admin login
// @Tags Admin
// @Param	body	body	adminapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=adminapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/admin/login [post]
func (c *adminApiController) login(ctx *fiber.Ctx) error {
	var payload adminapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminpanelauthhandler.Instance.Login(payload.Login, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submission journal
// @Tags Admin
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   status		query	string	false	"success | error"
// @Param   position	query	string	false	"position title or slug"
// @Param   page		query	int		false	"page"
// @Param   limit		query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]adminapimodels.SubmissionView}
// @Failure 401
// @Failure 503 {object} apimodels.Response
// @router /api/v1/admin/submissions [get]
func (c *adminApiController) submissionList(ctx *fiber.Ctx) error {
	var filter adminapimodels.SubmissionsFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := adminpanelhandler.Instance.List(filter)
	if err != nil {
		return c.sendJournalError(ctx, err, "error listing submissions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Submission journal export (Excel)
// @Tags Admin
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   status		query	string	false	"success | error"
// @Param   position	query	string	false	"position title or slug"
// @Success 200 {file} file
// @Failure 401
// @Failure 503 {object} apimodels.Response
// @router /api/v1/admin/submissions/export/xlsx [get]
func (c *adminApiController) exportXlsx(ctx *fiber.Ctx) error {
	var filter adminapimodels.SubmissionsFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := adminpanelhandler.Instance.ExportXls(filter)
	if err != nil {
		return c.sendJournalError(ctx, err, "error exporting submissions to Excel")
	}
	fileName := fmt.Sprintf("submissions-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Submission journal export (PDF)
// @Tags Admin
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   status		query	string	false	"success | error"
// @Param   position	query	string	false	"position title or slug"
// @Success 200 {file} file
// @Failure 401
// @Failure 503 {object} apimodels.Response
// @router /api/v1/admin/submissions/export/pdf [get]
func (c *adminApiController) exportPdf(ctx *fiber.Ctx) error {
	var filter adminapimodels.SubmissionsFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := adminpanelhandler.Instance.ExportPdf(filter)
	if err != nil {
		return c.sendJournalError(ctx, err, "error exporting submissions to PDF")
	}
	fileName := fmt.Sprintf("submissions-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

func (c *adminApiController) sendJournalError(ctx *fiber.Ctx, err error, message string) error {
	if errors.Is(err, adminpanelhandler.ErrJournalDisabled) {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, message)
}
