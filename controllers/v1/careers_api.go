package apiv1

import (
	"ocavior-site/controllers"
	applicationform "ocavior-site/lib/application-form"
	"ocavior-site/lib/careers"
	"ocavior-site/lib/content"
	"ocavior-site/middleware"
	apimodels "ocavior-site/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type careersApiController struct {
	controllers.BaseAPIController
}

func InitCareersApiRouters(app *fiber.App) {
	controller := careersApiController{}
	app.Route("careers", func(router fiber.Router) {
		router.Get("positions", controller.positions)
		router.Get("form", controller.form)
		router.Post("apply", controller.apply)
	})
}

// @Summary Open positions
// @Tags Careers
// @Description Positions a candidate may apply for
// @Success 200 {object} apimodels.Response{data=[]contentapimodels.OpenPosition}
// @router /api/v1/careers/positions [get]
func (c *careersApiController) positions(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(content.Instance.GetSite().Positions))
}

// @Summary Application form state
// @Tags Careers
// @Description Field values and submission status of the visitor session (cookie ocavior_sid)
// @Success 200 {object} apimodels.Response{data=careersapimodels.FormView}
// @router /api/v1/careers/form [get]
func (c *careersApiController) form(ctx *fiber.Ctx) error {
	view := careers.Instance.View(middleware.GetSessionID(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Apply for a position
// @Tags Careers
// @Description Submits the application to the employees service. The message of a failed submission is taken from the service response or is "Failed to submit application".
// @Accept  multipart/form-data
// @Param   firstName   formData  string  true   "first name"
// @Param   lastName    formData  string  true   "last name"
// @Param   email       formData  string  true   "email"
// @Param   position    formData  string  true   "position title or slug"
// @Param   experience  formData  string  false  "experience & skills"
// @Param   resume      formData  file    false  ".pdf, .doc, .docx"
// @Success 200 {object} apimodels.Response{data=careersapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/careers/apply [post]
func (c *careersApiController) apply(ctx *fiber.Ctx) error {
	fields, err := c.ApplicationParser(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := careers.Instance.Apply(ctx.UserContext(), middleware.GetSessionID(ctx), middleware.GetRequestID(ctx), fields)
	if err != nil {
		var vErr *applicationform.ValidationError
		switch {
		case errors.As(err, &vErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(vErr.Message))
		case errors.Is(err, applicationform.ErrSubmitPending):
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, careers.ErrNoSession):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError(result.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
