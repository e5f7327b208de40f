package apiv1

import (
	"ocavior-site/controllers"
	"ocavior-site/lib/content"
	apimodels "ocavior-site/models/api"

	"github.com/gofiber/fiber/v2"
)

type contentApiController struct {
	controllers.BaseAPIController
}

func InitContentApiRouters(app *fiber.App) {
	controller := contentApiController{}
	app.Route("content", func(router fiber.Router) {
		router.Get("", controller.site)
		router.Get(":section", controller.section)
	})
}

// @Summary Site content
// @Tags Content
// @Success 200 {object} apimodels.Response{data=contentapimodels.Site}
// @router /api/v1/content [get]
func (c *contentApiController) site(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(content.Instance.GetSite()))
}

// @Summary Site section
// @Tags Content
// @Param   section  path  string  true  "navigation | hero | about | services | case-studies | features | testimonials | positions | footer"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/content/{section} [get]
func (c *contentApiController) section(ctx *fiber.Ctx) error {
	section, err := content.Instance.GetSection(ctx.Params("section"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(section))
}
