package pages

import (
	"strings"

	"ocavior-site/controllers"
	"ocavior-site/lib/careers"
	"ocavior-site/lib/content"
	"ocavior-site/middleware"
	"ocavior-site/models"
	"ocavior-site/views"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const careersAnchor = "/#careers"

type sitePageController struct {
	controllers.BaseAPIController
}

// InitSitePageRouters registers the pages with route-level middleware so it does not leak into mounted apps.
func InitSitePageRouters(app *fiber.App, middlewares ...fiber.Handler) {
	controller := sitePageController{}
	chain := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, middlewares...), handler)
	}
	app.Get("/", chain(controller.home)...)
	app.Post("/careers/apply", chain(controller.apply)...)
}

func (c *sitePageController) home(ctx *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(ctx)
	page := views.HomePage{
		Site:   content.Instance.GetSite(),
		Form:   careers.Instance.View(sessionID),
		Accept: strings.Join(models.ResumeExtensions, ","),
	}
	if status, message, ok := careers.Instance.PopNotice(sessionID); ok {
		page.Notice = &views.Notice{Status: status, Message: message}
	}
	html, err := views.RenderHome(page)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("error rendering home page")
		return fiber.ErrInternalServerError
	}
	ctx.Type("html", "utf-8")
	return ctx.Send(html)
}

// apply is the no-script fallback of the careers form: the outcome is shown after the redirect.
func (c *sitePageController) apply(ctx *fiber.Ctx) error {
	fields, err := c.ApplicationParser(ctx)
	if err != nil {
		return ctx.Redirect(careersAnchor, fiber.StatusSeeOther)
	}
	_, err = careers.Instance.Apply(ctx.UserContext(), middleware.GetSessionID(ctx), middleware.GetRequestID(ctx), fields)
	if errors.Is(err, careers.ErrNoSession) {
		return fiber.ErrBadRequest
	}
	return ctx.Redirect(careersAnchor, fiber.StatusSeeOther)
}
