package apiv1

import (
	"ocavior-site/controllers"
	"ocavior-site/db"
	connectionhub "ocavior-site/lib/ws/hub/connection-hub"
	apimodels "ocavior-site/models/api"

	"github.com/gofiber/fiber/v2"
)

type healthApiController struct {
	controllers.BaseAPIController
	journalEnabled bool
}

type HealthView struct {
	Database        string `json:"database"` // ok | disabled | unavailable
	CarouselStreams int    `json:"carousel_streams"`
}

func InitHealthApiRouters(app *fiber.App, journalEnabled bool) {
	controller := healthApiController{journalEnabled: journalEnabled}
	app.Get("health", controller.health)
}

// @Summary Service health
// @Tags Health
// @Success 200 {object} apimodels.Response{data=apiv1.HealthView}
// @Failure 503 {object} apimodels.Response{data=apiv1.HealthView}
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	view := HealthView{Database: "disabled"}
	if connectionhub.Instance != nil {
		view.CarouselStreams = connectionhub.Instance.Count()
	}
	if !c.journalEnabled {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
	}
	if err := db.PingDB(); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("database ping failed")
		view.Database = "unavailable"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.Response{Status: "fail", Message: "database unavailable", Data: view})
	}
	view.Database = "ok"
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
