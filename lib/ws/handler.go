package ws

import (
	"context"

	"ocavior-site/lib/carousel"
	"ocavior-site/lib/content"
	wsclient "ocavior-site/lib/ws/client"
	connectionhub "ocavior-site/lib/ws/hub/connection-hub"
	apimodels "ocavior-site/models/api"
	wsmodels "ocavior-site/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	localsSpec     = "carouselSpec"
	localsClientID = "clientID"
)

func InitWs(ctx context.Context, app *fiber.App) {
	app.Use("/carousel/:name", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		spec, err := content.Instance.GetCarousel(c.Params("name"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		c.Locals(localsSpec, spec)
		c.Locals(localsClientID, uuid.NewString())
		return c.Next()
	})
	app.Get("/carousel/:name", websocket.New(func(c *websocket.Conn) {
		carouselHandler(ctx, c)
	}))
}

// @Summary Carousel stream
// @Tags Websocket
// @Description Mounts a carousel for the connection. Server sends {"carousel","index","size"} on mount and on every change, client may send {"select": i}.
// @Param   name   path   string   true   "hero | testimonials | features"
// @Success 101 {object} wsmodels.CarouselMessage
// @Failure 404 {object} apimodels.Response
// @Failure 426
// @router /ws/carousel/{name} [get]
func carouselHandler(ctx context.Context, c *websocket.Conn) {
	spec := c.Locals(localsSpec).(content.CarouselSpec)
	clientID := c.Locals(localsClientID).(string)
	logger := log.
		WithField("carousel", spec.Name).
		WithField("client_id", clientID)

	car, err := carousel.New(spec.Size, spec.Interval)
	if err != nil {
		logger.WithError(err).Error("error mounting carousel")
		return
	}
	out := connectionhub.Instance.AddClient(clientID, c)
	defer connectionhub.Instance.DeleteClient(clientID)

	car.Subscribe(func(index int) {
		out.Send(wsmodels.CarouselMessage{Carousel: spec.Name, Index: index, Size: spec.Size})
	})
	out.Send(wsmodels.CarouselMessage{Carousel: spec.Name, Index: car.Index(), Size: spec.Size})
	stop := car.Start(ctx)
	defer stop()

	logger.Debug("carousel mounted")
	wsclient.NewClient(spec.Name, c, car, out).Dispatch()
	logger.Debug("carousel unmounted")
}
