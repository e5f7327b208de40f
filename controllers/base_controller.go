package controllers

import (
	"ocavior-site/middleware"
	apimodels "ocavior-site/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("error parsing request body")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("error parsing request query")
		return errors.New("unable to read request query")
	}
	return nil
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("request_id", middleware.GetRequestID(ctx)).
		WithField("path", ctx.Path())
}
