package middleware

import (
	authutils "ocavior-site/lib/utils/auth-utils"
	apimodels "ocavior-site/models/api"

	"github.com/gofiber/fiber/v2"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		isAdmin, _ := authutils.GetClaims(ctx)["admin"].(bool)
		if !isAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}
