package handler

import (
	"github.com/gofiber/fiber/v2"

	"stubapi/internal/model"
)

// RegisterStatusRoutes attaches the status probe routes.
func RegisterStatusRoutes(app fiber.Router) {
	app.Get("/test", StatusProbe())
}

// StatusProbe godoc
// @Summary Status probe
// @Description Always reports that the API is running. Query and body are ignored.
// @Tags status
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /test [get]
func StatusProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(model.NewStatusResponse())
	}
}
