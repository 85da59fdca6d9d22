package router

import (
	"accommodation_manager/constants"
	"accommodation_manager/handler"
	"accommodation_manager/middleware"
	"accommodation_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, gate *middleware.AccessGate, basePath string) {
	accommodations := app.Group(basePath, logger.New())

	accommodations.Post("/create", gate.Require(constants.RIGHT_SET_HOUSE), validate.CreateAccommodation(), handler.CreateAccommodation)
	accommodations.Get("/read", gate.Require(constants.RIGHT_GET_HOUSE), handler.GetAccommodations)
	accommodations.Put("/update/:id", gate.Require(constants.RIGHT_UPDATE_HOUSE), validate.UpdateAccommodation(), handler.UpdateAccommodation)
	accommodations.Delete("/delete/:id", gate.Require(constants.RIGHT_DELETE_HOUSE), handler.DeleteAccommodation)
}
