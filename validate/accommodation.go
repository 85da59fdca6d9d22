package validate

import (
	"accommodation_manager/constants"
	"accommodation_manager/model"
	"accommodation_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAccommodation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccommodationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS)
		}
		c.Locals("createInput", input)
		return c.Next()
	}
}

// UpdateAccommodation parses the partial patch body. An empty body is a
// valid no-op patch; ownership and lease checks still run in the handler.
func UpdateAccommodation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateAccommodationInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT)
			}
		}
		c.Locals("updateInput", input)
		return c.Next()
	}
}
