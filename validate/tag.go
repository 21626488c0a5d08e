package validate

import (
	"event_agenda/constants"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateTag() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTagInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		_, isStaff := helper.GetInfoAccountFromToken(c)
		if !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
