package validate

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// latLonPaired rejects a latitude without a longitude and vice versa.
func latLonPaired(lat, lon *float64) bool {
	return (lat == nil) == (lon == nil)
}

func CreateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateLocationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !latLonPaired(input.Lat, input.Lon) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LAT_LON_PAIR, errors.New("lat/lon mismatch"))
		}

		_, isStaff := helper.GetInfoAccountFromToken(c)
		if !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditLocation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.EditLocationInput
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

		var location model.EventLocation
		if err := database.DB.First(&location, valueKey).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LOCATION_NOT_FOUND, err)
		}

		lat := location.Lat
		if input.Lat != nil {
			lat = input.Lat
		}
		lon := location.Lon
		if input.Lon != nil {
			lon = input.Lon
		}
		if !latLonPaired(lat, lon) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LAT_LON_PAIR, errors.New("lat/lon mismatch"))
		}

		c.Locals("locationId", uint(valueKey))
		c.Locals("input", input)
		return c.Next()
	}
}
