package validate

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// checkEventDates enforces the end-not-before-start invariant shared by
// events and their periods.
func checkEventDates(input *model.CreateEventInput) error {
	if input.End != nil && input.End.Before(input.Start) {
		return errors.New(constants.END_BEFORE_START)
	}
	for _, p := range input.Periods {
		if p.DateTo != nil && p.DateTo.Before(p.DateFrom) {
			return errors.New(constants.END_BEFORE_START)
		}
	}
	return nil
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := checkEventDates(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_BEFORE_START, err)
		}

		_, isStaff := helper.GetInfoAccountFromToken(c)
		if !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
		}

		if input.ParentId != nil {
			var parent model.Event
			if err := database.DB.First(&parent, *input.ParentId).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_NOT_FOUND, fmt.Errorf("parent %d", *input.ParentId))
			}
			// Parent/child nesting is one level deep.
			if parent.ParentId != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PARENT, fmt.Errorf("parent %d is itself a child", *input.ParentId))
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.EditEventInput
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

		var event model.Event
		if err := database.DB.First(&event, valueKey).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}

		if input.ParentId != nil {
			if *input.ParentId == event.ID {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PARENT, errors.New("event is its own parent"))
			}
			var parent model.Event
			if err := database.DB.First(&parent, *input.ParentId).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_NOT_FOUND, fmt.Errorf("parent %d", *input.ParentId))
			}
			// One level deep keeps derivation cycle-free.
			if parent.ParentId != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PARENT, fmt.Errorf("parent %d is itself a child", *input.ParentId))
			}
		}

		start := event.Start
		if input.Start != nil {
			start = *input.Start
		}
		end := event.End
		if input.End != nil {
			end = input.End
		}
		if end != nil && end.Before(start) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_BEFORE_START, errors.New("end before start"))
		}
		if input.Periods != nil {
			for _, p := range *input.Periods {
				if p.DateTo != nil && p.DateTo.Before(p.DateFrom) {
					return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_BEFORE_START, errors.New("period end before start"))
				}
			}
		}

		c.Locals("eventId", uint(valueKey))
		c.Locals("input", input)
		return c.Next()
	}
}
