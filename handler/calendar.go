package handler

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetCalendarDays serves the day-picker index: one entry per calendar day
// between the first and last event date, flagged enabled/disabled. The
// optional locations filter keeps the full span but only enables days with
// an event at one of those locations.
func GetCalendarDays(c *fiber.Ctx) error {
	var filterInput struct {
		Locations []string `query:"locations"`
	}
	if err := c.QueryParser(&filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if entries := helper.CachedDayIndex(c.Context(), filterInput.Locations); entries != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, entries)
	}

	var events []model.Event
	err := helper.VisibleEvents(database.DB, false, time.Now()).
		Preload("Periods").
		Preload("Location").
		Order("events.start ASC").
		Find(&events).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(events) == 0 {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.NO_EVENTS_TO_INDEX, helper.ErrNoEventsToIndex)
	}

	entries, err := helper.BuildDayIndex(events, filterInput.Locations)
	if err != nil {
		if errors.Is(err, helper.ErrNoEventsToIndex) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.NO_EVENTS_TO_INDEX, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.StoreDayIndex(c.Context(), filterInput.Locations, entries)
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}
