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
	"gorm.io/gorm"
)

func sendICal(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, "text/calendar")
	return c.SendString(body)
}

// GetEventICal exports a single event as an iCalendar document.
func GetEventICal(c *fiber.Ctx) error {
	slug := c.Params("slug")
	event, err := findVisibleBySlug(c, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Export the derived fields, so a child's SUMMARY carries the parent's
	// title.
	event = helper.MaterializeChild(event, event.Parent)

	cal := helper.MakeCalendar()
	helper.AddICalEvent(cal, event, Cfg)
	return sendICal(c, cal.Serialize())
}

// GetICalFeed exports a filtered event collection as one aggregate feed,
// applying the same filter conjunction as the listing.
func GetICalFeed(c *fiber.Ctx) error {
	filterInput := new(model.FilterEventInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	_, isStaff := helper.GetInfoAccountFromToken(c)

	opts := helper.FilterOptions{
		Tag:            filterInput.Tag,
		Year:           filterInput.Year,
		Month:          filterInput.Month,
		Day:            filterInput.Day,
		LocationSlug:   filterInput.Location,
		LocationTitles: filterInput.Locations,
		Author:         filterInput.Author,
		Staff:          isStaff,
		Now:            time.Now(),
	}
	query, _, err := helper.FilterEvents(database.DB, opts, Cfg)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var events model.Events
	err = query.
		Preload("Location").
		Preload("Parent").
		Preload("Parent.Location").
		Find(&events).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	events = helper.MaterializeAll(events)

	cal := helper.MakeCalendar()
	for i := range events {
		helper.AddICalEvent(cal, &events[i], Cfg)
	}
	return sendICal(c, cal.Serialize())
}
