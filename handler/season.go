package handler

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetArchive picks the current calendar year and redirects to its canonical
// archive URL.
func GetArchive(c *fiber.Ctx) error {
	year := time.Now().Year()
	return c.Redirect("/api/v1/archive/"+strconv.Itoa(year), fiber.StatusFound)
}

type archiveMonth struct {
	Year   int          `json:"year"`
	Month  string       `json:"month"`
	Events model.Events `json:"events"`
}

// GetArchiveYear browses one season: the Aug 1 - Jul 31 window starting in
// the given year, with the querying end clipped to today for the current
// season so future events stay out of the archive. Events are grouped by
// every month their [start, end] interval overlaps.
func GetArchiveYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEASON_NOT_FOUND, err)
	}
	_, isStaff := helper.GetInfoAccountFromToken(c)

	db := database.DB
	season, err := helper.ResolveSeason(db, year)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	effectiveEnd := helper.EffectiveEnd(season, now)

	var events model.Events
	err = preloadEvent(
		helper.VisibleEvents(db, isStaff, now).
			Where("events.start >= ? AND events.start <= ?", season.Start, effectiveEnd).
			Order("events.rank ASC NULLS LAST, events.start ASC"),
	).Find(&events).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	events = helper.MaterializeAll(events)

	// One bucket per month of the season, containing every event whose
	// interval touches that month. A multi-month event shows up in each
	// month it spans.
	var months []archiveMonth
	for cursor := season.Start; cursor.Before(effectiveEnd); cursor = cursor.AddDate(0, 1, 0) {
		cursor = time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
		bucket := archiveMonth{Year: cursor.Year(), Month: cursor.Month().String()}
		for i := range events {
			if helper.MonthOverlaps(events[i].Start, events[i].End, cursor.Year(), cursor.Month()) {
				bucket.Events = append(bucket.Events, events[i])
			}
		}
		if len(bucket.Events) > 0 {
			months = append(months, bucket)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"season":       season,
		"effectiveEnd": effectiveEnd,
		"months":       months,
		"totalEvents":  len(events),
	})
}
