package handler

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"
	"encoding/base64"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func preloadEvent(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Location").
		Preload("Category").
		Preload("User").
		Preload("Periods").
		Preload("Tags").
		Preload("Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_prices.value DESC")
		}).
		Preload("Parent").
		Preload("Parent.User").
		Preload("Parent.Location")
}

func GetEvents(c *fiber.Ctx) error {
	filterInput := new(model.FilterEventInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	_, isStaff := helper.GetInfoAccountFromToken(c)

	db := database.DB
	now := time.Now()
	opts := helper.FilterOptions{
		Tag:            filterInput.Tag,
		Year:           filterInput.Year,
		Month:          filterInput.Month,
		Day:            filterInput.Day,
		Week:           filterInput.Week,
		LocationSlug:   filterInput.Location,
		LocationTitles: filterInput.Locations,
		CategoryNames:  filterInput.Categories,
		Author:         filterInput.Author,
		Staff:          isStaff,
		Now:            now,
	}
	query, fctx, err := helper.FilterEvents(db, opts, Cfg)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit := Cfg.EventPerPage
	page := 1
	if filterInput.Limit != nil && *filterInput.Limit > 0 {
		limit = *filterInput.Limit
	}
	if filterInput.Page != nil && *filterInput.Page > 0 {
		page = *filterInput.Page
	}
	query = utils.ApplyPagination(query, &limit, &page)

	var events model.Events
	if err := preloadEvent(query).Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	// Child events list under their parent's identity, same as the detail
	// view.
	events = helper.MaterializeAll(events)

	var author string
	if fctx.Author != nil {
		author = fctx.Author.Username
	}
	response := fiber.Map{
		"events": model.ResponseCustom{
			Rows:       events,
			Limit:      &limit,
			Page:       &page,
			TotalCount: total,
		},
		"context":           fctx,
		"maxPagingLinks":    Cfg.MaxPagingLinks,
		"highlightCategory": Cfg.HighlightCat,
		"templates":         helper.ListTemplateCandidates(fctx.Location, author, "agenda/event_list.html"),
	}

	// Optional side list of already finished events, newest first.
	if Cfg.PastEvents {
		var pastEvents model.Events
		past := helper.VisibleEvents(db, isStaff, now).
			Where("events.start <= ?", now).
			Where("(events.end IS NULL OR events.end <= ?)", now).
			Order("events.start DESC").
			Limit(limit)
		if err := preloadEvent(past).Find(&pastEvents).Error; err == nil {
			response["pastEvents"] = helper.MaterializeAll(pastEvents)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func findVisibleBySlug(c *fiber.Ctx, slug string) (*model.Event, error) {
	_, isStaff := helper.GetInfoAccountFromToken(c)
	var event model.Event
	query := helper.VisibleEvents(database.DB, isStaff, time.Now())
	err := preloadEvent(query).
		Where("events.slug = ?", slug).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	event, err := findVisibleBySlug(c, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// A child event renders with its parent's identity but keeps its own
	// schedule, see helper.MaterializeChild.
	contextEvent := event
	var child *model.Event
	if event.Parent != nil {
		contextEvent = helper.MaterializeChild(event, event.Parent)
		child = event
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"event":       contextEvent,
		"child":       child,
		"dateDisplay": helper.DateDisplay(contextEvent),
		"shopUrl":     helper.ShopURL(contextEvent, Cfg),
		"url":         helper.EventPath(contextEvent, Cfg),
		"templates":   []string{"agenda/event_detail_" + slug + ".html", "agenda/event_detail.html"},
	})
}

func GetEventBooking(c *fiber.Ctx) error {
	slug := c.Params("slug")
	event, err := findVisibleBySlug(c, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Sold-out events have nothing to book, send the caller back to the
	// detail page.
	if event.IsFull {
		return c.Redirect(helper.EventPath(event, Cfg), fiber.StatusSeeOther)
	}

	shopUrl := helper.ShopURL(event, Cfg)
	response := fiber.Map{
		"event":   event,
		"shopUrl": shopUrl,
	}
	if shopUrl != "" {
		if qr, err := utils.GenerateQRCode(shopUrl, 256); err == nil {
			response["shopQr"] = base64.StdEncoding.EncodeToString(qr)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	accountInfo, _ := helper.GetInfoAccountFromToken(c)

	var newEvent model.Event
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		copier.Copy(&newEvent, &input)
		newEvent.Slug = helper.GenerateUniqueEventSlug(tx, input.Title)
		newEvent.UserId = accountInfo.AccountId
		if newEvent.Status == "" {
			newEvent.Status = model.StatusDraft
		}

		season, err := helper.ResolveSeason(tx, helper.SeasonYearFor(input.Start))
		if err != nil {
			return err
		}
		newEvent.SeasonId = &season.ID

		newEvent.Periods = nil
		for _, p := range input.Periods {
			newEvent.Periods = append(newEvent.Periods, model.EventPeriod{DateFrom: p.DateFrom, DateTo: p.DateTo})
		}

		if len(input.PriceIds) > 0 {
			if err := tx.Find(&newEvent.Prices, input.PriceIds).Error; err != nil {
				return err
			}
		}
		if len(input.TagIds) > 0 {
			if err := tx.Find(&newEvent.Tags, input.TagIds).Error; err != nil {
				return err
			}
		}

		return tx.Create(&newEvent).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.InvalidateDayIndex(c.Context())
	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func EditEvent(c *fiber.Ctx) error {
	eventId, ok := c.Locals("eventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("input").(model.EditEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var event model.Event
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, eventId).Error; err != nil {
			return err
		}

		if input.Title != nil && *input.Title != event.Title {
			event.Title = *input.Title
			event.Slug = helper.GenerateUniqueEventSlug(tx, *input.Title)
		}
		if input.SubTitle != nil {
			event.SubTitle = input.SubTitle
		}
		if input.Content != nil {
			event.Content = *input.Content
		}
		if input.DateText != nil {
			event.DateText = input.DateText
		}
		if input.Status != nil {
			event.Status = *input.Status
		}
		if input.PublishDate != nil {
			event.PublishDate = input.PublishDate
		}
		if input.ExpiryDate != nil {
			event.ExpiryDate = input.ExpiryDate
		}
		if input.Start != nil {
			event.Start = *input.Start
			season, err := helper.ResolveSeason(tx, helper.SeasonYearFor(*input.Start))
			if err != nil {
				return err
			}
			event.SeasonId = &season.ID
		}
		if input.End != nil {
			event.End = input.End
		}
		if input.IsFull != nil {
			event.IsFull = *input.IsFull
		}
		if input.ExternalId != nil {
			event.ExternalId = input.ExternalId
		}
		if input.Rank != nil {
			event.Rank = input.Rank
		}
		if input.LocationId != nil {
			event.LocationId = input.LocationId
		}
		if input.CategoryId != nil {
			event.CategoryId = input.CategoryId
		}
		if input.ParentId != nil {
			event.ParentId = input.ParentId
		}

		if input.Periods != nil {
			if err := tx.Where("event_id = ?", event.ID).Delete(&model.EventPeriod{}).Error; err != nil {
				return err
			}
			for _, p := range *input.Periods {
				period := model.EventPeriod{EventId: event.ID, DateFrom: p.DateFrom, DateTo: p.DateTo}
				if err := tx.Create(&period).Error; err != nil {
					return err
				}
			}
		}
		if input.PriceIds != nil {
			var prices []model.EventPrice
			if len(*input.PriceIds) > 0 {
				if err := tx.Find(&prices, *input.PriceIds).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&event).Association("Prices").Replace(prices); err != nil {
				return err
			}
		}
		if input.TagIds != nil {
			var tags []model.Tag
			if len(*input.TagIds) > 0 {
				if err := tx.Find(&tags, *input.TagIds).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&event).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return tx.Save(&event).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	helper.InvalidateDayIndex(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func DeleteEvent(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").([]uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	_, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id IN ?", ids).Delete(&model.EventPeriod{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_tags WHERE event_id IN ?", ids).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_event_prices WHERE event_id IN ?", ids).Error; err != nil {
			return err
		}
		// Children lose their parent but stay.
		if err := tx.Model(&model.Event{}).Where("parent_id IN ?", ids).Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Event{}, ids).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.InvalidateDayIndex(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": ids})
}

// UploadEventBrochure attaches a PDF (or any document) to an event. The file
// is stored on Cloudinary and only its URL persisted.
func UploadEventBrochure(c *fiber.Ctx) error {
	eventId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	_, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	file, err := c.FormFile("brochure")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	url, err := helper.UploadBrochure(c.Context(), file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BROCHURE_UPLOAD, err)
	}

	event.BrochureUrl = &url
	if err := database.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}
