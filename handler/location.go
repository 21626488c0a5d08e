package handler

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetLocations lists venues. Rooms inside the same building share an
// address, so when several locations resolve to one mappable address only
// the first is kept for the map listing.
func GetLocations(c *fiber.Ctx) error {
	var locations model.EventLocations
	if err := database.DB.Order("event_locations.title ASC").Find(&locations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seen := make(map[string]bool, len(locations))
	deduped := make(model.EventLocations, 0, len(locations))
	for i := range locations {
		key := locations[i].MappableLocation
		if key == "" {
			key = locations[i].Slug
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, locations[i])
	}

	return utils.SuccessResponse(c, fiber.StatusOK, deduped)
}

func GetLocationBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var location model.EventLocation
	err := database.DB.Where("slug = ?", slug).First(&location).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LOCATION_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

func CreateLocation(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateLocationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	var location model.EventLocation
	if err := copier.Copy(&location, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	location.Slug = helper.GenerateUniqueLocationSlug(database.DB, location.Title)
	if location.MappableLocation == "" {
		location.MappableLocation = helper.MappableLocation(&location)
	}
	if err := helper.GeocodeLocation(&location); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GEOCODE_FAILED, err)
	}

	if err := database.DB.Create(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, location)
}

func EditLocation(c *fiber.Ctx) error {
	locationId, ok := c.Locals("locationId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}
	input, ok := c.Locals("input").(model.EditLocationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	var location model.EventLocation
	if err := database.DB.First(&location, locationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LOCATION_NOT_FOUND, err)
	}

	addressChanged := false
	if input.Title != nil && *input.Title != location.Title {
		location.Title = *input.Title
		location.Slug = helper.GenerateUniqueLocationSlug(database.DB, location.Title)
	}
	if input.Address != nil {
		location.Address = *input.Address
		addressChanged = true
	}
	if input.PostalCode != nil {
		location.PostalCode = *input.PostalCode
		addressChanged = true
	}
	if input.City != nil {
		location.City = *input.City
		addressChanged = true
	}
	if input.Room != nil {
		location.Room = input.Room
	}
	if input.MappableLocation != nil {
		location.MappableLocation = *input.MappableLocation
	} else if addressChanged {
		location.MappableLocation = helper.MappableLocation(&location)
	}
	if input.Lat != nil {
		location.Lat = input.Lat
	}
	if input.Lon != nil {
		location.Lon = input.Lon
	}
	// A changed address invalidates the stored point unless the caller
	// supplied coordinates in the same request.
	if addressChanged && input.Lat == nil && input.Lon == nil {
		location.Lat = nil
		location.Lon = nil
	}
	if err := helper.GeocodeLocation(&location); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GEOCODE_FAILED, err)
	}

	if err := database.DB.Save(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Cached day indexes are keyed by location title, a rename strands them.
	helper.InvalidateDayIndex(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

// DeleteLocation removes venues and detaches their events rather than
// deleting them.
func DeleteLocation(c *fiber.Ctx) error {
	deleteIds, ok := c.Locals("deleteIds").([]uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Event{}).Where("location_id IN ?", deleteIds).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.EventLocation{}, deleteIds).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateDayIndex(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleteIds})
}
