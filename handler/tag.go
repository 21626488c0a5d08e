package handler

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/model"
	"event_agenda/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetTags(c *fiber.Ctx) error {
	var tags []model.Tag
	if err := database.DB.Order("tags.name ASC").Find(&tags).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tags)
}

func CreateTag(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTagInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	tag := model.Tag{
		Name: input.Name,
		Slug: helper.GenerateUniqueTagSlug(database.DB, input.Name),
	}
	if err := database.DB.Create(&tag).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, tag)
}

func DeleteTag(c *fiber.Ctx) error {
	deleteIds, ok := c.Locals("deleteIds").([]uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM event_tags WHERE tag_id IN ?", deleteIds).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, deleteIds).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleteIds})
}
