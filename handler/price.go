package handler

import (
	"event_agenda/constants"
	"event_agenda/database"
	"event_agenda/model"
	"event_agenda/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetPrices(c *fiber.Ctx) error {
	var prices []model.EventPrice
	err := database.DB.Order("event_prices.value DESC").Find(&prices).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, prices)
}

func CreatePrice(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePriceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	var price model.EventPrice
	if err := copier.Copy(&price, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Create(&price).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, price)
}

func EditPrice(c *fiber.Ctx) error {
	priceId, ok := c.Locals("priceId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}
	input, ok := c.Locals("input").(model.EditPriceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	var price model.EventPrice
	if err := database.DB.First(&price, priceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRICE_NOT_FOUND, err)
	}

	if input.Value != nil {
		price.Value = *input.Value
	}
	if input.Unit != nil {
		price.Unit = *input.Unit
	}

	if err := database.DB.Save(&price).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, price)
}

func DeletePrice(c *fiber.Ctx) error {
	deleteIds, ok := c.Locals("deleteIds").([]uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM event_event_prices WHERE event_price_id IN ?", deleteIds).Error; err != nil {
			return err
		}
		return tx.Delete(&model.EventPrice{}, deleteIds).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleteIds})
}
