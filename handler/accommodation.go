package handler

import (
	"accommodation_manager/constants"
	"accommodation_manager/database"
	"accommodation_manager/helper"
	"accommodation_manager/model"
	"accommodation_manager/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateAccommodation(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateAccommodationInput)

	var owner model.User
	if err := database.DB.First(&owner, *input.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATING_ACCOMMODATION)
	}
	if owner.Role != constants.ROLE_OWNER {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ONLY_OWNERS_CAN_CREATE)
	}

	var accommodation model.Accommodation
	copier.Copy(&accommodation, &input)
	accommodation.Available = *input.Available
	accommodation.UserID = *input.OwnerID
	accommodation.Slug = helper.GenerateUniqueAccommodationSlug(database.DB, input.Name)

	if err := database.DB.Create(&accommodation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATING_ACCOMMODATION)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, accommodation)
}

func GetAccommodations(c *fiber.Ctx) error {
	userIDRaw := c.Query("userId")
	if userIDRaw == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_USER_ID)
	}

	available := c.Query("available")
	if available != "" && available != "true" && available != "false" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_AVAILABLE_FILTER)
	}

	// A non-numeric userId resolves to no user, same as an unknown id.
	userID, parseErr := strconv.ParseUint(userIDRaw, 10, 64)
	if parseErr != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_USER_NOT_FOUND)
	}

	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_USER_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_SERVER_ERROR)
	}
	if user.Role != constants.ROLE_OWNER {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_NOT_AN_OWNER)
	}

	db := database.DB.Where("user_id = ?", user.ID)
	if available != "" {
		db = db.Where("available = ?", available == "true")
	}

	accommodations := []model.Accommodation{}
	if err := db.Find(&accommodations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_SERVER_ERROR)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accommodations)
}

// UpdateAccommodation runs validator, guard and the patch inside one
// transaction so the eligibility check and the mutation see a single
// consistent snapshot.
func UpdateAccommodation(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateAccommodationInput)
	userIDRaw := c.Get("user-id")
	idRaw := c.Params("id")

	var denied *helper.OwnershipError
	var updated model.Accommodation

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		_, accommodation, deny, err := helper.ValidateOwnerAccommodation(tx, userIDRaw, idRaw)
		if err != nil {
			return err
		}
		if deny != nil {
			denied = deny
			return helper.ErrDenied
		}

		deny, err = helper.CheckMutable(tx, accommodation, "update")
		if err != nil {
			return err
		}
		if deny != nil {
			denied = deny
			return helper.ErrDenied
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
			updates["slug"] = helper.GenerateUniqueAccommodationSlug(tx, *input.Name)
		}
		if input.Type != nil {
			updates["type"] = *input.Type
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}
		if input.Desc != nil {
			updates["desc"] = *input.Desc
		}
		if input.Available != nil {
			updates["available"] = *input.Available
		}

		if len(updates) > 0 {
			if err := tx.Model(&model.Accommodation{}).Where("id = ?", accommodation.ID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, accommodation.ID).Error
	})

	if denied != nil {
		return utils.ErrorResponse(c, denied.Status, denied.Message)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_SERVER_ERROR)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":              constants.UPDATED_SUCCESSFULLY,
		"updatedAccommodation": updated,
	})
}

// DeleteAccommodation cascades by hand: events first, then leases, then
// the accommodation row, all in one transaction.
func DeleteAccommodation(c *fiber.Ctx) error {
	userIDRaw := c.Get("user-id")
	idRaw := c.Params("id")

	var denied *helper.OwnershipError

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		_, accommodation, deny, err := helper.ValidateOwnerAccommodation(tx, userIDRaw, idRaw)
		if err != nil {
			return err
		}
		if deny != nil {
			denied = deny
			return helper.ErrDenied
		}

		deny, err = helper.CheckMutable(tx, accommodation, "delete")
		if err != nil {
			return err
		}
		if deny != nil {
			denied = deny
			return helper.ErrDenied
		}

		if err := tx.Where("accommodation_id = ?", accommodation.ID).Delete(&model.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", accommodation.ID).Delete(&model.Lease{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Accommodation{}, accommodation.ID).Error
	})

	if denied != nil {
		return utils.ErrorResponse(c, denied.Status, denied.Message)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_SERVER_ERROR)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.DELETED_SUCCESSFULLY,
	})
}
