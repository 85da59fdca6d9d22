package helper

import (
	"accommodation_manager/constants"
	"accommodation_manager/model"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrDenied is returned from transaction bodies to roll back after a deny
// decision has already been captured.
var ErrDenied = errors.New("request denied")

// DenyReason distinguishes causes that share a wire-level status/message.
// The HTTP surface deliberately conflates some of them (a missing user and
// a wrong role both answer 403 with the same body), but callers can still
// tell them apart here.
type DenyReason int

const (
	DenyBadInput DenyReason = iota
	DenyUserNotFound
	DenyNotOwnerRole
	DenyAccommodationMissing
	DenyNotOwned
	DenyUnavailable
	DenyActiveLease
)

type OwnershipError struct {
	Reason  DenyReason
	Status  int
	Message string
}

func (e *OwnershipError) Error() string {
	return e.Message
}

// ValidateOwnerAccommodation resolves the requesting user and the target
// accommodation and asserts ownership. Checks run in order and stop at the
// first failure; a deny result is returned separately from unexpected
// database errors, which the caller maps to a 500.
func ValidateOwnerAccommodation(db *gorm.DB, userIDRaw, accommodationIDRaw string) (*model.User, *model.Accommodation, *OwnershipError, error) {
	userID, err := strconv.ParseUint(userIDRaw, 10, 64)
	if err != nil || userID == 0 {
		return nil, nil, &OwnershipError{DenyBadInput, fiber.StatusBadRequest, constants.INVALID_OWNER_PARAMS}, nil
	}
	accommodationID, err := strconv.ParseUint(accommodationIDRaw, 10, 64)
	if err != nil {
		return nil, nil, &OwnershipError{DenyBadInput, fiber.StatusBadRequest, constants.INVALID_OWNER_PARAMS}, nil
	}

	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &OwnershipError{DenyUserNotFound, fiber.StatusForbidden, constants.FORBIDDEN_NOT_OWNER_OR_NF}, nil
		}
		return nil, nil, nil, err
	}
	if user.Role != constants.ROLE_OWNER {
		return nil, nil, &OwnershipError{DenyNotOwnerRole, fiber.StatusForbidden, constants.FORBIDDEN_NOT_OWNER_OR_NF}, nil
	}

	var accommodation model.Accommodation
	if err := db.First(&accommodation, accommodationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &OwnershipError{DenyAccommodationMissing, fiber.StatusNotFound, constants.ACCOMMODATION_NOT_FOUND}, nil
		}
		return nil, nil, nil, err
	}
	if accommodation.UserID != uint(userID) {
		return nil, nil, &OwnershipError{DenyNotOwned, fiber.StatusForbidden, constants.FORBIDDEN_NOT_YOURS}, nil
	}

	return &user, &accommodation, nil, nil
}

// CheckMutable decides mutation eligibility for an already owner-validated
// accommodation. It must run after ValidateOwnerAccommodation so ownership
// failures never leak lease state. action is "update" or "delete".
func CheckMutable(db *gorm.DB, accommodation *model.Accommodation, action string) (*OwnershipError, error) {
	if !accommodation.Available {
		msg := fmt.Sprintf("Accommodation is not available and cannot be %sd", action)
		return &OwnershipError{DenyUnavailable, fiber.StatusBadRequest, msg}, nil
	}

	var lease model.Lease
	err := db.Where("accommodation_id = ? AND active = ?", accommodation.ID, true).First(&lease).Error
	if err == nil {
		msg := fmt.Sprintf("Cannot %s accommodation with active lease", action)
		return &OwnershipError{DenyActiveLease, fiber.StatusBadRequest, msg}, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}
