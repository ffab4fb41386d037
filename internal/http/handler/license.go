package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/service"
)

func licenseData(c *fiber.Ctx) (service.LicenseData, error) {
	productID, err := paramInt64(c, "productId")
	if err != nil {
		return service.LicenseData{}, err
	}
	ownerID, err := paramInt64(c, "ownerId")
	if err != nil {
		return service.LicenseData{}, err
	}
	licenseTypeID, err := paramInt64(c, "licenseTypeId")
	if err != nil {
		return service.LicenseData{}, err
	}
	deviceCount, err := paramInt(c, "deviceCount")
	if err != nil {
		return service.LicenseData{}, err
	}
	duration, err := paramInt64(c, "duration")
	if err != nil {
		return service.LicenseData{}, err
	}
	return service.LicenseData{
		ProductID:     productID,
		OwnerID:       ownerID,
		LicenseTypeID: licenseTypeID,
		DeviceCount:   deviceCount,
		DurationDays:  duration,
	}, nil
}

// CreateLicense issues a new license.
//
// @Summary Issue a license
// @Tags license
// @Accept x-www-form-urlencoded
// @Produce json
// @Param productId formData int true "Product id"
// @Param ownerId formData int true "Owning user id"
// @Param licenseTypeId formData int true "License type id"
// @Param deviceCount formData int true "Allowed device count"
// @Param duration formData int true "Duration in days"
// @Success 201 {object} model.License
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/license [post]
func CreateLicense(svc service.LicenseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := licenseData(c)
		if err != nil {
			return writeDomainError(c, "INVALID_PARAM", "failed to save license", err)
		}
		lic, err := svc.Save(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "SAVE_FAILED", "failed to save license", err)
		}
		return c.Status(fiber.StatusCreated).JSON(lic)
	}
}

// ListLicenses returns every license.
//
// @Summary List licenses
// @Tags license
// @Produce json
// @Success 200 {array} model.License
// @Security BearerAuth
// @Router /settings/license [get]
func ListLicenses(svc service.LicenseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		licenses, err := svc.GetAll(c.UserContext())
		if err != nil {
			return writeDomainError(c, "LIST_FAILED", "failed to list licenses", err)
		}
		return c.JSON(licenses)
	}
}

// UpdateLicense rewrites an existing license.
//
// @Summary Update a license
// @Tags license
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "License id"
// @Param productId formData int true "Product id"
// @Param ownerId formData int true "Owning user id"
// @Param licenseTypeId formData int true "License type id"
// @Param deviceCount formData int true "Allowed device count"
// @Param duration formData int true "Duration in days"
// @Success 200 {object} model.License
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/license [put]
func UpdateLicense(svc service.LicenseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to update license", err)
		}
		data, err := licenseData(c)
		if err != nil {
			return writeDomainError(c, "INVALID_PARAM", "failed to update license", err)
		}
		data.ID = id

		lic, err := svc.Update(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "UPDATE_FAILED", "failed to update license", err)
		}
		return c.JSON(lic)
	}
}

// DeleteLicense removes a license by id.
//
// @Summary Delete a license
// @Tags license
// @Produce json
// @Param id query int true "License id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/license [delete]
func DeleteLicense(svc service.LicenseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to delete license", err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeDomainError(c, "DELETE_FAILED", "failed to delete license", err)
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("license with id %d deleted", id)})
	}
}
