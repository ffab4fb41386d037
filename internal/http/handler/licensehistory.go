package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/service"
)

// licenseHistoryData builds the service DTO from request parameters.
// changeDate is the create-side parameter name; updates send changeDateStr.
func licenseHistoryData(c *fiber.Ctx, dateKey string) (service.LicenseHistoryData, error) {
	licenseID, err := paramInt64(c, "licenseId")
	if err != nil {
		return service.LicenseHistoryData{}, err
	}
	userID, err := paramInt64(c, "userId")
	if err != nil {
		return service.LicenseHistoryData{}, err
	}
	return service.LicenseHistoryData{
		LicenseID:   licenseID,
		UserID:      userID,
		Status:      param(c, "status"),
		Description: param(c, "description"),
		ChangeDate:  param(c, dateKey),
	}, nil
}

// CreateLicenseHistory records a license status change in the audit trail.
//
// @Summary Create a license history record
// @Tags license-history
// @Accept x-www-form-urlencoded
// @Produce json
// @Param licenseId formData int true "License id"
// @Param userId formData int true "User id"
// @Param status formData string true "New license status"
// @Param description formData string false "Free-form note"
// @Param changeDate formData string true "Change date (yyyy-MM-dd)"
// @Success 201 {object} model.LicenseHistory
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/licenseHistory [post]
func CreateLicenseHistory(svc service.LicenseHistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := licenseHistoryData(c, "changeDate")
		if err != nil {
			return writeDomainError(c, "INVALID_PARAM", "failed to save license history", err)
		}
		rec, err := svc.Save(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "SAVE_FAILED", "failed to save license history", err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ListLicenseHistory returns the full audit trail in persistence order.
//
// @Summary List license history records
// @Tags license-history
// @Produce json
// @Success 200 {array} model.LicenseHistory
// @Security BearerAuth
// @Router /settings/licenseHistory [get]
func ListLicenseHistory(svc service.LicenseHistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := svc.GetAll(c.UserContext())
		if err != nil {
			return writeDomainError(c, "LIST_FAILED", "failed to list license history", err)
		}
		return c.JSON(records)
	}
}

// UpdateLicenseHistory rewrites an existing audit record.
//
// @Summary Update a license history record
// @Tags license-history
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "Record id"
// @Param licenseId formData int true "License id"
// @Param userId formData int true "User id"
// @Param status formData string true "New license status"
// @Param description formData string false "Free-form note"
// @Param changeDateStr formData string true "Change date (yyyy-MM-dd)"
// @Success 200 {object} model.LicenseHistory
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/licenseHistory [put]
func UpdateLicenseHistory(svc service.LicenseHistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to update license history", err)
		}
		data, err := licenseHistoryData(c, "changeDateStr")
		if err != nil {
			return writeDomainError(c, "INVALID_PARAM", "failed to update license history", err)
		}
		data.ID = id

		rec, err := svc.Update(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "UPDATE_FAILED", "failed to update license history", err)
		}
		return c.JSON(rec)
	}
}

// DeleteLicenseHistory removes an audit record by id.
//
// @Summary Delete a license history record
// @Tags license-history
// @Produce json
// @Param id query int true "Record id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/licenseHistory [delete]
func DeleteLicenseHistory(svc service.LicenseHistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to delete license history", err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeDomainError(c, "DELETE_FAILED", "failed to delete license history", err)
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("license history with id %d deleted", id)})
	}
}

// ExportLicenseHistory uploads the audit trail as CSV and returns a
// presigned download URL.
//
// @Summary Export the license audit trail
// @Tags license-history
// @Produce json
// @Success 201 {object} service.AuditExportResult
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/licenseHistory/export [post]
func ExportLicenseHistory(svc service.AuditExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			return writeDomainError(c, "EXPORT_FAILED", "failed to export license history", err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
