package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/service"
)

func deviceData(c *fiber.Ctx) (service.DeviceData, error) {
	userID, err := paramInt64(c, "userId")
	if err != nil {
		return service.DeviceData{}, err
	}
	return service.DeviceData{
		Name:       param(c, "name"),
		MACAddress: param(c, "mac"),
		UserID:     userID,
	}, nil
}

// RegisterDevice registers a device, returning the existing row when the
// (name, mac, user) identity is already known.
//
// @Summary Register a device
// @Tags device
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Device name"
// @Param mac formData string true "MAC address"
// @Param userId formData int true "Owning user id"
// @Success 201 {object} model.Device
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/device [post]
func RegisterDevice(svc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := deviceData(c)
		if err != nil {
			return writeDomainError(c, "INVALID_PARAM", "failed to register device", err)
		}
		dev, err := svc.RegisterOrUpdate(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "SAVE_FAILED", "failed to register device", err)
		}
		return c.Status(fiber.StatusCreated).JSON(dev)
	}
}

// ListDevices returns every registered device.
//
// @Summary List devices
// @Tags device
// @Produce json
// @Success 200 {array} model.Device
// @Security BearerAuth
// @Router /settings/device [get]
func ListDevices(svc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		devices, err := svc.GetAll(c.UserContext())
		if err != nil {
			return writeDomainError(c, "LIST_FAILED", "failed to list devices", err)
		}
		return c.JSON(devices)
	}
}

// UpdateDevice rewrites an existing device registration.
//
// @Summary Update a device
// @Tags device
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "Device id"
// @Param name formData string true "Device name"
// @Param mac formData string true "MAC address"
// @Param userId formData int true "Owning user id"
// @Success 200 {object} model.Device
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/device [put]
func UpdateDevice(svc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to update device", err)
		}
		data, err := deviceData(c)
		if err != nil {
			return writeDomainError(c, "INVALID_PARAM", "failed to update device", err)
		}
		data.ID = id

		dev, err := svc.Update(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "UPDATE_FAILED", "failed to update device", err)
		}
		return c.JSON(dev)
	}
}

// DeleteDevice removes a device by id.
//
// @Summary Delete a device
// @Tags device
// @Produce json
// @Param id query int true "Device id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/device [delete]
func DeleteDevice(svc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to delete device", err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeDomainError(c, "DELETE_FAILED", "failed to delete device", err)
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("device with id %d deleted", id)})
	}
}
