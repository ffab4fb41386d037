package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// DeviceData is the request DTO for registering or updating a device.
// ID is ignored on RegisterOrUpdate.
type DeviceData struct {
	ID         int64
	Name       string `validate:"required"`
	MACAddress string `validate:"required,mac"`
	UserID     int64  `validate:"required"`
}

// DeviceService defines the use cases for registered devices.
type DeviceService interface {
	// RegisterOrUpdate resolves a device by its (name, mac, user) identity
	// and returns the existing registration, creating it when absent.
	RegisterOrUpdate(ctx context.Context, data DeviceData) (*model.Device, error)

	// GetAll returns every device in persistence order.
	GetAll(ctx context.Context) ([]model.Device, error)

	// Update rewrites the device identified by data.ID.
	Update(ctx context.Context, data DeviceData) (*model.Device, error)

	// Delete removes a device by ID.
	Delete(ctx context.Context, id int64) error
}

type deviceService struct {
	devices repository.DeviceRepository
	users   repository.UserRepository
}

// NewDeviceService constructs a new DeviceService.
func NewDeviceService(devices repository.DeviceRepository, users repository.UserRepository) DeviceService {
	return &deviceService{devices: devices, users: users}
}

func (s *deviceService) RegisterOrUpdate(ctx context.Context, data DeviceData) (*model.Device, error) {
	if err := s.checkOwner(ctx, data); err != nil {
		return nil, err
	}

	existing, err := s.devices.FindByIdentity(ctx, data.Name, data.MACAddress, data.UserID)
	if err == nil {
		// Identity matches an existing registration; nothing to change.
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return s.devices.Create(ctx, &model.Device{
		Name:       data.Name,
		MACAddress: data.MACAddress,
		UserID:     data.UserID,
	})
}

func (s *deviceService) GetAll(ctx context.Context) ([]model.Device, error) {
	return s.devices.ListAll(ctx)
}

func (s *deviceService) Update(ctx context.Context, data DeviceData) (*model.Device, error) {
	if data.ID == 0 {
		return nil, ErrIDRequired
	}
	if err := s.checkOwner(ctx, data); err != nil {
		return nil, err
	}

	out, err := s.devices.Update(ctx, &model.Device{
		ID:         data.ID,
		Name:       data.Name,
		MACAddress: data.MACAddress,
		UserID:     data.UserID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *deviceService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrIDRequired
	}
	if err := s.devices.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// checkOwner validates the DTO and verifies the owning user exists.
func (s *deviceService) checkOwner(ctx context.Context, data DeviceData) error {
	if err := validate.Struct(data); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, data.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %d: %w", data.UserID, ErrNotFound)
		}
		return err
	}
	return nil
}
