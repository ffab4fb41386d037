package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// LicenseData is the request DTO for issuing or updating a license.
// ID is ignored on Save.
type LicenseData struct {
	ID            int64
	ProductID     int64 `validate:"required"`
	OwnerID       int64 `validate:"required"`
	LicenseTypeID int64 `validate:"required"`
	DeviceCount   int   `validate:"gte=0"`
	DurationDays  int64 `validate:"gt=0"`
}

// LicenseService defines the use cases for licenses.
type LicenseService interface {
	// Save issues a new license to the owner named in the request data.
	Save(ctx context.Context, data LicenseData) (*model.License, error)

	// GetAll returns every license in persistence order.
	GetAll(ctx context.Context) ([]model.License, error)

	// Update rewrites the license identified by data.ID.
	Update(ctx context.Context, data LicenseData) (*model.License, error)

	// Delete removes a license by ID.
	Delete(ctx context.Context, id int64) error
}

type licenseService struct {
	licenses repository.LicenseRepository
	users    repository.UserRepository
}

// NewLicenseService constructs a new LicenseService.
func NewLicenseService(licenses repository.LicenseRepository, users repository.UserRepository) LicenseService {
	return &licenseService{licenses: licenses, users: users}
}

func (s *licenseService) Save(ctx context.Context, data LicenseData) (*model.License, error) {
	if err := s.checkOwner(ctx, data); err != nil {
		return nil, err
	}
	return s.licenses.Create(ctx, &model.License{
		ProductID:     data.ProductID,
		OwnerID:       data.OwnerID,
		LicenseTypeID: data.LicenseTypeID,
		DeviceCount:   data.DeviceCount,
		DurationDays:  data.DurationDays,
	})
}

func (s *licenseService) GetAll(ctx context.Context) ([]model.License, error) {
	return s.licenses.ListAll(ctx)
}

func (s *licenseService) Update(ctx context.Context, data LicenseData) (*model.License, error) {
	if data.ID == 0 {
		return nil, ErrIDRequired
	}
	if err := s.checkOwner(ctx, data); err != nil {
		return nil, err
	}

	out, err := s.licenses.Update(ctx, &model.License{
		ID:            data.ID,
		ProductID:     data.ProductID,
		OwnerID:       data.OwnerID,
		LicenseTypeID: data.LicenseTypeID,
		DeviceCount:   data.DeviceCount,
		DurationDays:  data.DurationDays,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *licenseService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrIDRequired
	}
	if err := s.licenses.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *licenseService) checkOwner(ctx context.Context, data LicenseData) error {
	if err := validate.Struct(data); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, data.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("owner %d: %w", data.OwnerID, ErrNotFound)
		}
		return err
	}
	return nil
}
