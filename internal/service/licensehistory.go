package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// changeDateLayout is the wire format for audit change dates (yyyy-MM-dd).
const changeDateLayout = "2006-01-02"

// LicenseHistoryData is the request DTO for creating or updating an audit
// record. ChangeDate is the raw yyyy-MM-dd string from the request; the
// service owns its parsing. ID is ignored on Save.
type LicenseHistoryData struct {
	ID          int64
	LicenseID   int64  `validate:"required"`
	UserID      int64  `validate:"required"`
	Status      string `validate:"required"`
	Description string
	ChangeDate  string `validate:"required"`
}

// LicenseHistoryService defines the use cases for the license audit trail.
type LicenseHistoryService interface {
	// Save creates a new audit record from the request data.
	Save(ctx context.Context, data LicenseHistoryData) (*model.LicenseHistory, error)

	// GetAll returns every audit record in persistence order.
	GetAll(ctx context.Context) ([]model.LicenseHistory, error)

	// Update rewrites the audit record identified by data.ID.
	Update(ctx context.Context, data LicenseHistoryData) (*model.LicenseHistory, error)

	// Delete removes an audit record by ID.
	Delete(ctx context.Context, id int64) error
}

type licenseHistoryService struct {
	repo repository.LicenseHistoryRepository
}

// NewLicenseHistoryService constructs a new LicenseHistoryService.
func NewLicenseHistoryService(repo repository.LicenseHistoryRepository) LicenseHistoryService {
	return &licenseHistoryService{repo: repo}
}

func (s *licenseHistoryService) Save(ctx context.Context, data LicenseHistoryData) (*model.LicenseHistory, error) {
	h, err := s.buildRecord(data)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, h)
}

func (s *licenseHistoryService) GetAll(ctx context.Context) ([]model.LicenseHistory, error) {
	return s.repo.ListAll(ctx)
}

func (s *licenseHistoryService) Update(ctx context.Context, data LicenseHistoryData) (*model.LicenseHistory, error) {
	if data.ID == 0 {
		return nil, ErrIDRequired
	}
	h, err := s.buildRecord(data)
	if err != nil {
		return nil, err
	}
	h.ID = data.ID

	out, err := s.repo.Update(ctx, h)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *licenseHistoryService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// buildRecord validates the DTO and parses the change date.
func (s *licenseHistoryService) buildRecord(data LicenseHistoryData) (*model.LicenseHistory, error) {
	if err := validate.Struct(data); err != nil {
		return nil, err
	}
	changeDate, err := time.Parse(changeDateLayout, data.ChangeDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadChangeDate, data.ChangeDate)
	}
	return &model.LicenseHistory{
		LicenseID:   data.LicenseID,
		UserID:      data.UserID,
		Status:      data.Status,
		Description: data.Description,
		ChangeDate:  changeDate,
	}, nil
}
