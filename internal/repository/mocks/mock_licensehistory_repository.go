package mocks

import (
	"context"

	"licadmin/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLicenseHistoryRepository struct {
	mock.Mock
}

func (m *MockLicenseHistoryRepository) Create(ctx context.Context, h *model.LicenseHistory) (*model.LicenseHistory, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryRepository) FindByID(ctx context.Context, id int64) (*model.LicenseHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryRepository) ListAll(ctx context.Context) ([]model.LicenseHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryRepository) Update(ctx context.Context, h *model.LicenseHistory) (*model.LicenseHistory, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
