package mocks

import (
	"context"

	"licadmin/internal/model"
	"licadmin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockLicenseHistoryService struct {
	mock.Mock
}

func (m *MockLicenseHistoryService) Save(ctx context.Context, data service.LicenseHistoryData) (*model.LicenseHistory, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryService) GetAll(ctx context.Context) ([]model.LicenseHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryService) Update(ctx context.Context, data service.LicenseHistoryData) (*model.LicenseHistory, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LicenseHistory), args.Error(1)
}

func (m *MockLicenseHistoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
