package mocks

import (
	"context"

	"licadmin/internal/model"
	"licadmin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockLicenseService struct {
	mock.Mock
}

func (m *MockLicenseService) Save(ctx context.Context, data service.LicenseData) (*model.License, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.License), args.Error(1)
}

func (m *MockLicenseService) GetAll(ctx context.Context) ([]model.License, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.License), args.Error(1)
}

func (m *MockLicenseService) Update(ctx context.Context, data service.LicenseData) (*model.License, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.License), args.Error(1)
}

func (m *MockLicenseService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
