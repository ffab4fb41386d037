package mocks

import (
	"context"

	"licadmin/internal/model"
	"licadmin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDeviceService struct {
	mock.Mock
}

func (m *MockDeviceService) RegisterOrUpdate(ctx context.Context, data service.DeviceData) (*model.Device, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceService) GetAll(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceService) Update(ctx context.Context, data service.DeviceData) (*model.Device, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
