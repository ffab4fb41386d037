package mocks

import (
	"context"

	"licadmin/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLicenseRepository struct {
	mock.Mock
}

func (m *MockLicenseRepository) Create(ctx context.Context, l *model.License) (*model.License, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.License), args.Error(1)
}

func (m *MockLicenseRepository) FindByID(ctx context.Context, id int64) (*model.License, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.License), args.Error(1)
}

func (m *MockLicenseRepository) ListAll(ctx context.Context) ([]model.License, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.License), args.Error(1)
}

func (m *MockLicenseRepository) Update(ctx context.Context, l *model.License) (*model.License, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.License), args.Error(1)
}

func (m *MockLicenseRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
