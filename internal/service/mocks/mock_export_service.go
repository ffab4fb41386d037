package mocks

import (
	"context"

	"licadmin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuditExportService struct {
	mock.Mock
}

func (m *MockAuditExportService) Export(ctx context.Context) (*service.AuditExportResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuditExportResult), args.Error(1)
}
