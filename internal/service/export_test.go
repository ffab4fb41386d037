package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"licadmin/internal/model"
	repoMocks "licadmin/internal/repository/mocks"
	"licadmin/internal/storage"
	storeMocks "licadmin/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditExportService_Export(t *testing.T) {
	ctx := context.Background()

	records := []model.LicenseHistory{
		{ID: 1, LicenseID: 7, UserID: 3, Status: "activated", Description: "first", ChangeDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, LicenseID: 7, UserID: 3, Status: "revoked", Description: "second", ChangeDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockLicenseHistoryRepository)

		mRepo.On("ListAll", ctx).Return(records, nil)

		var uploaded string
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "exports/license-history-") && strings.HasSuffix(key, ".csv")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "text/csv" && opt.Size > 0
		})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			b, _ := io.ReadAll(r)
			uploaded = string(b)
			return storage.ObjectInfo{Key: key, Size: int64(len(b))}
		}, nil)
		mStore.On("PresignGet", ctx, mock.Anything, presignExpiry).
			Return("https://minio.local/presigned", nil)

		svc := NewAuditExportService(mStore, mRepo)
		res, err := svc.Export(ctx)

		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/presigned", res.URL)
		assert.True(t, strings.HasPrefix(res.ObjectKey, "exports/license-history-"))

		rows, err := csv.NewReader(strings.NewReader(uploaded)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3) // header + 2 records
		assert.Equal(t, []string{"id", "license_id", "user_id", "status", "description", "change_date"}, rows[0])
		assert.Equal(t, []string{"1", "7", "3", "activated", "first", "2024-03-15"}, rows[1])
		assert.Equal(t, []string{"2", "7", "3", "revoked", "second", "2024-04-01"}, rows[2])
	})

	t.Run("repository error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockLicenseHistoryRepository)
		mRepo.On("ListAll", ctx).Return(nil, errors.New("db fail"))

		svc := NewAuditExportService(mStore, mRepo)
		_, err := svc.Export(ctx)

		assert.ErrorContains(t, err, "load audit trail")
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presign failure rolls back upload", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockLicenseHistoryRepository)

		mRepo.On("ListAll", ctx).Return(records, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mStore.On("PresignGet", ctx, mock.Anything, presignExpiry).
			Return("", errors.New("presign fail"))
		mStore.On("Delete", ctx, mock.Anything).Return(nil)

		svc := NewAuditExportService(mStore, mRepo)
		_, err := svc.Export(ctx)

		assert.ErrorContains(t, err, "presign export")
		mStore.AssertCalled(t, "Delete", ctx, mock.Anything)
	})
}
