package service

import (
	"context"
	"database/sql"
	"testing"

	"licadmin/internal/model"
	repoMocks "licadmin/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceService_RegisterOrUpdate(t *testing.T) {
	ctx := context.Background()

	data := DeviceData{Name: "workstation-1", MACAddress: "aa:bb:cc:dd:ee:ff", UserID: 3}
	owner := &model.User{ID: 3, Username: "alice"}

	t.Run("creates when identity unknown", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mUsers := new(repoMocks.MockUserRepository)

		mUsers.On("FindByID", ctx, int64(3)).Return(owner, nil)
		mDev.On("FindByIdentity", ctx, data.Name, data.MACAddress, data.UserID).
			Return(nil, sql.ErrNoRows)
		mDev.On("Create", ctx, mock.MatchedBy(func(d *model.Device) bool {
			return d.Name == data.Name && d.MACAddress == data.MACAddress && d.UserID == 3
		})).Return(&model.Device{ID: 1, Name: data.Name, MACAddress: data.MACAddress, UserID: 3}, nil)

		svc := NewDeviceService(mDev, mUsers)
		got, err := svc.RegisterOrUpdate(ctx, data)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		mDev.AssertExpectations(t)
	})

	t.Run("returns existing registration", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mUsers := new(repoMocks.MockUserRepository)

		existing := &model.Device{ID: 5, Name: data.Name, MACAddress: data.MACAddress, UserID: 3}
		mUsers.On("FindByID", ctx, int64(3)).Return(owner, nil)
		mDev.On("FindByIdentity", ctx, data.Name, data.MACAddress, data.UserID).
			Return(existing, nil)

		svc := NewDeviceService(mDev, mUsers)
		got, err := svc.RegisterOrUpdate(ctx, data)

		assert.NoError(t, err)
		assert.Equal(t, existing, got)
		mDev.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed mac", func(t *testing.T) {
		svc := NewDeviceService(new(repoMocks.MockDeviceRepository), new(repoMocks.MockUserRepository))

		bad := data
		bad.MACAddress = "not-a-mac"
		_, err := svc.RegisterOrUpdate(ctx, bad)

		assert.Error(t, err)
	})

	t.Run("unknown owner", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, int64(3)).Return(nil, sql.ErrNoRows)

		svc := NewDeviceService(mDev, mUsers)
		_, err := svc.RegisterOrUpdate(ctx, data)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeviceService_Update(t *testing.T) {
	ctx := context.Background()
	owner := &model.User{ID: 3}
	data := DeviceData{ID: 5, Name: "renamed", MACAddress: "aa:bb:cc:dd:ee:ff", UserID: 3}

	t.Run("happy path", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mUsers := new(repoMocks.MockUserRepository)

		mUsers.On("FindByID", ctx, int64(3)).Return(owner, nil)
		mDev.On("Update", ctx, mock.MatchedBy(func(d *model.Device) bool {
			return d.ID == 5 && d.Name == "renamed"
		})).Return(&model.Device{ID: 5, Name: "renamed"}, nil)

		svc := NewDeviceService(mDev, mUsers)
		got, err := svc.Update(ctx, data)

		assert.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mUsers := new(repoMocks.MockUserRepository)

		mUsers.On("FindByID", ctx, int64(3)).Return(owner, nil)
		mDev.On("Update", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		svc := NewDeviceService(mDev, mUsers)
		_, err := svc.Update(ctx, data)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("id required", func(t *testing.T) {
		svc := NewDeviceService(new(repoMocks.MockDeviceRepository), new(repoMocks.MockUserRepository))
		bad := data
		bad.ID = 0

		_, err := svc.Update(ctx, bad)
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDeviceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mDev.On("Delete", ctx, int64(5)).Return(nil)

		svc := NewDeviceService(mDev, new(repoMocks.MockUserRepository))
		assert.NoError(t, svc.Delete(ctx, 5))
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		mDev := new(repoMocks.MockDeviceRepository)
		mDev.On("Delete", ctx, int64(9)).Return(sql.ErrNoRows)

		svc := NewDeviceService(mDev, new(repoMocks.MockUserRepository))
		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrNotFound)
	})
}
