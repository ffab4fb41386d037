package repository

import (
	"context"

	"licadmin/internal/model"
)

// DeviceRepository defines data access for registered devices.
type DeviceRepository interface {
	// Create inserts a new device row and returns the stored record.
	Create(ctx context.Context, d *model.Device) (*model.Device, error)

	// FindByID returns a device by its ID.
	FindByID(ctx context.Context, id int64) (*model.Device, error)

	// FindByIdentity resolves a device through its identity triple.
	// Returns sql.ErrNoRows when no such device is registered.
	FindByIdentity(ctx context.Context, name, mac string, userID int64) (*model.Device, error)

	// ListAll returns every device in persistence (id) order.
	ListAll(ctx context.Context) ([]model.Device, error)

	// Update rewrites the device identified by d.ID and returns the stored
	// row. Returns sql.ErrNoRows for unknown ids.
	Update(ctx context.Context, d *model.Device) (*model.Device, error)

	// Delete removes a device by ID. Returns sql.ErrNoRows when no row
	// was deleted.
	Delete(ctx context.Context, id int64) error
}
