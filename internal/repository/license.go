package repository

import (
	"context"

	"licadmin/internal/model"
)

// LicenseRepository defines data access for licenses.
type LicenseRepository interface {
	// Create inserts a new license row and returns the stored record.
	Create(ctx context.Context, l *model.License) (*model.License, error)

	// FindByID returns a license by its ID.
	FindByID(ctx context.Context, id int64) (*model.License, error)

	// ListAll returns every license in persistence (id) order.
	ListAll(ctx context.Context) ([]model.License, error)

	// Update rewrites the license identified by l.ID and returns the stored
	// row. Returns sql.ErrNoRows for unknown ids.
	Update(ctx context.Context, l *model.License) (*model.License, error)

	// Delete removes a license by ID. Returns sql.ErrNoRows when no row
	// was deleted.
	Delete(ctx context.Context, id int64) error
}
