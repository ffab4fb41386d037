package repository

import (
	"context"

	"licadmin/internal/model"
)

// LicenseHistoryRepository defines data access for the license audit trail
// using SQL queries only. No business logic here — strictly persistence
// operations.
type LicenseHistoryRepository interface {
	// Create inserts a new audit record and returns the stored row
	// (including the generated id).
	Create(ctx context.Context, h *model.LicenseHistory) (*model.LicenseHistory, error)

	// FindByID returns an audit record by its ID.
	FindByID(ctx context.Context, id int64) (*model.LicenseHistory, error)

	// ListAll returns every audit record in persistence (id) order.
	ListAll(ctx context.Context) ([]model.LicenseHistory, error)

	// Update rewrites all mutable fields of the record identified by h.ID
	// and returns the stored row. Returns sql.ErrNoRows for unknown ids.
	Update(ctx context.Context, h *model.LicenseHistory) (*model.LicenseHistory, error)

	// Delete removes a record by ID. Returns sql.ErrNoRows when no row
	// was deleted.
	Delete(ctx context.Context, id int64) error
}
