package repository

import (
	"context"

	"licadmin/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user row and returns the stored record.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by ID.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByUsername returns a user by username. Returns sql.ErrNoRows for
	// unknown usernames.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// ListAll returns every user in persistence (id) order.
	ListAll(ctx context.Context) ([]model.User, error)

	// Update rewrites the user identified by u.ID and returns the stored
	// row. Returns sql.ErrNoRows for unknown ids.
	Update(ctx context.Context, u *model.User) (*model.User, error)

	// Delete removes a user by ID. Returns sql.ErrNoRows when no row
	// was deleted.
	Delete(ctx context.Context, id int64) error
}
