package postgres

import (
	"context"
	"database/sql"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// DevicePostgres is a PostgreSQL implementation of repository.DeviceRepository.
type DevicePostgres struct {
	db *sql.DB
}

// NewDevicePostgres creates a new DevicePostgres repository.
func NewDevicePostgres(db *sql.DB) *DevicePostgres {
	return &DevicePostgres{db: db}
}

var _ repository.DeviceRepository = (*DevicePostgres)(nil)

// Create inserts a new device row and returns the stored record.
func (r *DevicePostgres) Create(ctx context.Context, d *model.Device) (*model.Device, error) {
	const q = `
		INSERT INTO devices (name, mac_address, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, mac_address, user_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q, d.Name, d.MACAddress, d.UserID)
	var out model.Device
	if err := scanDevice(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single device by its ID.
func (r *DevicePostgres) FindByID(ctx context.Context, id int64) (*model.Device, error) {
	const q = `
		SELECT id, name, mac_address, user_id, created_at
		FROM devices
		WHERE id = $1
	`
	var d model.Device
	if err := scanDevice(r.db.QueryRowContext(ctx, q, id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByIdentity resolves a device through its (name, mac, user) triple,
// which the schema keeps unique.
func (r *DevicePostgres) FindByIdentity(ctx context.Context, name, mac string, userID int64) (*model.Device, error) {
	const q = `
		SELECT id, name, mac_address, user_id, created_at
		FROM devices
		WHERE name = $1 AND mac_address = $2 AND user_id = $3
	`
	var d model.Device
	if err := scanDevice(r.db.QueryRowContext(ctx, q, name, mac, userID), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListAll returns all devices ordered by id.
func (r *DevicePostgres) ListAll(ctx context.Context) ([]model.Device, error) {
	const q = `
		SELECT id, name, mac_address, user_id, created_at
		FROM devices
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Device, 0)
	for rows.Next() {
		var d model.Device
		if err := rows.Scan(&d.ID, &d.Name, &d.MACAddress, &d.UserID, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites the row identified by d.ID and returns the stored record.
func (r *DevicePostgres) Update(ctx context.Context, d *model.Device) (*model.Device, error) {
	const q = `
		UPDATE devices
		SET name = $2, mac_address = $3, user_id = $4
		WHERE id = $1
		RETURNING id, name, mac_address, user_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q, d.ID, d.Name, d.MACAddress, d.UserID)
	var out model.Device
	if err := scanDevice(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a device by ID, reporting sql.ErrNoRows for unknown ids.
func (r *DevicePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM devices WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanDevice(row *sql.Row, d *model.Device) error {
	return row.Scan(&d.ID, &d.Name, &d.MACAddress, &d.UserID, &d.CreatedAt)
}
