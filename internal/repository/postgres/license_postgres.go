package postgres

import (
	"context"
	"database/sql"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// LicensePostgres is a PostgreSQL implementation of repository.LicenseRepository.
type LicensePostgres struct {
	db *sql.DB
}

// NewLicensePostgres creates a new LicensePostgres repository.
func NewLicensePostgres(db *sql.DB) *LicensePostgres {
	return &LicensePostgres{db: db}
}

var _ repository.LicenseRepository = (*LicensePostgres)(nil)

// Create inserts a new license row and returns the stored record.
func (r *LicensePostgres) Create(ctx context.Context, l *model.License) (*model.License, error) {
	const q = `
		INSERT INTO licenses (product_id, owner_id, license_type_id, device_count, duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, owner_id, license_type_id, device_count, duration, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		l.ProductID,
		l.OwnerID,
		l.LicenseTypeID,
		l.DeviceCount,
		l.DurationDays,
	)
	var out model.License
	if err := scanLicense(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single license by its ID.
func (r *LicensePostgres) FindByID(ctx context.Context, id int64) (*model.License, error) {
	const q = `
		SELECT id, product_id, owner_id, license_type_id, device_count, duration, created_at
		FROM licenses
		WHERE id = $1
	`
	var l model.License
	if err := scanLicense(r.db.QueryRowContext(ctx, q, id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListAll returns all licenses ordered by id.
func (r *LicensePostgres) ListAll(ctx context.Context) ([]model.License, error) {
	const q = `
		SELECT id, product_id, owner_id, license_type_id, device_count, duration, created_at
		FROM licenses
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.License, 0)
	for rows.Next() {
		var l model.License
		if err := rows.Scan(
			&l.ID,
			&l.ProductID,
			&l.OwnerID,
			&l.LicenseTypeID,
			&l.DeviceCount,
			&l.DurationDays,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites the row identified by l.ID and returns the stored record.
func (r *LicensePostgres) Update(ctx context.Context, l *model.License) (*model.License, error) {
	const q = `
		UPDATE licenses
		SET product_id = $2, owner_id = $3, license_type_id = $4, device_count = $5, duration = $6
		WHERE id = $1
		RETURNING id, product_id, owner_id, license_type_id, device_count, duration, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		l.ID,
		l.ProductID,
		l.OwnerID,
		l.LicenseTypeID,
		l.DeviceCount,
		l.DurationDays,
	)
	var out model.License
	if err := scanLicense(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a license by ID, reporting sql.ErrNoRows for unknown ids.
func (r *LicensePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM licenses WHERE id = $1`
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

func scanLicense(row *sql.Row, l *model.License) error {
	return row.Scan(
		&l.ID,
		&l.ProductID,
		&l.OwnerID,
		&l.LicenseTypeID,
		&l.DeviceCount,
		&l.DurationDays,
		&l.CreatedAt,
	)
}
