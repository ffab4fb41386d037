package postgres

import (
	"context"
	"database/sql"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// LicenseHistoryPostgres is a PostgreSQL implementation of
// repository.LicenseHistoryRepository. It uses database/sql with
// parameterized queries and contains no business logic.
type LicenseHistoryPostgres struct {
	db *sql.DB
}

// NewLicenseHistoryPostgres creates a new LicenseHistoryPostgres repository.
func NewLicenseHistoryPostgres(db *sql.DB) *LicenseHistoryPostgres {
	return &LicenseHistoryPostgres{db: db}
}

var _ repository.LicenseHistoryRepository = (*LicenseHistoryPostgres)(nil)

// Create inserts a new audit row and returns the stored record.
func (r *LicenseHistoryPostgres) Create(ctx context.Context, h *model.LicenseHistory) (*model.LicenseHistory, error) {
	const q = `
		INSERT INTO license_history (license_id, user_id, status, description, change_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, license_id, user_id, status, description, change_date
	`
	row := r.db.QueryRowContext(ctx, q,
		h.LicenseID,
		h.UserID,
		h.Status,
		h.Description,
		h.ChangeDate,
	)
	var out model.LicenseHistory
	if err := scanLicenseHistory(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single audit record by its ID.
func (r *LicenseHistoryPostgres) FindByID(ctx context.Context, id int64) (*model.LicenseHistory, error) {
	const q = `
		SELECT id, license_id, user_id, status, description, change_date
		FROM license_history
		WHERE id = $1
	`
	var h model.LicenseHistory
	if err := scanLicenseHistory(r.db.QueryRowContext(ctx, q, id), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListAll returns all audit records ordered by id, which is insert order for
// this schema.
func (r *LicenseHistoryPostgres) ListAll(ctx context.Context) ([]model.LicenseHistory, error) {
	const q = `
		SELECT id, license_id, user_id, status, description, change_date
		FROM license_history
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LicenseHistory, 0)
	for rows.Next() {
		var h model.LicenseHistory
		if err := rows.Scan(
			&h.ID,
			&h.LicenseID,
			&h.UserID,
			&h.Status,
			&h.Description,
			&h.ChangeDate,
		); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites the row identified by h.ID and returns the stored record.
func (r *LicenseHistoryPostgres) Update(ctx context.Context, h *model.LicenseHistory) (*model.LicenseHistory, error) {
	const q = `
		UPDATE license_history
		SET license_id = $2, user_id = $3, status = $4, description = $5, change_date = $6
		WHERE id = $1
		RETURNING id, license_id, user_id, status, description, change_date
	`
	row := r.db.QueryRowContext(ctx, q,
		h.ID,
		h.LicenseID,
		h.UserID,
		h.Status,
		h.Description,
		h.ChangeDate,
	)
	var out model.LicenseHistory
	if err := scanLicenseHistory(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an audit record by ID. Deleting an unknown id reports
// sql.ErrNoRows so the API can surface it to the caller.
func (r *LicenseHistoryPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM license_history WHERE id = $1`
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

func scanLicenseHistory(row *sql.Row, h *model.LicenseHistory) error {
	return row.Scan(
		&h.ID,
		&h.LicenseID,
		&h.UserID,
		&h.Status,
		&h.Description,
		&h.ChangeDate,
	)
}
