package postgres

import (
	"context"
	"database/sql"

	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (username, password_hash, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, password_hash, email, role, created_at
	`
	row := r.db.QueryRowContext(ctx, q, u.Username, u.PasswordHash, u.Email, u.Role)
	var out model.User
	if err := scanUser(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single user by ID.
func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, username, password_hash, email, role, created_at
		FROM users
		WHERE id = $1
	`
	var u model.User
	if err := scanUser(r.db.QueryRowContext(ctx, q, id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername fetches a single user by username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
		SELECT id, username, password_hash, email, role, created_at
		FROM users
		WHERE username = $1
	`
	var u model.User
	if err := scanUser(r.db.QueryRowContext(ctx, q, username), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns all users ordered by id.
func (r *UserPostgres) ListAll(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT id, username, password_hash, email, role, created_at
		FROM users
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites the row identified by u.ID and returns the stored record.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET username = $2, password_hash = $3, email = $4, role = $5
		WHERE id = $1
		RETURNING id, username, password_hash, email, role, created_at
	`
	row := r.db.QueryRowContext(ctx, q, u.ID, u.Username, u.PasswordHash, u.Email, u.Role)
	var out model.User
	if err := scanUser(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a user by ID, reporting sql.ErrNoRows for unknown ids.
func (r *UserPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`
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

func scanUser(row *sql.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &u.CreatedAt)
}
