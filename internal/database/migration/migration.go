package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"licadmin/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL   PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  email         TEXT        NOT NULL UNIQUE,
  role          TEXT        NOT NULL DEFAULT 'user',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_licenses",
		SQL: `CREATE TABLE IF NOT EXISTS licenses (
  id              BIGSERIAL   PRIMARY KEY,
  product_id      BIGINT      NOT NULL,
  owner_id        BIGINT      NOT NULL REFERENCES users (id),
  license_type_id BIGINT      NOT NULL,
  device_count    INT         NOT NULL CHECK (device_count >= 0),
  duration        BIGINT      NOT NULL CHECK (duration >= 0),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_devices",
		SQL: `CREATE TABLE IF NOT EXISTS devices (
  id          BIGSERIAL   PRIMARY KEY,
  name        TEXT        NOT NULL,
  mac_address TEXT        NOT NULL,
  user_id     BIGINT      NOT NULL REFERENCES users (id),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_devices_identity",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_devices_identity ON devices (name, mac_address, user_id);`,
	},
	{
		Name: "create_table_license_history",
		SQL: `CREATE TABLE IF NOT EXISTS license_history (
  id          BIGSERIAL PRIMARY KEY,
  license_id  BIGINT    NOT NULL REFERENCES licenses (id),
  user_id     BIGINT    NOT NULL REFERENCES users (id),
  status      TEXT      NOT NULL,
  description TEXT      NOT NULL DEFAULT '',
  change_date DATE      NOT NULL
);`,
	},
	{
		Name: "create_index_license_history_license_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_license_history_license_id ON license_history (license_id);`,
	},
}

// EnsureMigrated checks if the 'license_history' table exists and runs the
// schema steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.license_history') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(loc, map[string]any{
				"component":      "database",
				"event":          "db_migration_failed",
				"status":         "error",
				"migration_step": step.Name,
				"error_message":  err.Error(),
				"db_host":        dbHost,
				"duration_ms":    time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

// SeedAdmin creates the bootstrap administrator account when the users table
// is empty. It is a no-op when any user already exists or when no admin
// password is configured.
func SeedAdmin(ctx context.Context, db *sql.DB, loc *time.Location, admin config.AdminConfig) error {
	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if admin.Password == "" {
		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "admin_seed_skip",
			"status":    "success",
			"msg":       "no users exist and ADMIN_PASSWORD is not set, skipping admin seed",
		})
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	const q = `INSERT INTO users (username, password_hash, email, role, created_at) VALUES ($1, $2, $3, 'admin', now())`
	if _, err := db.ExecContext(ctx, q, admin.Username, string(hash), admin.Email); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "admin_seed_success",
		"status":    "success",
		"username":  admin.Username,
	})
	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
