package migration

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licadmin/internal/config"
)

func TestEnsureMigrated_SchemaExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT to_regclass").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, time.UTC, "localhost")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_RunsSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT to_regclass").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for range steps {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = EnsureMigrated(context.Background(), db, time.UTC, "localhost")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdmin(t *testing.T) {
	admin := config.AdminConfig{Username: "admin", Password: "s3cret", Email: "admin@example.com"}

	t.Run("seeds when table empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO users").
			WithArgs("admin", sqlmock.AnyArg(), "admin@example.com").
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, SeedAdmin(context.Background(), db, time.UTC, admin))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op when users exist", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		assert.NoError(t, SeedAdmin(context.Background(), db, time.UTC, admin))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op without configured password", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		assert.NoError(t, SeedAdmin(context.Background(), db, time.UTC, config.AdminConfig{Username: "admin"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
