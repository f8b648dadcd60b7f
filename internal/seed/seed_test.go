package seed

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bamsemats/moonadmin/internal/logging"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func stubGoose(t *testing.T, err error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return err }
	t.Cleanup(func() { gooseUpContext = orig })
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRun_SeedsEmptyDatabase(t *testing.T) {
	stubGoose(t, nil)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+moon_mission`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	mock.ExpectBegin()
	for range sampleMissions {
		mock.ExpectExec(`INSERT\s+INTO\s+moon_mission`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(`INSERT\s+INTO\s+account`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Run(context.Background(), db, testLogger())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_SkipsWhenAlreadySeeded(t *testing.T) {
	stubGoose(t, nil)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+moon_mission`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(14)))

	err := Run(context.Background(), db, testLogger())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_MigrationError(t *testing.T) {
	stubGoose(t, errors.New("migration failed"))
	db, _ := newMockDB(t)

	err := Run(context.Background(), db, testLogger())
	require.Error(t, err)
	require.Contains(t, err.Error(), "migration error")
}

func TestRun_RollsBackOnInsertError(t *testing.T) {
	stubGoose(t, nil)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+moon_mission`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+moon_mission`).
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := Run(context.Background(), db, testLogger())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
