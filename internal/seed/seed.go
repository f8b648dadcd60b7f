// Package seed implements the development-mode database initializer: it
// applies the schema migrations and loads a small data set of historic
// missions plus a default account so the client is usable against a fresh
// database.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/bamsemats/moonadmin/internal/dbx"
	"github.com/bamsemats/moonadmin/internal/logging"
	"github.com/bamsemats/moonadmin/internal/migrations"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

type mission struct {
	spacecraft string
	launchDate string
}

// sampleMissions is the development data set. Dates are ISO launch dates.
var sampleMissions = []mission{
	{"Luna 2", "1959-09-12"},
	{"Ranger 7", "1964-07-28"},
	{"Surveyor 1", "1966-05-30"},
	{"Apollo 8", "1968-12-21"},
	{"Apollo 11", "1969-07-16"},
	{"Apollo 12", "1969-11-14"},
	{"Apollo 13", "1970-04-11"},
	{"Luna 16", "1970-09-12"},
	{"Apollo 14", "1971-01-31"},
	{"Apollo 15", "1971-07-26"},
	{"Apollo 16", "1972-04-16"},
	{"Apollo 17", "1972-12-07"},
	{"Chang'e 3", "2013-12-01"},
	{"Chandrayaan-3", "2023-07-14"},
}

// Run migrates the schema and, when the mission table is still empty, seeds
// it together with a default account inside a single transaction. Re-running
// against an already seeded database is a no-op.
func Run(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM moon_mission`).Scan(&count); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if count > 0 {
		logger.Info(ctx, "database already seeded", "missions", count)
		return nil
	}

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, m := range sampleMissions {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO moon_mission (spacecraft, launch_date) VALUES ($1, $2::date)`,
				m.spacecraft, m.launchDate)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO account (name, password, first_name, last_name, ssn) VALUES ($1, $2, $3, $4, $5)`,
			"NeiArm", "secret", "Neil", "Armstrong", "123-45-6789")
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "database seeded", "missions", len(sampleMissions))
	return nil
}
