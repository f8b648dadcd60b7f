// Package app wires the moonadmin client together: configuration, logging,
// the database handle, the service layer, and the interactive session. It
// owns the database connection for the process lifetime and guarantees it is
// released on every exit path.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/bamsemats/moonadmin/internal/cli"
	"github.com/bamsemats/moonadmin/internal/config"
	"github.com/bamsemats/moonadmin/internal/dbx"
	"github.com/bamsemats/moonadmin/internal/logging"
	"github.com/bamsemats/moonadmin/internal/repositories/accounts"
	"github.com/bamsemats/moonadmin/internal/repositories/missions"
	"github.com/bamsemats/moonadmin/internal/seed"
	"github.com/bamsemats/moonadmin/internal/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

// NewApp builds the application around a validated config. Logs go to stderr
// as JSON so they never interleave with the interactive stdout UI; every
// line carries the process session id.
func NewApp(c *config.Config) *App {
	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl).With("session", uuid.NewString())

	return &App{config: c, logger: logger}
}

// Run opens the database, optionally seeds it in dev mode, and drives the
// interactive session to completion. The deferred Close releases the
// connection on every path, including fatal session errors.
func (app *App) Run(ctx context.Context) error {
	db, err := dbx.OpenPostgres(app.config.DatabaseDSN, app.config.DatabaseUser, app.config.DatabasePassword)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db connect error: %w", err)
	}
	app.logger.Info(ctx, "connected to database")

	if app.config.DevMode {
		app.logger.Info(ctx, "dev mode: initializing database")
		if err := seed.Run(ctx, db, app.logger); err != nil {
			return fmt.Errorf("dev init error: %w", err)
		}
	}

	accountRepo := accounts.NewPostgresRepository(db)
	missionRepo := missions.NewPostgresRepository(db)

	session := cli.NewSession(
		services.NewAuthService(accountRepo),
		services.NewMissionService(missionRepo),
		services.NewAccountService(accountRepo),
		os.Stdin, os.Stdout,
	)

	if err := session.Run(ctx); err != nil {
		app.logger.Error(ctx, "session failed", "error", err.Error())
		return err
	}

	app.logger.Info(ctx, "session ended")
	return nil
}
