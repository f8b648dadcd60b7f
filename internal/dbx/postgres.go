package dbx

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres opens a database handle for the given pgx connection string.
// The separately configured user and password take precedence over any
// credentials embedded in the DSN. The caller owns the returned handle and
// must Close it.
func OpenPostgres(dsn, user, password string) (*sql.DB, error) {
	cc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	if user != "" {
		cc.User = user
	}
	if password != "" {
		cc.Password = password
	}
	return stdlib.OpenDB(*cc), nil
}
