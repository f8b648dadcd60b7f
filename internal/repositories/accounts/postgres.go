package accounts

import (
	"context"
	"fmt"

	"github.com/bamsemats/moonadmin/internal/dbx"
	"github.com/bamsemats/moonadmin/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CountByCredentials returns the number of accounts matching both name and
// password exactly. The comparison is case-sensitive and intentionally
// plaintext: login semantics depend on the stored data as-is.
func (r *PostgresRepository) CountByCredentials(ctx context.Context, name, password string) (int64, error) {

	query :=
		`SELECT COUNT(*) FROM account
		 WHERE name = $1 AND password = $2
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, name, password).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (int64, error) {

	query :=
		`INSERT INTO account (name, password, first_name, last_name, ssn)
         VALUES ($1, $2, $3, $4, $5)
		 `

	res, err := r.db.ExecContext(ctx, query,
		account.Name, account.Password, account.FirstName, account.LastName, account.SSN)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID int64, newPassword string) (int64, error) {

	query :=
		`UPDATE account SET password = $1
		 WHERE user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, newPassword, userID)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID int64) (int64, error) {

	query :=
		`DELETE FROM account
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}
