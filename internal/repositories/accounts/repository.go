package accounts

import (
	"context"

	"github.com/bamsemats/moonadmin/internal/models"
)

// Repository is the persistence contract for the account table. Mutations
// return the number of rows affected so callers can distinguish a zero-row
// outcome (reported failure) from a store error (fatal).
type Repository interface {
	CountByCredentials(ctx context.Context, name, password string) (int64, error)
	Create(ctx context.Context, account *models.Account) (int64, error)
	UpdatePassword(ctx context.Context, userID int64, newPassword string) (int64, error)
	Delete(ctx context.Context, userID int64) (int64, error)
}
