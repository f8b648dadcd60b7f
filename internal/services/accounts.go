package services

import (
	"context"
	"fmt"

	"github.com/bamsemats/moonadmin/internal/models"
	"github.com/bamsemats/moonadmin/internal/repositories/accounts"
)

// AccountService performs the mutating account operations. Every operation
// reports success as a bool: false means the mutation affected zero rows,
// which the caller shows to the operator without aborting the session.
type AccountService struct {
	accounts accounts.Repository
}

func NewAccountService(r accounts.Repository) *AccountService {
	return &AccountService{accounts: r}
}

// LoginName derives the stored login name: the first three characters of the
// first name followed by the first three characters of the last name. Names
// shorter than three characters contribute in full; empty inputs are allowed
// and yield a degenerate (possibly empty) login name. No uniqueness is
// enforced anywhere.
func LoginName(firstName, lastName string) string {
	return truncateRunes(firstName, 3) + truncateRunes(lastName, 3)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (s *AccountService) CreateAccount(ctx context.Context, firstName, lastName, ssn, password string) (bool, error) {
	account := &models.Account{
		Name:      LoginName(firstName, lastName),
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		SSN:       ssn,
	}

	n, err := s.accounts.Create(ctx, account)
	if err != nil {
		return false, fmt.Errorf("error creating account: %w", err)
	}
	return n > 0, nil
}

// UpdatePassword sets a new password by user id. It does not verify the
// current password or require re-authentication.
func (s *AccountService) UpdatePassword(ctx context.Context, userID int64, newPassword string) (bool, error) {
	n, err := s.accounts.UpdatePassword(ctx, userID, newPassword)
	if err != nil {
		return false, fmt.Errorf("error updating password: %w", err)
	}
	return n > 0, nil
}

// DeleteAccount removes an account by user id, unconditionally. Deleting the
// account of the current session is not prevented.
func (s *AccountService) DeleteAccount(ctx context.Context, userID int64) (bool, error) {
	n, err := s.accounts.Delete(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("error deleting account: %w", err)
	}
	return n > 0, nil
}
