// Package services contains the business logic of the moonadmin client:
// credential validation, account management, and mission queries. Services
// take repositories as interfaces so tests can substitute fakes.
package services

import (
	"context"
	"fmt"

	"github.com/bamsemats/moonadmin/internal/repositories/accounts"
)

// AuthService verifies submitted credentials against the account table.
type AuthService struct {
	accounts accounts.Repository
}

func NewAuthService(r accounts.Repository) *AuthService {
	return &AuthService{accounts: r}
}

// ValidateLogin returns true only when exactly one account matches both the
// username and password. Zero matches means wrong credentials; more than one
// match in the non-unique schema is also rejected. A store failure is
// returned as an error and is fatal to the session.
func (s *AuthService) ValidateLogin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.accounts.CountByCredentials(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("login query failed: %w", err)
	}
	return count == 1, nil
}
