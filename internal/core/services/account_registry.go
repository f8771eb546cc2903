package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
)

// AccountRegistry resolves posting roles to accounts. The mapping is checked
// against the chart of accounts once, at construction.
type AccountRegistry struct {
	BaseService
	codes    map[domain.AccountRole]string
	accounts map[domain.AccountRole]*domain.Account
}

var _ portssvc.AccountRegistrySvc = (*AccountRegistry)(nil)

// NewAccountRegistry validates every mapped role. A mandatory role that is
// unmapped, or any role whose code is not in the chart, fails with a
// ConfigurationError.
func NewAccountRegistry(ctx context.Context, accountRepo portsrepo.AccountReader, codes map[domain.AccountRole]string) (*AccountRegistry, error) {
	r := &AccountRegistry{
		BaseService: newBaseService(),
		codes:       codes,
		accounts:    make(map[domain.AccountRole]*domain.Account, len(codes)),
	}

	roles := make([]string, 0, len(codes))
	for role := range codes {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)

	for _, name := range roles {
		role := domain.AccountRole(name)
		code := codes[role]
		if code == "" {
			if domain.OptionalRoles[role] {
				r.LogInfo(ctx, "Optional account role not mapped", slog.String("role", name))
				continue
			}
			return nil, &apperrors.ConfigurationError{Role: name, Reason: "no account code configured"}
		}

		account, err := accountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, &apperrors.ConfigurationError{Role: name, Code: code, Reason: "account not found in chart of accounts"}
			}
			return nil, fmt.Errorf("resolving account role %s: %w", name, err)
		}
		if !account.IsActive {
			return nil, &apperrors.ConfigurationError{Role: name, Code: code, Reason: "account is inactive"}
		}
		r.accounts[role] = account
	}

	r.LogInfo(ctx, "Account registry validated", slog.Int("roles", len(r.accounts)))
	return r, nil
}

// Resolve returns the account mapped to role.
func (r *AccountRegistry) Resolve(role domain.AccountRole) (*domain.Account, error) {
	if account, ok := r.accounts[role]; ok {
		return account, nil
	}
	code := r.codes[role]
	if code == "" {
		return nil, &apperrors.ConfigurationError{Role: string(role), Reason: "no account code configured"}
	}
	return nil, &apperrors.ConfigurationError{Role: string(role), Code: code, Reason: "account not found in chart of accounts"}
}
