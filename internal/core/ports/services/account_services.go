package services

import (
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// AccountRegistrySvc resolves posting roles to accounts of the chart of accounts.
type AccountRegistrySvc interface {
	// Resolve returns the account mapped to role, or a ConfigurationError
	// naming the role and the missing code.
	Resolve(role domain.AccountRole) (*domain.Account, error)
}
