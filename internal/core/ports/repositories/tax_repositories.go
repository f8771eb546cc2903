package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// TaxReader defines read operations for tax rules and filings
type TaxReader interface {
	// FindActiveRule returns the active corporate tax rule of a country
	FindActiveRule(ctx context.Context, country string) (*domain.CorporateTaxRule, error)

	// FindFilingByID retrieves a filing
	FindFilingByID(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error)
}

// TaxLocker serializes work on a filing.
type TaxLocker interface {
	// LockFilingPeriod takes an exclusive lock on (country, period) even when
	// no filing exists yet, then returns the filing for that period, or
	// apperrors.ErrNotFound.
	LockFilingPeriod(ctx context.Context, country string, periodStart, periodEnd time.Time) (*domain.CorporateTaxFiling, error)

	// FindFilingForUpdate locks and returns a filing by ID
	FindFilingForUpdate(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error)
}

// TaxWriter defines write operations for tax rules and filings
type TaxWriter interface {
	SaveTaxRule(ctx context.Context, rule domain.CorporateTaxRule) error
	SaveFiling(ctx context.Context, filing domain.CorporateTaxFiling) error
	UpdateFiling(ctx context.Context, filing domain.CorporateTaxFiling) error
}

// TaxRepositoryFacade combines all tax-related repository interfaces
type TaxRepositoryFacade interface {
	TaxReader
	TaxWriter
}

// TaxRepositoryWithLock is the transactional view of tax data.
type TaxRepositoryWithLock interface {
	TaxRepositoryFacade
	TaxLocker
}
