package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateOnOrBefore returns the rate for the pair and type with the latest
	// effective date not after asOf. An exact match on asOf wins by construction.
	// Returns apperrors.ErrNotFound if none exists.
	FindRateOnOrBefore(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
