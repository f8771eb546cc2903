package services

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyConversionSvc converts amounts between currencies at historical rates.
type CurrencyConversionSvc interface {
	// ResolveRate finds the rate in effect on asOf. Same-currency pairs resolve
	// to 1 without a lookup; a missing rate is a RateNotFoundError.
	ResolveRate(ctx context.Context, from, to string, asOf time.Time, rateType domain.RateType) (decimal.Decimal, error)

	// Convert multiplies amount by the spot rate on asOf and rounds to 2 places.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf time.Time) (decimal.Decimal, error)

	// BaseCurrency returns the single reporting currency of the ledger.
	BaseCurrency(ctx context.Context) (*domain.Currency, error)
}

// FXGainLossSvc measures and books realized exchange differences.
type FXGainLossSvc interface {
	ComputeGainLoss(originalAmount decimal.Decimal, originalCcy string, originalRate decimal.Decimal,
		settleAmount decimal.Decimal, settleCcy string, settleRate decimal.Decimal) (decimal.Decimal, domain.FXKind)

	PostGainLoss(entry *domain.JournalEntry, amount decimal.Decimal, kind domain.FXKind, contraAccountID *string) error
}
