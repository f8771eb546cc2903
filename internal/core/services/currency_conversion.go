package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CurrencyConversionService resolves historical rates and converts amounts.
type CurrencyConversionService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateReader
	currencyRepo portsrepo.CurrencyReader
}

var _ portssvc.CurrencyConversionSvc = (*CurrencyConversionService)(nil)

// NewCurrencyConversionService creates a new CurrencyConversionService.
func NewCurrencyConversionService(rateRepo portsrepo.ExchangeRateReader, currencyRepo portsrepo.CurrencyReader) *CurrencyConversionService {
	return &CurrencyConversionService{
		BaseService:  newBaseService(),
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

// ResolveRate returns the rate converting one unit of from into to on asOf.
//
// Lookup order: identity for the same currency, then the direct pair (exact
// date or the latest before it), then the inverse pair under the same rule.
// Nothing found is a RateNotFoundError; there is no default rate.
func (s *CurrencyConversionService) ResolveRate(ctx context.Context, from, to string, asOf time.Time, rateType domain.RateType) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if rateType == "" {
		rateType = domain.RateTypeSpot
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	direct, err := s.rateRepo.FindRateOnOrBefore(ctx, from, to, asOf, rateType)
	if err == nil {
		if !direct.Rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: non-positive rate %s for %s/%s", apperrors.ErrValidation, direct.Rate, from, to)
		}
		return direct.Rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("looking up %s/%s rate: %w", from, to, err)
	}

	inverse, err := s.rateRepo.FindRateOnOrBefore(ctx, to, from, asOf, rateType)
	if err == nil {
		if !inverse.Rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: non-positive rate %s for %s/%s", apperrors.ErrValidation, inverse.Rate, to, from)
		}
		s.LogDebug(ctx, "Using inverse exchange rate",
			slog.String("from", from), slog.String("to", to), slog.String("inverse_rate", inverse.Rate.String()))
		return decimal.NewFromInt(1).DivRound(inverse.Rate, domain.RateScale), nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("looking up %s/%s rate: %w", to, from, err)
	}

	return decimal.Zero, &apperrors.RateNotFoundError{From: from, To: to, AsOf: asOf, RateType: string(rateType)}
}

// Convert resolves the spot rate on asOf and applies it with domain.ConvertAmount.
func (s *CurrencyConversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf time.Time) (decimal.Decimal, error) {
	rate, err := s.ResolveRate(ctx, from, to, asOf, domain.RateTypeSpot)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.ConvertAmount(amount, rate), nil
}

// BaseCurrency returns the single currency flagged as base.
func (s *CurrencyConversionService) BaseCurrency(ctx context.Context) (*domain.Currency, error) {
	bases, err := s.currencyRepo.FindBaseCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading base currency: %w", err)
	}
	switch len(bases) {
	case 0:
		return nil, &apperrors.ConfigurationError{Reason: "no base currency designated"}
	case 1:
		return &bases[0], nil
	default:
		codes := make([]string, len(bases))
		for i, c := range bases {
			codes[i] = c.CurrencyCode
		}
		return nil, &apperrors.ConfigurationError{Reason: fmt.Sprintf("multiple base currencies designated: %s", strings.Join(codes, ", "))}
	}
}
