package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/models"
	"github.com/SscSPs/gl_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type currencyRepository struct {
	db querier
}

var _ portsrepo.CurrencyRepositoryFacade = (*currencyRepository)(nil)

const currencyColumns = `currency_code, name, is_base, created_at, created_by, last_updated_at, last_updated_by`

// SaveCurrency inserts a currency. A second base currency violates
// currencies_single_base and is reported as a duplicate.
func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	_, err := r.db.Exec(ctx, `
		INSERT INTO currencies (`+currencyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.CurrencyCode, m.Name, m.IsBase, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("currency "+m.CurrencyCode, err)
	}
	return nil
}

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	rows, err := r.db.Query(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE currency_code = $1`, currencyCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currency", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, readError("currency", currencyCode, err)
	}
	currency := mapping.ToDomainCurrency(m)
	return &currency, nil
}

func (r *currencyRepository) list(ctx context.Context, where string) ([]domain.Currency, error) {
	rows, err := r.db.Query(ctx, `SELECT `+currencyColumns+` FROM currencies `+where+` ORDER BY currency_code`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan currencies", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.list(ctx, "")
}

func (r *currencyRepository) FindBaseCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.list(ctx, "WHERE is_base")
}

type exchangeRateRepository struct {
	db querier
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*exchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, effective_date, rate_type, rate,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *exchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.db.Exec(ctx, `
		INSERT INTO exchange_rates (`+exchangeRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode, m.EffectiveDate, m.RateType, m.Rate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("exchange rate "+m.FromCurrencyCode+"/"+m.ToCurrencyCode, err)
	}
	return nil
}

// FindRateOnOrBefore compares calendar dates; asOf is truncated to its date.
func (r *exchangeRateRepository) FindRateOnOrBefore(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+exchangeRateColumns+`
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		  AND effective_date <= $3::date AND rate_type = $4
		ORDER BY effective_date DESC
		LIMIT 1`,
		fromCurrencyCode, toCurrencyCode, asOf.Format(time.DateOnly), string(rateType),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exchange rate", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, readError("exchange rate", fromCurrencyCode+"/"+toCurrencyCode, err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}
