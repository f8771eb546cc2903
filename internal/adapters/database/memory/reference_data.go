package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

func (v *view) SaveAccount(ctx context.Context, account domain.Account) error {
	return v.write(func(st *state) error {
		for _, a := range st.accounts {
			if a.Code == account.Code && a.AccountID != account.AccountID {
				return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
			}
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (v *view) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var found *domain.Account
	v.read(func(st *state) {
		if a, ok := st.accounts[accountID]; ok {
			found = &a
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return found, nil
}

func (v *view) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	var found *domain.Account
	v.read(func(st *state) {
		for _, a := range st.accounts {
			if a.Code == code {
				found = &a
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("account with code", code)
	}
	return found, nil
}

func (v *view) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	v.read(func(st *state) {
		for _, a := range st.accounts {
			out = append(out, a)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (v *view) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	return v.write(func(st *state) error {
		if _, ok := st.currencies[currency.CurrencyCode]; ok {
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.CurrencyCode)
		}
		st.currencies[currency.CurrencyCode] = currency
		return nil
	})
}

func (v *view) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	var found *domain.Currency
	v.read(func(st *state) {
		if c, ok := st.currencies[currencyCode]; ok {
			found = &c
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("currency", currencyCode)
	}
	return found, nil
}

func (v *view) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var out []domain.Currency
	v.read(func(st *state) {
		for _, c := range st.currencies {
			out = append(out, c)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}

func (v *view) FindBaseCurrencies(ctx context.Context) ([]domain.Currency, error) {
	all, _ := v.ListCurrencies(ctx)
	var out []domain.Currency
	for _, c := range all {
		if c.IsBase {
			out = append(out, c)
		}
	}
	return out, nil
}

func rateKey(from, to string, date time.Time, rateType domain.RateType) string {
	return fmt.Sprintf("%s|%s|%s|%s", from, to, date.Format(time.DateOnly), rateType)
}

func (v *view) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	return v.write(func(st *state) error {
		key := rateKey(rate.FromCurrencyCode, rate.ToCurrencyCode, rate.EffectiveDate, rate.RateType)
		if _, ok := st.rates[key]; ok {
			return fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, key)
		}
		st.rates[key] = rate
		return nil
	})
}

func (v *view) FindRateOnOrBefore(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error) {
	asOfDay := asOf.Format(time.DateOnly)
	var best *domain.ExchangeRate
	v.read(func(st *state) {
		for _, r := range st.rates {
			if r.FromCurrencyCode != fromCurrencyCode || r.ToCurrencyCode != toCurrencyCode || r.RateType != rateType {
				continue
			}
			if r.EffectiveDate.Format(time.DateOnly) > asOfDay {
				continue
			}
			if best == nil || r.EffectiveDate.After(best.EffectiveDate) {
				best = &r
			}
		}
	})
	if best == nil {
		return nil, apperrors.NewNotFoundError("exchange rate", fromCurrencyCode+"/"+toCurrencyCode)
	}
	return best, nil
}
