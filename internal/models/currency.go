package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Name         string `db:"name"`
	IsBase       bool   `db:"is_base"`
	AuditFields
}

// ExchangeRate is a row of the exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	EffectiveDate    time.Time       `db:"effective_date"`
	RateType         string          `db:"rate_type"`
	Rate             decimal.Decimal `db:"rate"`
	AuditFields
}
