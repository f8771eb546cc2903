package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`
	IsBase       bool   `json:"isBase"` // Exactly one currency is the ledger's reporting currency
	AuditFields
}

// RateType distinguishes rate series (spot, average, closing).
type RateType string

const (
	RateTypeSpot    RateType = "SPOT"
	RateTypeAverage RateType = "AVERAGE"
	RateTypeClosing RateType = "CLOSING"
)

// ExchangeRate converts one unit of FromCurrencyCode into ToCurrencyCode,
// effective from EffectiveDate until superseded.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	RateType         RateType        `json:"rateType"`
	Rate             decimal.Decimal `json:"rate"`
	AuditFields
}
