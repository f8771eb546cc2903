package domain

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places stored for every ledger amount.
const AmountScale int32 = 2

// RateScale is the precision used when deriving an inverse exchange rate.
const RateScale int32 = 10

// RoundAmount rounds to AmountScale places, half away from zero.
// For non-negative amounts this is round-half-up; negated mirror documents
// round symmetrically with their originals.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// Percent returns amount × rate / 100, rounded to AmountScale.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(rate).Div(decimal.NewFromInt(100)))
}

// ConvertAmount applies rate to amount and rounds the result to AmountScale.
// Every foreign-to-base conversion in the ledger goes through here.
func ConvertAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(rate))
}
