package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func decimalOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
