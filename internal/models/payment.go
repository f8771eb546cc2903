package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID         string              `db:"payment_id"`
	InvoiceID         string              `db:"invoice_id"`
	Amount            decimal.Decimal     `db:"amount"`
	CurrencyCode      string              `db:"currency_code"`
	PaymentDate       time.Time           `db:"payment_date"`
	Reference         string              `db:"reference"`
	Status            string              `db:"status"`
	JournalEntryID    *string             `db:"journal_entry_id"`
	PostedAt          *time.Time          `db:"posted_at"`
	ExchangeRate      decimal.NullDecimal `db:"exchange_rate"`
	BaseAmount        decimal.NullDecimal `db:"base_amount"`
	ClearedBaseAmount decimal.NullDecimal `db:"cleared_base_amount"`
	FXAmount          decimal.NullDecimal `db:"fx_amount"`
	FXKind            *string             `db:"fx_kind"`
	ReversedByID      *string             `db:"reversed_by_id"`
	AuditFields
}
