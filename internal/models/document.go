package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceDocument is a row of the source_documents table.
type SourceDocument struct {
	DocumentID        string              `db:"document_id"`
	DocumentType      string              `db:"document_type"`
	Number            string              `db:"number"`
	PartyRef          string              `db:"party_ref"`
	CurrencyCode      string              `db:"currency_code"`
	DocumentDate      time.Time           `db:"document_date"`
	Status            string              `db:"status"`
	Subtotal          decimal.Decimal     `db:"subtotal"`
	TaxTotal          decimal.Decimal     `db:"tax_total"`
	Total             decimal.Decimal     `db:"total"`
	JournalEntryID    *string             `db:"journal_entry_id"`
	PostedAt          *time.Time          `db:"posted_at"`
	ExchangeRate      decimal.NullDecimal `db:"exchange_rate"`
	BaseCurrencyTotal decimal.NullDecimal `db:"base_currency_total"`
	ReversalOfID      *string             `db:"reversal_of_id"`
	ReversedByID      *string             `db:"reversed_by_id"`
	AmountPaid        decimal.Decimal     `db:"amount_paid"`
	BaseAmountSettled decimal.Decimal     `db:"base_amount_settled"`
	SettlementStatus  string              `db:"settlement_status"`
	AuditFields
}

// DocumentLine is a row of the document_lines table.
type DocumentLine struct {
	LineID      string          `db:"line_id"`
	DocumentID  string          `db:"document_id"`
	Position    int             `db:"position"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	AccountID   *string         `db:"account_id"` // Nullable while DRAFT
	TaxCode     *string         `db:"tax_code"`
}
