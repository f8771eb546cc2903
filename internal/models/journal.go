package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	JournalID    string     `db:"journal_id"`
	EntryDate    time.Time  `db:"entry_date"`
	CurrencyCode string     `db:"currency_code"`
	Memo         string     `db:"memo"`
	Posted       bool       `db:"posted"`
	PostedAt     *time.Time `db:"posted_at"`
	SourceType   string     `db:"source_type"`
	SourceID     string     `db:"source_id"`
	ReversalOfID *string    `db:"reversal_of_id"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	JournalID string          `db:"journal_id"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Memo      string          `db:"memo"`
	Position  int             `db:"position"`
}
