package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CorporateTaxRule is a row of the corporate_tax_rules table.
type CorporateTaxRule struct {
	RuleID    string              `db:"rule_id"`
	Country   string              `db:"country"`
	Rate      decimal.Decimal     `db:"rate"`
	Threshold decimal.NullDecimal `db:"threshold"`
	Active    bool                `db:"active"`
	AuditFields
}

// CorporateTaxFiling is a row of the corporate_tax_filings table.
type CorporateTaxFiling struct {
	FilingID          string          `db:"filing_id"`
	Country           string          `db:"country"`
	PeriodStart       time.Time       `db:"period_start"`
	PeriodEnd         time.Time       `db:"period_end"`
	Status            string          `db:"status"`
	RuleID            string          `db:"rule_id"`
	Profit            decimal.Decimal `db:"profit"`
	TaxBase           decimal.Decimal `db:"tax_base"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	JournalEntryID    *string         `db:"journal_entry_id"`
	ReversalJournalID *string         `db:"reversal_journal_id"`
	FiledAt           *time.Time      `db:"filed_at"`
	AuditFields
}
