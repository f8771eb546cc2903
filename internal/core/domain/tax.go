package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CorporateTaxRule is the corporate income tax regime of one country.
type CorporateTaxRule struct {
	RuleID    string           `json:"ruleID"`
	Country   string           `json:"country"`
	Rate      decimal.Decimal  `json:"rate"`                // Percentage, e.g. 9 for 9%
	Threshold *decimal.Decimal `json:"threshold,omitempty"` // Profit exempt from tax
	Active    bool             `json:"active"`
	AuditFields
}

// FilingStatus is the lifecycle state of a corporate tax filing.
type FilingStatus string

const (
	FilingAccrued  FilingStatus = "ACCRUED"
	FilingFiled    FilingStatus = "FILED"
	FilingReversed FilingStatus = "REVERSED"
)

// CorporateTaxFiling records the accrual of corporate tax for one period.
type CorporateTaxFiling struct {
	FilingID          string          `json:"filingID"`
	Country           string          `json:"country"`
	PeriodStart       time.Time       `json:"periodStart"`
	PeriodEnd         time.Time       `json:"periodEnd"`
	Status            FilingStatus    `json:"status"`
	RuleID            string          `json:"ruleID"`
	Profit            decimal.Decimal `json:"profit"`
	TaxBase           decimal.Decimal `json:"taxBase"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	JournalEntryID    *string         `json:"journalEntryID,omitempty"`
	ReversalJournalID *string         `json:"reversalJournalID,omitempty"`
	FiledAt           *time.Time      `json:"filedAt,omitempty"`
	AuditFields
}
