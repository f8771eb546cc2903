package domain

import "github.com/shopspring/decimal"

// PostingResult is returned by every posting operation. Created is false when
// the source was already posted and the existing entry is returned.
type PostingResult struct {
	Entry    *JournalEntry
	Document *SourceDocument
	Created  bool
}

// PaymentPostingResult is the payment counterpart of PostingResult.
type PaymentPostingResult struct {
	Entry   *JournalEntry
	Payment *Payment
	Invoice *SourceDocument
	Created bool
}

// DocumentReversal links a reversed document to its mirror and reversing entry.
type DocumentReversal struct {
	Original        *SourceDocument
	Reversal        *SourceDocument
	ReversalJournal *JournalEntry
	Created         bool
}

// PaymentReversal links a reversed payment to its reversing entry.
type PaymentReversal struct {
	Payment         *Payment
	Invoice         *SourceDocument
	ReversalJournal *JournalEntry
	Created         bool
}

// TaxAccrual is the outcome of a corporate tax accrual. Filing and Entry are
// nil when the period produced no taxable profit.
type TaxAccrual struct {
	Filing    *CorporateTaxFiling
	Entry     *JournalEntry
	Profit    decimal.Decimal
	TaxBase   decimal.Decimal
	TaxAmount decimal.Decimal
	Created   bool
}
