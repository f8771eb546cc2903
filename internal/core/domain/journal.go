package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceType identifies what produced a journal entry.
type SourceType string

const (
	SourceCustomerInvoice SourceType = "CUSTOMER_INVOICE"
	SourceSupplierInvoice SourceType = "SUPPLIER_INVOICE"
	SourcePayment         SourceType = "PAYMENT"
	SourceTaxAccrual      SourceType = "TAX_ACCRUAL"
)

// JournalEntry is a balanced set of account movements in the base currency.
// Once Posted it is never mutated; corrections happen through a new entry
// whose ReversalOfID points back here.
type JournalEntry struct {
	JournalID    string         `json:"journalID"`
	EntryDate    time.Time      `json:"entryDate"`
	CurrencyCode string         `json:"currencyCode"`
	Memo         string         `json:"memo"`
	Posted       bool           `json:"posted"`
	PostedAt     *time.Time     `json:"postedAt,omitempty"`
	SourceType   SourceType     `json:"sourceType"`
	SourceID     string         `json:"sourceID"`
	ReversalOfID *string        `json:"reversalOfID,omitempty"`
	Lines        []JournalLine  `json:"lines"`
	AuditFields
}

// JournalLine is one account movement. The engine never emits a line with
// both sides non-zero.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
	Position  int             `json:"position"`
}

// NewJournalEntry creates an unposted entry header.
func NewJournalEntry(entryDate time.Time, currencyCode, memo string, sourceType SourceType, sourceID, userID string, now time.Time) *JournalEntry {
	return &JournalEntry{
		JournalID:    uuid.NewString(),
		EntryDate:    entryDate,
		CurrencyCode: currencyCode,
		Memo:         memo,
		SourceType:   sourceType,
		SourceID:     sourceID,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// AddDebit appends a debit line. Zero amounts are omitted; a negative amount
// is booked as a credit of its absolute value.
func (e *JournalEntry) AddDebit(accountID string, amount decimal.Decimal, memo string) {
	e.addLine(accountID, amount, decimal.Zero, memo)
}

// AddCredit appends a credit line, mirroring AddDebit.
func (e *JournalEntry) AddCredit(accountID string, amount decimal.Decimal, memo string) {
	e.addLine(accountID, decimal.Zero, amount, memo)
}

func (e *JournalEntry) addLine(accountID string, debit, credit decimal.Decimal, memo string) {
	if debit.IsNegative() {
		debit, credit = decimal.Zero, debit.Neg()
	} else if credit.IsNegative() {
		debit, credit = credit.Neg(), decimal.Zero
	}
	if debit.IsZero() && credit.IsZero() {
		return
	}
	e.Lines = append(e.Lines, JournalLine{
		LineID:    uuid.NewString(),
		JournalID: e.JournalID,
		AccountID: accountID,
		Debit:     debit,
		Credit:    credit,
		Memo:      memo,
		Position:  len(e.Lines) + 1,
	})
}

// Totals returns the sum of debits and the sum of credits.
func (e *JournalEntry) Totals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// Post asserts the entry balances and marks it posted.
func (e *JournalEntry) Post(now time.Time) error {
	if e.Posted {
		return &apperrors.InvalidStateError{Entity: "journal entry", ID: e.JournalID, Current: "POSTED", Wanted: "UNPOSTED"}
	}
	if len(e.Lines) < 2 {
		return fmt.Errorf("%w: journal %s has %d line(s)", apperrors.ErrUnbalancedEntry, e.JournalID, len(e.Lines))
	}
	debits, credits := e.Totals()
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: journal %s debits %s != credits %s",
			apperrors.ErrUnbalancedEntry, e.JournalID, debits.StringFixed(AmountScale), credits.StringFixed(AmountScale))
	}
	e.Posted = true
	e.PostedAt = &now
	return nil
}

// Mirror builds an unposted entry with every line's sides swapped, dated entryDate.
func (e *JournalEntry) Mirror(entryDate time.Time, memo, userID string, now time.Time) *JournalEntry {
	rev := NewJournalEntry(entryDate, e.CurrencyCode, memo, e.SourceType, e.SourceID, userID, now)
	originalID := e.JournalID
	rev.ReversalOfID = &originalID
	for _, l := range e.Lines {
		rev.addLine(l.AccountID, l.Credit, l.Debit, l.Memo)
	}
	return rev
}
