package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes receivable from payable commercial documents.
type DocumentType string

const (
	CustomerInvoice DocumentType = "CUSTOMER_INVOICE"
	SupplierInvoice DocumentType = "SUPPLIER_INVOICE"
)

// IsReceivable reports whether the document raises a receivable (inbound money).
func (t DocumentType) IsReceivable() bool {
	return t == CustomerInvoice
}

// SourceType maps the document type onto the journal source it produces.
func (t DocumentType) SourceType() SourceType {
	if t == SupplierInvoice {
		return SourceSupplierInvoice
	}
	return SourceCustomerInvoice
}

// DocumentStatus is the lifecycle state of a source document.
type DocumentStatus string

const (
	DocumentDraft    DocumentStatus = "DRAFT"
	DocumentPosted   DocumentStatus = "POSTED"
	DocumentReversed DocumentStatus = "REVERSED"
)

// CanTransition reports whether the lifecycle permits moving from s to next.
// Staying in the same state is always allowed.
func (s DocumentStatus) CanTransition(next DocumentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case DocumentDraft:
		return next == DocumentPosted
	case DocumentPosted:
		return next == DocumentReversed
	}
	return false
}

// SettlementStatus tracks how much of a posted invoice has been paid.
type SettlementStatus string

const (
	Unpaid        SettlementStatus = "UNPAID"
	PartiallyPaid SettlementStatus = "PARTIALLY_PAID"
	Paid          SettlementStatus = "PAID"
)

// DocumentLine is one invoice line. TaxRate is a percentage.
type DocumentLine struct {
	LineID      string          `json:"lineID"`
	DocumentID  string          `json:"documentID"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	AccountID   string          `json:"accountID"`
	TaxCode     string          `json:"taxCode"`
}

// Net is quantity × unit price rounded to AmountScale.
func (l DocumentLine) Net() decimal.Decimal {
	return RoundAmount(l.Quantity.Mul(l.UnitPrice))
}

// Tax is the line's tax on Net.
func (l DocumentLine) Tax() decimal.Decimal {
	return Percent(l.Net(), l.TaxRate)
}

// SourceDocument is a customer or supplier invoice, or the mirror document
// created when one is reversed.
type SourceDocument struct {
	DocumentID        string           `json:"documentID"`
	DocumentType      DocumentType     `json:"documentType"`
	Number            string           `json:"number"`
	PartyRef          string           `json:"partyRef"`
	CurrencyCode      string           `json:"currencyCode"`
	DocumentDate      time.Time        `json:"documentDate"`
	Status            DocumentStatus   `json:"status"`
	Lines             []DocumentLine   `json:"lines"`
	Subtotal          decimal.Decimal  `json:"subtotal"`
	TaxTotal          decimal.Decimal  `json:"taxTotal"`
	Total             decimal.Decimal  `json:"total"`
	JournalEntryID    *string          `json:"journalEntryID,omitempty"`
	PostedAt          *time.Time       `json:"postedAt,omitempty"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate,omitempty"`
	BaseCurrencyTotal *decimal.Decimal `json:"baseCurrencyTotal,omitempty"`
	ReversalOfID      *string          `json:"reversalOfID,omitempty"`
	ReversedByID      *string          `json:"reversedByID,omitempty"`
	AmountPaid        decimal.Decimal  `json:"amountPaid"`
	BaseAmountSettled decimal.Decimal  `json:"baseAmountSettled"`
	SettlementStatus  SettlementStatus `json:"settlementStatus"`
	AuditFields
}

// ComputeTotals sums the lines in document currency.
func (d *SourceDocument) ComputeTotals() (subtotal, tax, total decimal.Decimal) {
	subtotal, tax = decimal.Zero, decimal.Zero
	for _, l := range d.Lines {
		subtotal = subtotal.Add(l.Net())
		tax = tax.Add(l.Tax())
	}
	return subtotal, tax, subtotal.Add(tax)
}

// NormalizeTotals overwrites the header totals with the sum of the lines.
func (d *SourceDocument) NormalizeTotals() {
	d.Subtotal, d.TaxTotal, d.Total = d.ComputeTotals()
}

// Outstanding is the unpaid part of Total in document currency.
func (d *SourceDocument) Outstanding() decimal.Decimal {
	return d.Total.Sub(d.AmountPaid)
}

// HasSettlements reports whether any payment has been applied.
func (d *SourceDocument) HasSettlements() bool {
	return !d.AmountPaid.IsZero()
}

// BaseOutstanding is the part of BaseCurrencyTotal not yet cleared by payments.
func (d *SourceDocument) BaseOutstanding() decimal.Decimal {
	if d.BaseCurrencyTotal == nil {
		return decimal.Zero
	}
	return d.BaseCurrencyTotal.Sub(d.BaseAmountSettled)
}

// ApplySettlement records a payment against the document and derives the
// settlement status.
func (d *SourceDocument) ApplySettlement(amount, baseCleared decimal.Decimal) {
	d.AmountPaid = d.AmountPaid.Add(amount)
	d.BaseAmountSettled = d.BaseAmountSettled.Add(baseCleared)
	d.refreshSettlementStatus()
}

func (d *SourceDocument) refreshSettlementStatus() {
	switch {
	case d.AmountPaid.IsZero():
		d.SettlementStatus = Unpaid
	case d.Outstanding().Sign() <= 0:
		d.SettlementStatus = Paid
	default:
		d.SettlementStatus = PartiallyPaid
	}
}

// Clone returns a deep copy so callers can diff a proposed write against the
// persisted row.
func (d *SourceDocument) Clone() *SourceDocument {
	c := *d
	c.Lines = append([]DocumentLine(nil), d.Lines...)
	c.JournalEntryID = cloneString(d.JournalEntryID)
	c.ReversalOfID = cloneString(d.ReversalOfID)
	c.ReversedByID = cloneString(d.ReversedByID)
	c.ExchangeRate = cloneDecimal(d.ExchangeRate)
	c.BaseCurrencyTotal = cloneDecimal(d.BaseCurrencyTotal)
	if d.PostedAt != nil {
		t := *d.PostedAt
		c.PostedAt = &t
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
