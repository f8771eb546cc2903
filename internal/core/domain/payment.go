package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentDraft    PaymentStatus = "DRAFT"
	PaymentPosted   PaymentStatus = "POSTED"
	PaymentReversed PaymentStatus = "REVERSED"
)

// FXKind classifies a realized exchange difference.
type FXKind string

const (
	RealizedGain FXKind = "REALIZED_GAIN"
	RealizedLoss FXKind = "REALIZED_LOSS"
)

// Opposite flips gain and loss, used when the document is a payable.
func (k FXKind) Opposite() FXKind {
	if k == RealizedGain {
		return RealizedLoss
	}
	return RealizedGain
}

// Payment settles (part of) one posted invoice.
type Payment struct {
	PaymentID         string           `json:"paymentID"`
	InvoiceID         string           `json:"invoiceID"`
	Amount            decimal.Decimal  `json:"amount"`
	CurrencyCode      string           `json:"currencyCode"`
	PaymentDate       time.Time        `json:"paymentDate"`
	Reference         string           `json:"reference"`
	Status            PaymentStatus    `json:"status"`
	JournalEntryID    *string          `json:"journalEntryID,omitempty"`
	PostedAt          *time.Time       `json:"postedAt,omitempty"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate,omitempty"`      // Settlement rate frozen at posting
	BaseAmount        *decimal.Decimal `json:"baseAmount,omitempty"`        // Amount × ExchangeRate
	ClearedBaseAmount *decimal.Decimal `json:"clearedBaseAmount,omitempty"` // Control account relief at the invoice rate
	FXAmount          *decimal.Decimal `json:"fxAmount,omitempty"`
	FXKind            *FXKind          `json:"fxKind,omitempty"`
	ReversedByID      *string          `json:"reversedByID,omitempty"`
	AuditFields
}
