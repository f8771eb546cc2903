package dto

import (
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostDocumentResponse is returned by POST /documents/:documentID/post.
type PostDocumentResponse struct {
	JournalID string           `json:"journalId"`
	Created   bool             `json:"created"`
	Document  DocumentResponse `json:"document"`
	Journal   JournalResponse  `json:"journal"`
}

func ToPostDocumentResponse(r *domain.PostingResult) PostDocumentResponse {
	return PostDocumentResponse{
		JournalID: r.Entry.JournalID,
		Created:   r.Created,
		Document:  ToDocumentResponse(r.Document),
		Journal:   ToJournalResponse(r.Entry),
	}
}

// ReverseDocumentResponse is returned by POST /documents/:documentID/reverse.
type ReverseDocumentResponse struct {
	ReversalJournalID  string           `json:"reversalJournalId"`
	ReversalDocumentID string           `json:"reversalDocumentId"`
	Created            bool             `json:"created"`
	Original           DocumentResponse `json:"original"`
}

func ToReverseDocumentResponse(r *domain.DocumentReversal) ReverseDocumentResponse {
	resp := ReverseDocumentResponse{
		ReversalDocumentID: r.Reversal.DocumentID,
		Created:            r.Created,
		Original:           ToDocumentResponse(r.Original),
	}
	if r.ReversalJournal != nil {
		resp.ReversalJournalID = r.ReversalJournal.JournalID
	}
	return resp
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID         string               `json:"paymentID"`
	InvoiceID         string               `json:"invoiceID"`
	Amount            decimal.Decimal      `json:"amount" swaggertype:"string"`
	CurrencyCode      string               `json:"currencyCode"`
	PaymentDate       string               `json:"paymentDate"`
	Reference         string               `json:"reference"`
	Status            domain.PaymentStatus `json:"status"`
	JournalEntryID    *string              `json:"journalEntryID,omitempty"`
	PostedAt          *time.Time           `json:"postedAt,omitempty"`
	ExchangeRate      *decimal.Decimal     `json:"exchangeRate,omitempty" swaggertype:"string"`
	BaseAmount        *decimal.Decimal     `json:"baseAmount,omitempty" swaggertype:"string"`
	ClearedBaseAmount *decimal.Decimal     `json:"clearedBaseAmount,omitempty" swaggertype:"string"`
	FXAmount          *decimal.Decimal     `json:"fxAmount,omitempty" swaggertype:"string"`
	FXKind            *domain.FXKind       `json:"fxKind,omitempty"`
	ReversedByID      *string              `json:"reversedByID,omitempty"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.PaymentID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount,
		CurrencyCode:      p.CurrencyCode,
		PaymentDate:       formatDate(p.PaymentDate),
		Reference:         p.Reference,
		Status:            p.Status,
		JournalEntryID:    p.JournalEntryID,
		PostedAt:          p.PostedAt,
		ExchangeRate:      p.ExchangeRate,
		BaseAmount:        p.BaseAmount,
		ClearedBaseAmount: p.ClearedBaseAmount,
		FXAmount:          p.FXAmount,
		FXKind:            p.FXKind,
		ReversedByID:      p.ReversedByID,
	}
}

// PostPaymentResponse is returned by POST /payments/:paymentID/post.
type PostPaymentResponse struct {
	JournalID string           `json:"journalId"`
	Created   bool             `json:"created"`
	Payment   PaymentResponse  `json:"payment"`
	Invoice   DocumentResponse `json:"invoice"`
	Journal   JournalResponse  `json:"journal"`
}

func ToPostPaymentResponse(r *domain.PaymentPostingResult) PostPaymentResponse {
	return PostPaymentResponse{
		JournalID: r.Entry.JournalID,
		Created:   r.Created,
		Payment:   ToPaymentResponse(r.Payment),
		Invoice:   ToDocumentResponse(r.Invoice),
		Journal:   ToJournalResponse(r.Entry),
	}
}

// ReversePaymentResponse is returned by POST /payments/:paymentID/reverse.
type ReversePaymentResponse struct {
	ReversalJournalID string           `json:"reversalJournalId"`
	Created           bool             `json:"created"`
	Payment           PaymentResponse  `json:"payment"`
	Invoice           DocumentResponse `json:"invoice"`
}

func ToReversePaymentResponse(r *domain.PaymentReversal) ReversePaymentResponse {
	resp := ReversePaymentResponse{
		Created: r.Created,
		Payment: ToPaymentResponse(r.Payment),
		Invoice: ToDocumentResponse(r.Invoice),
	}
	if r.ReversalJournal != nil {
		resp.ReversalJournalID = r.ReversalJournal.JournalID
	}
	return resp
}
