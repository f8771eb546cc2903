package mapping

import (
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/SscSPs/gl_posting_engine/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:         d.PaymentID,
		InvoiceID:         d.InvoiceID,
		Amount:            d.Amount,
		CurrencyCode:      d.CurrencyCode,
		PaymentDate:       d.PaymentDate,
		Reference:         d.Reference,
		Status:            string(d.Status),
		JournalEntryID:    d.JournalEntryID,
		PostedAt:          d.PostedAt,
		ExchangeRate:      toNullDecimal(d.ExchangeRate),
		BaseAmount:        toNullDecimal(d.BaseAmount),
		ClearedBaseAmount: toNullDecimal(d.ClearedBaseAmount),
		FXAmount:          toNullDecimal(d.FXAmount),
		ReversedByID:      d.ReversedByID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.FXKind != nil {
		kind := string(*d.FXKind)
		m.FXKind = &kind
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:         m.PaymentID,
		InvoiceID:         m.InvoiceID,
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		PaymentDate:       m.PaymentDate,
		Reference:         m.Reference,
		Status:            domain.PaymentStatus(m.Status),
		JournalEntryID:    m.JournalEntryID,
		PostedAt:          m.PostedAt,
		ExchangeRate:      fromNullDecimal(m.ExchangeRate),
		BaseAmount:        fromNullDecimal(m.BaseAmount),
		ClearedBaseAmount: fromNullDecimal(m.ClearedBaseAmount),
		FXAmount:          fromNullDecimal(m.FXAmount),
		ReversedByID:      m.ReversedByID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.FXKind != nil {
		kind := domain.FXKind(*m.FXKind)
		d.FXKind = &kind
	}
	return d
}
