package mapping

import (
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/SscSPs/gl_posting_engine/internal/models"
)

// ToModelSourceDocument converts a domain SourceDocument header to a model SourceDocument
func ToModelSourceDocument(d domain.SourceDocument) models.SourceDocument {
	return models.SourceDocument{
		DocumentID:        d.DocumentID,
		DocumentType:      string(d.DocumentType),
		Number:            d.Number,
		PartyRef:          d.PartyRef,
		CurrencyCode:      d.CurrencyCode,
		DocumentDate:      d.DocumentDate,
		Status:            string(d.Status),
		Subtotal:          d.Subtotal,
		TaxTotal:          d.TaxTotal,
		Total:             d.Total,
		JournalEntryID:    d.JournalEntryID,
		PostedAt:          d.PostedAt,
		ExchangeRate:      toNullDecimal(d.ExchangeRate),
		BaseCurrencyTotal: toNullDecimal(d.BaseCurrencyTotal),
		ReversalOfID:      d.ReversalOfID,
		ReversedByID:      d.ReversedByID,
		AmountPaid:        d.AmountPaid,
		BaseAmountSettled: d.BaseAmountSettled,
		SettlementStatus:  string(d.SettlementStatus),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSourceDocument converts a model SourceDocument and its lines to a domain SourceDocument
func ToDomainSourceDocument(m models.SourceDocument, lines []models.DocumentLine) domain.SourceDocument {
	d := domain.SourceDocument{
		DocumentID:        m.DocumentID,
		DocumentType:      domain.DocumentType(m.DocumentType),
		Number:            m.Number,
		PartyRef:          m.PartyRef,
		CurrencyCode:      m.CurrencyCode,
		DocumentDate:      m.DocumentDate,
		Status:            domain.DocumentStatus(m.Status),
		Lines:             make([]domain.DocumentLine, len(lines)),
		Subtotal:          m.Subtotal,
		TaxTotal:          m.TaxTotal,
		Total:             m.Total,
		JournalEntryID:    m.JournalEntryID,
		PostedAt:          m.PostedAt,
		ExchangeRate:      fromNullDecimal(m.ExchangeRate),
		BaseCurrencyTotal: fromNullDecimal(m.BaseCurrencyTotal),
		ReversalOfID:      m.ReversalOfID,
		ReversedByID:      m.ReversedByID,
		AmountPaid:        m.AmountPaid,
		BaseAmountSettled: m.BaseAmountSettled,
		SettlementStatus:  domain.SettlementStatus(m.SettlementStatus),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.Lines[i] = ToDomainDocumentLine(l)
	}
	return d
}

// ToModelDocumentLine converts a domain DocumentLine to a model DocumentLine
func ToModelDocumentLine(d domain.DocumentLine) models.DocumentLine {
	return models.DocumentLine{
		LineID:      d.LineID,
		DocumentID:  d.DocumentID,
		Position:    d.Position,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		AccountID:   toNullString(d.AccountID),
		TaxCode:     toNullString(d.TaxCode),
	}
}

// ToDomainDocumentLine converts a model DocumentLine to a domain DocumentLine
func ToDomainDocumentLine(m models.DocumentLine) domain.DocumentLine {
	return domain.DocumentLine{
		LineID:      m.LineID,
		DocumentID:  m.DocumentID,
		Position:    m.Position,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		AccountID:   fromNullString(m.AccountID),
		TaxCode:     fromNullString(m.TaxCode),
	}
}
