package mapping

import (
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/SscSPs/gl_posting_engine/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalID:    d.JournalID,
		EntryDate:    d.EntryDate,
		CurrencyCode: d.CurrencyCode,
		Memo:         d.Memo,
		Posted:       d.Posted,
		PostedAt:     d.PostedAt,
		SourceType:   string(d.SourceType),
		SourceID:     d.SourceID,
		ReversalOfID: d.ReversalOfID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	d := domain.JournalEntry{
		JournalID:    m.JournalID,
		EntryDate:    m.EntryDate,
		CurrencyCode: m.CurrencyCode,
		Memo:         m.Memo,
		Posted:       m.Posted,
		PostedAt:     m.PostedAt,
		SourceType:   domain.SourceType(m.SourceType),
		SourceID:     m.SourceID,
		ReversalOfID: m.ReversalOfID,
		Lines:        make([]domain.JournalLine, len(lines)),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.Lines[i] = ToDomainJournalLine(l)
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		JournalID: d.JournalID,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		Memo:      d.Memo,
		Position:  d.Position,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		JournalID: m.JournalID,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Memo:      m.Memo,
		Position:  m.Position,
	}
}
