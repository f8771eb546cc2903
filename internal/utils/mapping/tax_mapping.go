package mapping

import (
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/SscSPs/gl_posting_engine/internal/models"
)

// ToModelCorporateTaxRule converts a domain CorporateTaxRule to a model CorporateTaxRule
func ToModelCorporateTaxRule(d domain.CorporateTaxRule) models.CorporateTaxRule {
	return models.CorporateTaxRule{
		RuleID:      d.RuleID,
		Country:     d.Country,
		Rate:        d.Rate,
		Threshold:   toNullDecimal(d.Threshold),
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCorporateTaxRule converts a model CorporateTaxRule to a domain CorporateTaxRule
func ToDomainCorporateTaxRule(m models.CorporateTaxRule) domain.CorporateTaxRule {
	return domain.CorporateTaxRule{
		RuleID:      m.RuleID,
		Country:     m.Country,
		Rate:        m.Rate,
		Threshold:   fromNullDecimal(m.Threshold),
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCorporateTaxFiling converts a domain CorporateTaxFiling to a model CorporateTaxFiling
func ToModelCorporateTaxFiling(d domain.CorporateTaxFiling) models.CorporateTaxFiling {
	return models.CorporateTaxFiling{
		FilingID:          d.FilingID,
		Country:           d.Country,
		PeriodStart:       d.PeriodStart,
		PeriodEnd:         d.PeriodEnd,
		Status:            string(d.Status),
		RuleID:            d.RuleID,
		Profit:            d.Profit,
		TaxBase:           d.TaxBase,
		TaxAmount:         d.TaxAmount,
		JournalEntryID:    d.JournalEntryID,
		ReversalJournalID: d.ReversalJournalID,
		FiledAt:           d.FiledAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCorporateTaxFiling converts a model CorporateTaxFiling to a domain CorporateTaxFiling
func ToDomainCorporateTaxFiling(m models.CorporateTaxFiling) domain.CorporateTaxFiling {
	return domain.CorporateTaxFiling{
		FilingID:          m.FilingID,
		Country:           m.Country,
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		Status:            domain.FilingStatus(m.Status),
		RuleID:            m.RuleID,
		Profit:            m.Profit,
		TaxBase:           m.TaxBase,
		TaxAmount:         m.TaxAmount,
		JournalEntryID:    m.JournalEntryID,
		ReversalJournalID: m.ReversalJournalID,
		FiledAt:           m.FiledAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
