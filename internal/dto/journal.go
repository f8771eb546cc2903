package dto

import (
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for one journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit    decimal.Decimal `json:"credit" swaggertype:"string"`
	Memo      string          `json:"memo,omitempty"`
	Position  int             `json:"position"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID    string                `json:"journalID"`
	EntryDate    string                `json:"entryDate"`
	CurrencyCode string                `json:"currencyCode"`
	Memo         string                `json:"memo"`
	Posted       bool                  `json:"posted"`
	PostedAt     *time.Time            `json:"postedAt,omitempty"`
	SourceType   domain.SourceType     `json:"sourceType"`
	SourceID     string                `json:"sourceID"`
	ReversalOfID *string               `json:"reversalOfID,omitempty"`
	TotalDebit   decimal.Decimal       `json:"totalDebit" swaggertype:"string"`
	TotalCredit  decimal.Decimal       `json:"totalCredit" swaggertype:"string"`
	Lines        []JournalLineResponse `json:"lines"`
	CreatedAt    time.Time             `json:"createdAt"`
	CreatedBy    string                `json:"createdBy"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	SourceType string `form:"sourceType" binding:"omitempty,oneof=CUSTOMER_INVOICE SUPPLIER_INVOICE PAYMENT TAX_ACCRUAL"`
	SourceID   string `form:"sourceID"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken  string `form:"nextToken"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	debits, credits := e.Totals()
	resp := JournalResponse{
		JournalID:    e.JournalID,
		EntryDate:    formatDate(e.EntryDate),
		CurrencyCode: e.CurrencyCode,
		Memo:         e.Memo,
		Posted:       e.Posted,
		PostedAt:     e.PostedAt,
		SourceType:   e.SourceType,
		SourceID:     e.SourceID,
		ReversalOfID: e.ReversalOfID,
		TotalDebit:   debits,
		TotalCredit:  credits,
		Lines:        make([]JournalLineResponse, len(e.Lines)),
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
	for i, l := range e.Lines {
		resp.Lines[i] = JournalLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Memo:      l.Memo,
			Position:  l.Position,
		}
	}
	return resp
}

// ToListJournalsResponse converts a page of entries.
func ToListJournalsResponse(entries []domain.JournalEntry, next *string) ListJournalsResponse {
	resp := ListJournalsResponse{Journals: make([]JournalResponse, len(entries)), NextToken: next}
	for i := range entries {
		resp.Journals[i] = ToJournalResponse(&entries[i])
	}
	return resp
}
