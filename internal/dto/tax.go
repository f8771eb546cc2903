package dto

import (
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// AccrueTaxRequest defines the body of POST /tax/accruals.
type AccrueTaxRequest struct {
	Country  string `json:"country" binding:"required,len=2,alpha"`
	From     string `json:"from" binding:"required,isodate"`
	To       string `json:"to" binding:"required,isodate"`
	Override bool   `json:"override"`
}

func (r AccrueTaxRequest) ToServiceRequest() portssvc.AccrueTaxRequest {
	from, _ := parseDate(r.From)
	to, _ := parseDate(r.To)
	return portssvc.AccrueTaxRequest{Country: r.Country, PeriodStart: from, PeriodEnd: to, Override: r.Override}
}

// ReverseFilingRequest defines the optional body of POST /tax/filings/:filingID/reverse.
type ReverseFilingRequest struct {
	Override bool `json:"override"`
}

// AccrueTaxResponse echoes the figures the accrual was computed from.
// FilingID and JournalID are empty when nothing was accrued.
type AccrueTaxResponse struct {
	FilingID  string          `json:"filingId,omitempty"`
	JournalID string          `json:"journalId,omitempty"`
	Profit    decimal.Decimal `json:"profit" swaggertype:"string"`
	TaxBase   decimal.Decimal `json:"taxBase" swaggertype:"string"`
	Tax       decimal.Decimal `json:"tax" swaggertype:"string"`
	Created   bool            `json:"created"`
}

func ToAccrueTaxResponse(a *domain.TaxAccrual) AccrueTaxResponse {
	resp := AccrueTaxResponse{Profit: a.Profit, TaxBase: a.TaxBase, Tax: a.TaxAmount, Created: a.Created}
	if a.Filing != nil {
		resp.FilingID = a.Filing.FilingID
	}
	if a.Entry != nil {
		resp.JournalID = a.Entry.JournalID
	}
	return resp
}

// FilingResponse defines the data returned for a corporate tax filing.
type FilingResponse struct {
	FilingID          string              `json:"filingID"`
	Country           string              `json:"country"`
	PeriodStart       string              `json:"periodStart"`
	PeriodEnd         string              `json:"periodEnd"`
	Status            domain.FilingStatus `json:"status"`
	Profit            decimal.Decimal     `json:"profit" swaggertype:"string"`
	TaxBase           decimal.Decimal     `json:"taxBase" swaggertype:"string"`
	TaxAmount         decimal.Decimal     `json:"taxAmount" swaggertype:"string"`
	JournalEntryID    *string             `json:"journalEntryID,omitempty"`
	ReversalJournalID *string             `json:"reversalJournalID,omitempty"`
	FiledAt           *time.Time          `json:"filedAt,omitempty"`
}

func ToFilingResponse(f *domain.CorporateTaxFiling) FilingResponse {
	return FilingResponse{
		FilingID:          f.FilingID,
		Country:           f.Country,
		PeriodStart:       formatDate(f.PeriodStart),
		PeriodEnd:         formatDate(f.PeriodEnd),
		Status:            f.Status,
		Profit:            f.Profit,
		TaxBase:           f.TaxBase,
		TaxAmount:         f.TaxAmount,
		JournalEntryID:    f.JournalEntryID,
		ReversalJournalID: f.ReversalJournalID,
		FiledAt:           f.FiledAt,
	}
}
