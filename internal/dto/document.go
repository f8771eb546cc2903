package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentLineRequest is one line of a draft document. Amounts are decimal
// strings so no precision is lost in JSON.
type DocumentLineRequest struct {
	LineID      string `json:"lineID"`
	Description string `json:"description"`
	Quantity    string `json:"quantity" binding:"required,decimal=6"`
	UnitPrice   string `json:"unitPrice" binding:"required,decimal=6"`
	TaxRate     string `json:"taxRate" binding:"omitempty,decimal=4"`
	AccountID   string `json:"accountID"`
	TaxCode     string `json:"taxCode"`
}

// SaveDocumentRequest creates or edits a document.
type SaveDocumentRequest struct {
	DocumentType domain.DocumentType   `json:"documentType" binding:"required,oneof=CUSTOMER_INVOICE SUPPLIER_INVOICE"`
	Number       string                `json:"number" binding:"required,max=64"`
	PartyRef     string                `json:"partyRef" binding:"max=128"`
	CurrencyCode string                `json:"currencyCode" binding:"required,len=3,alpha"`
	DocumentDate string                `json:"documentDate" binding:"required,isodate"`
	Lines        []DocumentLineRequest `json:"lines" binding:"dive"`
}

// ToDomain builds the proposed document. Binding has already checked every
// decimal and date, so parse errors cannot occur here.
func (r SaveDocumentRequest) ToDomain(documentID string) domain.SourceDocument {
	date, _ := parseDate(r.DocumentDate)
	doc := domain.SourceDocument{
		DocumentID:   documentID,
		DocumentType: r.DocumentType,
		Number:       r.Number,
		PartyRef:     r.PartyRef,
		CurrencyCode: strings.ToUpper(r.CurrencyCode),
		DocumentDate: date,
		Lines:        make([]domain.DocumentLine, len(r.Lines)),
	}
	for i, l := range r.Lines {
		doc.Lines[i] = domain.DocumentLine{
			LineID:      l.LineID,
			Description: l.Description,
			Quantity:    decimalOrZero(l.Quantity),
			UnitPrice:   decimalOrZero(l.UnitPrice),
			TaxRate:     decimalOrZero(l.TaxRate),
			AccountID:   l.AccountID,
			TaxCode:     l.TaxCode,
		}
	}
	return doc
}

// DocumentLineResponse mirrors domain.DocumentLine.
type DocumentLineResponse struct {
	LineID      string          `json:"lineID"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice   decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	TaxRate     decimal.Decimal `json:"taxRate" swaggertype:"string"`
	Net         decimal.Decimal `json:"net" swaggertype:"string"`
	Tax         decimal.Decimal `json:"tax" swaggertype:"string"`
	AccountID   string          `json:"accountID,omitempty"`
	TaxCode     string          `json:"taxCode,omitempty"`
}

// DocumentResponse defines the data returned for a source document.
type DocumentResponse struct {
	DocumentID        string                  `json:"documentID"`
	DocumentType      domain.DocumentType     `json:"documentType"`
	Number            string                  `json:"number"`
	PartyRef          string                  `json:"partyRef"`
	CurrencyCode      string                  `json:"currencyCode"`
	DocumentDate      string                  `json:"documentDate"`
	Status            domain.DocumentStatus   `json:"status"`
	Subtotal          decimal.Decimal         `json:"subtotal" swaggertype:"string"`
	TaxTotal          decimal.Decimal         `json:"taxTotal" swaggertype:"string"`
	Total             decimal.Decimal         `json:"total" swaggertype:"string"`
	JournalEntryID    *string                 `json:"journalEntryID,omitempty"`
	PostedAt          *time.Time              `json:"postedAt,omitempty"`
	ExchangeRate      *decimal.Decimal        `json:"exchangeRate,omitempty" swaggertype:"string"`
	BaseCurrencyTotal *decimal.Decimal        `json:"baseCurrencyTotal,omitempty" swaggertype:"string"`
	ReversalOfID      *string                 `json:"reversalOfID,omitempty"`
	ReversedByID      *string                 `json:"reversedByID,omitempty"`
	AmountPaid        decimal.Decimal         `json:"amountPaid" swaggertype:"string"`
	BaseAmountSettled decimal.Decimal         `json:"baseAmountSettled" swaggertype:"string"`
	SettlementStatus  domain.SettlementStatus `json:"settlementStatus"`
	Lines             []DocumentLineResponse  `json:"lines"`
	CreatedAt         time.Time               `json:"createdAt"`
	CreatedBy         string                  `json:"createdBy"`
	LastUpdatedAt     time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy     string                  `json:"lastUpdatedBy"`
}

// ToDocumentResponse converts a domain.SourceDocument to DocumentResponse DTO
func ToDocumentResponse(d *domain.SourceDocument) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:        d.DocumentID,
		DocumentType:      d.DocumentType,
		Number:            d.Number,
		PartyRef:          d.PartyRef,
		CurrencyCode:      d.CurrencyCode,
		DocumentDate:      formatDate(d.DocumentDate),
		Status:            d.Status,
		Subtotal:          d.Subtotal,
		TaxTotal:          d.TaxTotal,
		Total:             d.Total,
		JournalEntryID:    d.JournalEntryID,
		PostedAt:          d.PostedAt,
		ExchangeRate:      d.ExchangeRate,
		BaseCurrencyTotal: d.BaseCurrencyTotal,
		ReversalOfID:      d.ReversalOfID,
		ReversedByID:      d.ReversedByID,
		AmountPaid:        d.AmountPaid,
		BaseAmountSettled: d.BaseAmountSettled,
		SettlementStatus:  d.SettlementStatus,
		Lines:             make([]DocumentLineResponse, len(d.Lines)),
		CreatedAt:         d.CreatedAt,
		CreatedBy:         d.CreatedBy,
		LastUpdatedAt:     d.LastUpdatedAt,
		LastUpdatedBy:     d.LastUpdatedBy,
	}
	for i, l := range d.Lines {
		resp.Lines[i] = DocumentLineResponse{
			LineID:      l.LineID,
			Position:    l.Position,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
			Net:         l.Net(),
			Tax:         l.Tax(),
			AccountID:   l.AccountID,
			TaxCode:     l.TaxCode,
		}
	}
	return resp
}
