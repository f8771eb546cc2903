package domain_test

import (
	"testing"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDocumentStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.DocumentStatus
		want     bool
	}{
		{domain.DocumentDraft, domain.DocumentPosted, true},
		{domain.DocumentDraft, domain.DocumentReversed, false},
		{domain.DocumentPosted, domain.DocumentReversed, true},
		{domain.DocumentPosted, domain.DocumentDraft, false},
		{domain.DocumentReversed, domain.DocumentPosted, false},
		{domain.DocumentReversed, domain.DocumentDraft, false},
		{domain.DocumentPosted, domain.DocumentPosted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestSourceDocument_Totals(t *testing.T) {
	doc := domain.SourceDocument{
		Lines: []domain.DocumentLine{
			{Quantity: dec("2"), UnitPrice: dec("450.00"), TaxRate: dec("5")},
			{Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("5")},
		},
	}

	subtotal, tax, total := doc.ComputeTotals()
	assert.Equal(t, "1000.00", subtotal.StringFixed(2))
	assert.Equal(t, "50.00", tax.StringFixed(2))
	assert.Equal(t, "1050.00", total.StringFixed(2))

	doc.Subtotal = dec("1")
	doc.NormalizeTotals()
	assert.True(t, doc.Total.Equal(total))
}

func TestDocumentLine_RoundsHalfUp(t *testing.T) {
	line := domain.DocumentLine{Quantity: dec("3"), UnitPrice: dec("0.335"), TaxRate: dec("5")}
	assert.Equal(t, "1.01", line.Net().StringFixed(2))
	assert.Equal(t, "0.05", line.Tax().StringFixed(2))
}

func TestSourceDocument_ApplySettlement(t *testing.T) {
	base := dec("3670.00")
	doc := domain.SourceDocument{Total: dec("1000.00"), BaseCurrencyTotal: &base, SettlementStatus: domain.Unpaid}

	doc.ApplySettlement(dec("400.00"), dec("1468.00"))
	assert.Equal(t, domain.PartiallyPaid, doc.SettlementStatus)
	assert.Equal(t, "600.00", doc.Outstanding().StringFixed(2))
	assert.Equal(t, "2202.00", doc.BaseOutstanding().StringFixed(2))

	doc.ApplySettlement(dec("600.00"), dec("2202.00"))
	assert.Equal(t, domain.Paid, doc.SettlementStatus)
	assert.True(t, doc.BaseOutstanding().IsZero())

	doc.ApplySettlement(dec("-600.00"), dec("-2202.00"))
	assert.Equal(t, domain.PartiallyPaid, doc.SettlementStatus)
}

func TestSourceDocument_CloneIsDeep(t *testing.T) {
	rate := dec("3.6725")
	jid := "j-1"
	doc := &domain.SourceDocument{
		ExchangeRate:   &rate,
		JournalEntryID: &jid,
		Lines:          []domain.DocumentLine{{Quantity: decimal.NewFromInt(1)}},
	}

	c := doc.Clone()
	c.Lines[0].Quantity = decimal.NewFromInt(5)
	*c.ExchangeRate = dec("1")
	*c.JournalEntryID = "other"

	assert.Equal(t, "1", doc.Lines[0].Quantity.String())
	assert.Equal(t, "3.6725", doc.ExchangeRate.String())
	assert.Equal(t, "j-1", *doc.JournalEntryID)
}

func TestFXKind_Opposite(t *testing.T) {
	assert.Equal(t, domain.RealizedLoss, domain.RealizedGain.Opposite())
	assert.Equal(t, domain.RealizedGain, domain.RealizedLoss.Opposite())
}

func TestMoney_RoundAmount(t *testing.T) {
	assert.Equal(t, "3856.13", domain.RoundAmount(dec("1050").Mul(dec("3.6725"))).StringFixed(2))
	assert.Equal(t, "0.01", domain.RoundAmount(dec("0.005")).StringFixed(2))
	assert.Equal(t, "-0.01", domain.RoundAmount(dec("-0.005")).StringFixed(2))
	assert.Equal(t, "11250.00", domain.Percent(dec("125000"), dec("9")).StringFixed(2))
}
