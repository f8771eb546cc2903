package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/adapters/database/memory"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/core/services"
	"github.com/SscSPs/gl_posting_engine/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

var testNow = time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func accountID(code string) string {
	return "acc-" + code
}

var testChart = []struct {
	code string
	name string
	typ  domain.AccountType
}{
	{"1000", "Bank", domain.Asset},
	{"1100", "Accounts Receivable", domain.Asset},
	{"1400", "VAT Input", domain.Asset},
	{"2100", "Accounts Payable", domain.Liability},
	{"2200", "VAT Output", domain.Liability},
	{"2300", "Corporate Tax Payable", domain.Liability},
	{"4000", "Revenue", domain.Income},
	{"4900", "Realized FX Gain", domain.Income},
	{"5000", "Operating Expenses", domain.Expense},
	{"5800", "Corporate Tax Expense", domain.Expense},
	{"5900", "Realized FX Loss", domain.Expense},
}

// testLedger wires the real services over a memory store with a fixed clock.
type testLedger struct {
	store     *memory.Store
	repos     portsrepo.RepositoryProvider
	registry  *services.AccountRegistry
	posting   *services.PostingService
	reversal  *services.ReversalService
	tax       *services.TaxAccrualService
	documents *services.DocumentService
	journals  *services.JournalService
}

func newTestLedger(t *testing.T) *testLedger {
	return newTestLedgerWithRoles(t, config.DefaultAccountRoles())
}

func newTestLedgerWithRoles(t *testing.T, roles config.AccountRoles) *testLedger {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Provider()

	for _, a := range testChart {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
			AccountID:   accountID(a.code),
			Code:        a.code,
			Name:        a.name,
			AccountType: a.typ,
			IsActive:    true,
		}))
	}
	require.NoError(t, repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "AED", Name: "UAE Dirham", IsBase: true}))
	require.NoError(t, repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "USD", Name: "US Dollar"}))
	require.NoError(t, repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "EUR", Name: "Euro"}))
	require.NoError(t, repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "GBP", Name: "Pound Sterling"}))

	seedRate(t, repos, "USD", "AED", "2024-03-15", "3.6725")
	seedRate(t, repos, "EUR", "AED", "2024-04-01", "3.67")
	seedRate(t, repos, "EUR", "AED", "2024-04-20", "3.60")

	registry, err := services.NewAccountRegistry(ctx, repos.AccountRepo, roles.Codes())
	require.NoError(t, err)

	conversion := services.NewCurrencyConversionService(repos.ExchangeRateRepo, repos.CurrencyRepo)
	gate := services.NewImmutabilityValidator()
	fx := services.NewFXGainLossCalculator(registry)

	l := &testLedger{
		store:     store,
		repos:     repos,
		registry:  registry,
		posting:   services.NewPostingService(store, registry, conversion, fx, gate),
		reversal:  services.NewReversalService(store, gate),
		documents: services.NewDocumentService(repos.DocumentRepo, store, gate),
		journals:  services.NewJournalService(repos.JournalRepo),
	}
	l.tax = services.NewTaxAccrualService(store, registry, conversion, l.reversal)

	clock := func() time.Time { return testNow }
	l.posting.WithNow(clock)
	l.reversal.WithNow(clock)
	l.tax.WithNow(clock)
	l.documents.WithNow(clock)
	return l
}

func seedRate(t *testing.T, repos portsrepo.RepositoryProvider, from, to, date, rate string) {
	t.Helper()
	require.NoError(t, repos.ExchangeRateRepo.SaveExchangeRate(context.Background(), domain.ExchangeRate{
		ExchangeRateID:   from + to + date,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		EffectiveDate:    day(date),
		RateType:         domain.RateTypeSpot,
		Rate:             dec(rate),
	}))
}

func invoiceLine(qty, price, taxRate string) domain.DocumentLine {
	code := "STD"
	if decimal.RequireFromString(taxRate).IsZero() {
		code = "ZERO"
	}
	return domain.DocumentLine{
		Description: "Consulting",
		Quantity:    dec(qty),
		UnitPrice:   dec(price),
		TaxRate:     dec(taxRate),
		AccountID:   accountID("4000"),
		TaxCode:     code,
	}
}

// draftInvoice stores a DRAFT document through the document service.
func (l *testLedger) draftInvoice(t *testing.T, docType domain.DocumentType, number, ccy, date string, lines ...domain.DocumentLine) *domain.SourceDocument {
	t.Helper()
	doc, err := l.documents.SaveDocument(context.Background(), domain.SourceDocument{
		DocumentType: docType,
		Number:       number,
		PartyRef:     "ACME",
		CurrencyCode: ccy,
		DocumentDate: day(date),
		Lines:        lines,
	}, testUser)
	require.NoError(t, err)
	return doc
}

func (l *testLedger) postedInvoice(t *testing.T, docType domain.DocumentType, number, ccy, date string, lines ...domain.DocumentLine) *domain.SourceDocument {
	t.Helper()
	doc := l.draftInvoice(t, docType, number, ccy, date, lines...)
	res, err := l.posting.PostInvoice(context.Background(), doc.DocumentID, testUser)
	require.NoError(t, err)
	return res.Document
}

func (l *testLedger) draftPayment(t *testing.T, invoiceID, amount, ccy, date string) *domain.Payment {
	t.Helper()
	p := domain.Payment{
		PaymentID:    "pay-" + invoiceID + "-" + amount + "-" + date,
		InvoiceID:    invoiceID,
		Amount:       dec(amount),
		CurrencyCode: ccy,
		PaymentDate:  day(date),
		Reference:    "TRF-" + amount,
		Status:       domain.PaymentDraft,
	}
	require.NoError(t, l.repos.PaymentRepo.SavePayment(context.Background(), p))
	return &p
}

// linesByAccount flattens an entry into account -> signed amount (debit positive).
func linesByAccount(entry *domain.JournalEntry) map[string]string {
	out := map[string]string{}
	for _, l := range entry.Lines {
		out[l.AccountID] = l.Debit.Sub(l.Credit).StringFixed(domain.AmountScale)
	}
	return out
}
