package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PostingServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	ledger *testLedger
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = newTestLedger(s.T())
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}

func (s *PostingServiceTestSuite) TestPostInvoice_ForeignCurrencyCustomerInvoice() {
	doc := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-001", "USD", "2024-03-15",
		invoiceLine("1", "1000", "5"))

	res, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().NoError(err)
	s.True(res.Created)

	entry := res.Entry
	s.True(entry.Posted)
	s.Equal("AED", entry.CurrencyCode)
	s.Equal(domain.SourceCustomerInvoice, entry.SourceType)
	s.Equal(doc.DocumentID, entry.SourceID)
	s.True(entry.EntryDate.Equal(day("2024-03-15")))
	s.Equal(map[string]string{
		accountID("1100"): "3856.13",
		accountID("4000"): "-3672.50",
		accountID("2200"): "-183.63",
	}, linesByAccount(entry))
	s.Contains(entry.Memo, "USD→AED @ 3.6725")

	debits, credits := entry.Totals()
	s.True(debits.Equal(credits))

	posted := res.Document
	s.Equal(domain.DocumentPosted, posted.Status)
	s.Equal(entry.JournalID, *posted.JournalEntryID)
	s.Equal("3.6725", posted.ExchangeRate.String())
	s.Equal("3856.13", posted.BaseCurrencyTotal.StringFixed(2))
	s.Equal("1050.00", posted.Total.StringFixed(2))
	s.Equal(domain.Unpaid, posted.SettlementStatus)
	s.NotNil(posted.PostedAt)

	stored, err := s.ledger.documents.GetDocument(s.ctx, doc.DocumentID)
	s.Require().NoError(err)
	s.Equal(domain.DocumentPosted, stored.Status)
}

func (s *PostingServiceTestSuite) TestPostInvoice_BaseCurrencyUsesRateOne() {
	doc := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-002", "AED", "2024-05-01",
		invoiceLine("2", "250", "5"))

	res, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().NoError(err)

	s.Equal("1", res.Document.ExchangeRate.String())
	s.Equal("525.00", res.Document.BaseCurrencyTotal.StringFixed(2))
	s.Equal(map[string]string{
		accountID("1100"): "525.00",
		accountID("4000"): "-500.00",
		accountID("2200"): "-25.00",
	}, linesByAccount(res.Entry))
	s.Equal("INV-002", res.Entry.Memo)
}

func (s *PostingServiceTestSuite) TestPostInvoice_SupplierInvoice() {
	doc := s.ledger.draftInvoice(s.T(), domain.SupplierInvoice, "BILL-1", "AED", "2024-05-01",
		invoiceLine("1", "200", "5"))

	res, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().NoError(err)
	s.Equal(domain.SourceSupplierInvoice, res.Entry.SourceType)
	s.Equal(map[string]string{
		accountID("5000"): "200.00",
		accountID("1400"): "10.00",
		accountID("2100"): "-210.00",
	}, linesByAccount(res.Entry))
}

func (s *PostingServiceTestSuite) TestPostInvoice_FallsBackToEarlierRate() {
	doc := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-003", "USD", "2024-03-17",
		invoiceLine("1", "100", "0"))

	res, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().NoError(err)
	s.Equal("3.6725", res.Document.ExchangeRate.String())
	s.Equal("367.25", res.Document.BaseCurrencyTotal.StringFixed(2))
}

func (s *PostingServiceTestSuite) TestPostInvoice_IsIdempotent() {
	doc := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-004", "USD", "2024-03-15",
		invoiceLine("1", "1000", "5"))

	first, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().NoError(err)
	second, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().NoError(err)

	s.True(first.Created)
	s.False(second.Created)
	s.Equal(first.Entry.JournalID, second.Entry.JournalID)

	entries, _, err := s.ledger.journals.ListJournals(s.ctx, portsrepo.ListJournalsParams{
		SourceType: domain.SourceCustomerInvoice,
		SourceID:   doc.DocumentID,
	})
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *PostingServiceTestSuite) TestPostInvoice_ConcurrentCallsCreateOneEntry() {
	doc := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-005", "USD", "2024-03-15",
		invoiceLine("1", "1000", "5"))

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*domain.PostingResult, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < workers; i++ {
		s.Require().NoError(errs[i])
		if results[i].Created {
			created++
		}
		s.Equal(results[0].Entry.JournalID, results[i].Entry.JournalID)
	}
	s.Equal(1, created)
}

func (s *PostingServiceTestSuite) TestPostInvoice_MissingRateRollsBack() {
	doc := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-006", "GBP", "2024-03-15",
		invoiceLine("1", "100", "5"))

	_, err := s.ledger.posting.PostInvoice(s.ctx, doc.DocumentID, testUser)
	s.Require().Error(err)
	var rnf *apperrors.RateNotFoundError
	s.Require().ErrorAs(err, &rnf)
	s.Equal("GBP", rnf.From)
	s.Equal("AED", rnf.To)

	stored, err := s.ledger.documents.GetDocument(s.ctx, doc.DocumentID)
	s.Require().NoError(err)
	s.Equal(domain.DocumentDraft, stored.Status)
	s.Nil(stored.JournalEntryID)

	entries, _, err := s.ledger.journals.ListJournals(s.ctx, portsrepo.ListJournalsParams{})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *PostingServiceTestSuite) TestPostInvoice_Validation() {
	empty := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-007", "AED", "2024-05-01")
	_, err := s.ledger.posting.PostInvoice(s.ctx, empty.DocumentID, testUser)
	var ve *apperrors.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("lines", ve.Field)

	zero := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-008", "AED", "2024-05-01",
		invoiceLine("0", "100", "5"))
	_, err = s.ledger.posting.PostInvoice(s.ctx, zero.DocumentID, testUser)
	s.Require().ErrorAs(err, &ve)
	s.Equal("total", ve.Field)

	noTaxCode := invoiceLine("1", "100", "5")
	noTaxCode.TaxCode = ""
	untagged := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-009", "AED", "2024-05-01", noTaxCode)
	_, err = s.ledger.posting.PostInvoice(s.ctx, untagged.DocumentID, testUser)
	s.Require().ErrorAs(err, &ve)
	s.Equal("lines[0].taxCode", ve.Field)

	_, err = s.ledger.posting.PostInvoice(s.ctx, "missing", testUser)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PostingServiceTestSuite) TestPostPayment_RealizedLossOnReceivable() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-EUR", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))
	s.Equal("3670.00", invoice.BaseCurrencyTotal.StringFixed(2))

	pay := s.ledger.draftPayment(s.T(), invoice.DocumentID, "1000", "EUR", "2024-04-20")
	res, err := s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)
	s.True(res.Created)

	s.Equal(map[string]string{
		accountID("1000"): "3600.00",
		accountID("1100"): "-3670.00",
		accountID("5900"): "70.00",
	}, linesByAccount(res.Entry))
	s.Equal(domain.SourcePayment, res.Entry.SourceType)

	s.Equal(domain.PaymentPosted, res.Payment.Status)
	s.Equal("70.00", res.Payment.FXAmount.StringFixed(2))
	s.Equal(domain.RealizedLoss, *res.Payment.FXKind)
	s.Equal("3600.00", res.Payment.BaseAmount.StringFixed(2))

	s.Equal(domain.Paid, res.Invoice.SettlementStatus)
	s.True(res.Invoice.Outstanding().IsZero())
	s.True(res.Invoice.BaseOutstanding().IsZero())

	again, err := s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)
	s.False(again.Created)
	s.Equal(res.Entry.JournalID, again.Entry.JournalID)
}

func (s *PostingServiceTestSuite) TestPostPayment_PartialThenFinal() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-EUR-2", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))

	first := s.ledger.draftPayment(s.T(), invoice.DocumentID, "400", "EUR", "2024-04-20")
	res, err := s.ledger.posting.PostPayment(s.ctx, first.PaymentID, testUser)
	s.Require().NoError(err)
	s.Equal(map[string]string{
		accountID("1000"): "1440.00",
		accountID("1100"): "-1468.00",
		accountID("5900"): "28.00",
	}, linesByAccount(res.Entry))
	s.Equal(domain.PartiallyPaid, res.Invoice.SettlementStatus)
	s.Equal("600.00", res.Invoice.Outstanding().StringFixed(2))

	final := s.ledger.draftPayment(s.T(), invoice.DocumentID, "600", "EUR", "2024-04-20")
	res, err = s.ledger.posting.PostPayment(s.ctx, final.PaymentID, testUser)
	s.Require().NoError(err)
	s.Equal(map[string]string{
		accountID("1000"): "2160.00",
		accountID("1100"): "-2202.00",
		accountID("5900"): "42.00",
	}, linesByAccount(res.Entry))
	s.Equal(domain.Paid, res.Invoice.SettlementStatus)
	s.True(res.Invoice.BaseOutstanding().IsZero())
}

func (s *PostingServiceTestSuite) TestPostPayment_SupplierInvoiceGain() {
	bill := s.ledger.postedInvoice(s.T(), domain.SupplierInvoice, "BILL-EUR", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))

	pay := s.ledger.draftPayment(s.T(), bill.DocumentID, "1000", "EUR", "2024-04-20")
	res, err := s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)

	s.Equal(map[string]string{
		accountID("2100"): "3670.00",
		accountID("1000"): "-3600.00",
		accountID("4900"): "-70.00",
	}, linesByAccount(res.Entry))
	s.Equal(domain.RealizedGain, *res.Payment.FXKind)
}

func (s *PostingServiceTestSuite) TestPostPayment_SameRateHasNoFXLine() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-AED", "AED", "2024-05-01",
		invoiceLine("1", "500", "5"))

	pay := s.ledger.draftPayment(s.T(), invoice.DocumentID, "525", "AED", "2024-05-10")
	res, err := s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)
	s.Len(res.Entry.Lines, 2)
	s.Nil(res.Payment.FXAmount)
	s.Nil(res.Payment.FXKind)
}

func (s *PostingServiceTestSuite) TestPostPayment_Validation() {
	draft := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-D", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))
	pay := s.ledger.draftPayment(s.T(), draft.DocumentID, "100", "EUR", "2024-04-20")
	_, err := s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-P", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))

	over := s.ledger.draftPayment(s.T(), invoice.DocumentID, "1000.01", "EUR", "2024-04-20")
	_, err = s.ledger.posting.PostPayment(s.ctx, over.PaymentID, testUser)
	var ve *apperrors.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("amount", ve.Field)

	wrongCcy := s.ledger.draftPayment(s.T(), invoice.DocumentID, "100", "USD", "2024-04-20")
	_, err = s.ledger.posting.PostPayment(s.ctx, wrongCcy.PaymentID, testUser)
	s.Require().ErrorAs(err, &ve)
	s.Equal("currencyCode", ve.Field)

	stored, err := s.ledger.documents.GetDocument(s.ctx, invoice.DocumentID)
	s.Require().NoError(err)
	s.Equal(domain.Unpaid, stored.SettlementStatus)
}

func TestPostPayment_UnmappedFXRoleFailsAndRollsBack(t *testing.T) {
	roles := config.DefaultAccountRoles()
	roles.FXLoss = ""
	ledger := newTestLedgerWithRoles(t, roles)
	ctx := context.Background()

	invoice := ledger.postedInvoice(t, domain.CustomerInvoice, "INV-EUR", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))
	pay := ledger.draftPayment(t, invoice.DocumentID, "1000", "EUR", "2024-04-20")

	_, err := ledger.posting.PostPayment(ctx, pay.PaymentID, testUser)
	require.Error(t, err)
	var ce *apperrors.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, string(domain.RoleFXLoss), ce.Role)

	stored, err := ledger.repos.PaymentRepo.FindPaymentByID(ctx, pay.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentDraft, stored.Status)

	doc, err := ledger.documents.GetDocument(ctx, invoice.DocumentID)
	require.NoError(t, err)
	assert.True(t, doc.AmountPaid.IsZero())
}
