package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type ReversalServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	ledger *testLedger
}

func (s *ReversalServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = newTestLedger(s.T())
}

func TestReversalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReversalServiceTestSuite))
}

func (s *ReversalServiceTestSuite) TestReverseDocument_MirrorsDocumentAndEntry() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-001", "USD", "2024-03-15",
		invoiceLine("1", "1000", "5"))

	rev, err := s.ledger.reversal.ReverseDocument(s.ctx, invoice.DocumentID, testUser)
	s.Require().NoError(err)
	s.True(rev.Created)

	s.Equal(domain.DocumentReversed, rev.Original.Status)
	s.Equal(rev.Reversal.DocumentID, *rev.Original.ReversedByID)

	mirror := rev.Reversal
	s.Equal("INV-001-REV", mirror.Number)
	s.Equal(domain.DocumentPosted, mirror.Status)
	s.Equal(invoice.DocumentID, *mirror.ReversalOfID)
	s.Equal("-1050.00", mirror.Total.StringFixed(2))
	s.Equal("-3856.13", mirror.BaseCurrencyTotal.StringFixed(2))
	s.Equal("3.6725", mirror.ExchangeRate.String())
	s.True(mirror.DocumentDate.Equal(day("2024-12-31")))
	s.Equal(rev.ReversalJournal.JournalID, *mirror.JournalEntryID)

	entry := rev.ReversalJournal
	s.True(entry.Posted)
	s.Equal(*invoice.JournalEntryID, *entry.ReversalOfID)
	s.True(entry.EntryDate.Equal(day("2024-12-31")))
	s.Equal(map[string]string{
		accountID("1100"): "-3856.13",
		accountID("4000"): "3672.50",
		accountID("2200"): "183.63",
	}, linesByAccount(entry))

	// The original entry is untouched.
	original, err := s.ledger.journals.GetJournal(s.ctx, *invoice.JournalEntryID)
	s.Require().NoError(err)
	s.Equal("3856.13", linesByAccount(original)[accountID("1100")])
}

func (s *ReversalServiceTestSuite) TestReverseDocument_IsIdempotent() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-002", "AED", "2024-05-01",
		invoiceLine("1", "100", "5"))

	first, err := s.ledger.reversal.ReverseDocument(s.ctx, invoice.DocumentID, testUser)
	s.Require().NoError(err)
	second, err := s.ledger.reversal.ReverseDocument(s.ctx, invoice.DocumentID, testUser)
	s.Require().NoError(err)

	s.False(second.Created)
	s.Equal(first.Reversal.DocumentID, second.Reversal.DocumentID)
	s.Equal(first.ReversalJournal.JournalID, second.ReversalJournal.JournalID)
}

func (s *ReversalServiceTestSuite) TestReverseDocument_Rejections() {
	draft := s.ledger.draftInvoice(s.T(), domain.CustomerInvoice, "INV-D", "AED", "2024-05-01",
		invoiceLine("1", "100", "5"))
	_, err := s.ledger.reversal.ReverseDocument(s.ctx, draft.DocumentID, testUser)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-R", "AED", "2024-05-01",
		invoiceLine("1", "100", "5"))
	rev, err := s.ledger.reversal.ReverseDocument(s.ctx, invoice.DocumentID, testUser)
	s.Require().NoError(err)
	_, err = s.ledger.reversal.ReverseDocument(s.ctx, rev.Reversal.DocumentID, testUser)
	s.ErrorIs(err, apperrors.ErrValidation)

	paid := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-PAID", "AED", "2024-05-01",
		invoiceLine("1", "100", "5"))
	pay := s.ledger.draftPayment(s.T(), paid.DocumentID, "50", "AED", "2024-05-02")
	_, err = s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)
	_, err = s.ledger.reversal.ReverseDocument(s.ctx, paid.DocumentID, testUser)
	var ise *apperrors.InvalidStateError
	s.Require().ErrorAs(err, &ise)
	s.Equal(string(domain.PartiallyPaid), ise.Current)

	_, err = s.ledger.reversal.ReverseDocument(s.ctx, "missing", testUser)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReversalServiceTestSuite) TestReversePayment_RestoresInvoiceBalance() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-EUR", "EUR", "2024-04-01",
		invoiceLine("1", "1000", "0"))
	pay := s.ledger.draftPayment(s.T(), invoice.DocumentID, "400", "EUR", "2024-04-20")
	posted, err := s.ledger.posting.PostPayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)

	rev, err := s.ledger.reversal.ReversePayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)
	s.True(rev.Created)
	s.Equal(domain.PaymentReversed, rev.Payment.Status)
	s.Equal(rev.ReversalJournal.JournalID, *rev.Payment.ReversedByID)
	s.Equal(posted.Entry.JournalID, *rev.ReversalJournal.ReversalOfID)
	s.Equal(map[string]string{
		accountID("1000"): "-1440.00",
		accountID("1100"): "1468.00",
		accountID("5900"): "-28.00",
	}, linesByAccount(rev.ReversalJournal))

	s.Equal(domain.Unpaid, rev.Invoice.SettlementStatus)
	s.True(rev.Invoice.AmountPaid.IsZero())
	s.True(rev.Invoice.BaseAmountSettled.IsZero())

	again, err := s.ledger.reversal.ReversePayment(s.ctx, pay.PaymentID, testUser)
	s.Require().NoError(err)
	s.False(again.Created)
	s.Equal(rev.ReversalJournal.JournalID, again.ReversalJournal.JournalID)

	// With the payment gone the invoice itself can be reversed.
	_, err = s.ledger.reversal.ReverseDocument(s.ctx, invoice.DocumentID, testUser)
	s.NoError(err)
}

func (s *ReversalServiceTestSuite) TestReversePayment_DraftFails() {
	invoice := s.ledger.postedInvoice(s.T(), domain.CustomerInvoice, "INV-X", "AED", "2024-05-01",
		invoiceLine("1", "100", "5"))
	pay := s.ledger.draftPayment(s.T(), invoice.DocumentID, "50", "AED", "2024-05-02")

	_, err := s.ledger.reversal.ReversePayment(s.ctx, pay.PaymentID, testUser)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}
