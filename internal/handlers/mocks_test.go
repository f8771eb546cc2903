package handlers_test

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostInvoice(ctx context.Context, documentID, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) PostPayment(ctx context.Context, paymentID, userID string) (*domain.PaymentPostingResult, error) {
	args := m.Called(ctx, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentPostingResult), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock ReversalService ---
type MockReversalService struct {
	mock.Mock
}

func (m *MockReversalService) ReverseDocument(ctx context.Context, documentID, userID string) (*domain.DocumentReversal, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentReversal), args.Error(1)
}

func (m *MockReversalService) ReversePayment(ctx context.Context, paymentID, userID string) (*domain.PaymentReversal, error) {
	args := m.Called(ctx, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReversal), args.Error(1)
}

var _ portssvc.ReversalSvcFacade = (*MockReversalService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetDocument(ctx context.Context, documentID string) (*domain.SourceDocument, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceDocument), args.Error(1)
}

func (m *MockDocumentService) SaveDocument(ctx context.Context, proposed domain.SourceDocument, userID string) (*domain.SourceDocument, error) {
	args := m.Called(ctx, proposed, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceDocument), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, params portsrepo.ListJournalsParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, params)
	var next *string
	if n, ok := args.Get(1).(*string); ok {
		next = n
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock TaxAccrualService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) Accrue(ctx context.Context, req portssvc.AccrueTaxRequest, userID string) (*domain.TaxAccrual, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxAccrual), args.Error(1)
}

func (m *MockTaxService) FileReturn(ctx context.Context, filingID, userID string) (*domain.CorporateTaxFiling, error) {
	args := m.Called(ctx, filingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CorporateTaxFiling), args.Error(1)
}

func (m *MockTaxService) ReverseFiling(ctx context.Context, filingID string, override bool, userID string) (*domain.CorporateTaxFiling, error) {
	args := m.Called(ctx, filingID, override, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CorporateTaxFiling), args.Error(1)
}

var _ portssvc.TaxAccrualSvcFacade = (*MockTaxService)(nil)
