package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentService is the external read and write path for source documents.
type DocumentService struct {
	BaseService
	documentRepo portsrepo.DocumentReader
	uow          portsrepo.UnitOfWork
	gate         *ImmutabilityValidator
}

var _ portssvc.DocumentSvcFacade = (*DocumentService)(nil)

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo portsrepo.DocumentReader, uow portsrepo.UnitOfWork, gate *ImmutabilityValidator) *DocumentService {
	return &DocumentService{
		BaseService:  newBaseService(),
		documentRepo: documentRepo,
		uow:          uow,
		gate:         gate,
	}
}

// GetDocument retrieves a document with its lines.
func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (*domain.SourceDocument, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	return doc, nil
}

// SaveDocument creates a DRAFT document, or applies proposed onto the persisted
// one. Status never changes here; posting and reversal have their own paths.
// Once posted only a no-op save passes the gate.
func (s *DocumentService) SaveDocument(ctx context.Context, proposed domain.SourceDocument, userID string) (*domain.SourceDocument, error) {
	var saved *domain.SourceDocument
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var persisted *domain.SourceDocument
		if proposed.DocumentID != "" {
			p, err := repos.Documents.FindDocumentForUpdate(ctx, proposed.DocumentID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			persisted = p
		}

		now := s.Now()
		if persisted == nil {
			doc, err := s.newDraft(proposed, userID)
			if err != nil {
				return err
			}
			if err := s.gate.Write(ctx, repos.Documents, nil, doc); err != nil {
				return err
			}
			saved = doc
			return nil
		}

		if proposed.Status != "" && proposed.Status != persisted.Status {
			return apperrors.NewValidationError("status", "status changes go through the posting and reversal operations")
		}
		next := persisted.Clone()
		next.DocumentType = proposed.DocumentType
		next.Number = proposed.Number
		next.PartyRef = proposed.PartyRef
		next.CurrencyCode = strings.ToUpper(proposed.CurrencyCode)
		next.DocumentDate = proposed.DocumentDate
		next.Lines = s.mergeLines(persisted.DocumentID, proposed.Lines)
		if next.Status == domain.DocumentDraft {
			next.NormalizeTotals()
		}
		next.Touch(userID, now)
		if err := s.gate.Write(ctx, repos.Documents, persisted, next); err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Document saved", slog.String("document_id", saved.DocumentID), slog.String("status", string(saved.Status)))
	return saved, nil
}

func (s *DocumentService) newDraft(proposed domain.SourceDocument, userID string) (*domain.SourceDocument, error) {
	if proposed.Status != "" && proposed.Status != domain.DocumentDraft {
		return nil, apperrors.NewValidationError("status", "new documents start as DRAFT")
	}
	if proposed.DocumentType != domain.CustomerInvoice && proposed.DocumentType != domain.SupplierInvoice {
		return nil, apperrors.NewValidationError("documentType", fmt.Sprintf("unsupported document type %q", proposed.DocumentType))
	}
	if strings.TrimSpace(proposed.CurrencyCode) == "" {
		return nil, apperrors.NewValidationError("currencyCode", "currency is required")
	}

	now := s.Now()
	doc := proposed.Clone()
	if doc.DocumentID == "" {
		doc.DocumentID = uuid.NewString()
	}
	doc.CurrencyCode = strings.ToUpper(doc.CurrencyCode)
	doc.Status = domain.DocumentDraft
	doc.JournalEntryID = nil
	doc.PostedAt = nil
	doc.ExchangeRate = nil
	doc.BaseCurrencyTotal = nil
	doc.ReversalOfID = nil
	doc.ReversedByID = nil
	doc.AmountPaid = decimal.Zero
	doc.BaseAmountSettled = decimal.Zero
	doc.SettlementStatus = domain.Unpaid
	doc.Lines = s.mergeLines(doc.DocumentID, proposed.Lines)
	doc.NormalizeTotals()
	doc.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	return doc, nil
}

// mergeLines binds lines to the document, numbering positions in order and
// assigning IDs to new lines. Existing line IDs are kept so the gate can
// match them against the persisted lines.
func (s *DocumentService) mergeLines(documentID string, lines []domain.DocumentLine) []domain.DocumentLine {
	out := make([]domain.DocumentLine, len(lines))
	for i, l := range lines {
		if l.LineID == "" {
			l.LineID = uuid.NewString()
		}
		l.DocumentID = documentID
		l.Position = i + 1
		out[i] = l
	}
	return out
}
