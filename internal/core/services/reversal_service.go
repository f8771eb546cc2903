package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReversalService undoes posted documents and payments by adding mirror
// entries. Nothing that was posted is ever modified beyond its status and
// reversal back-reference.
type ReversalService struct {
	BaseService
	uow  portsrepo.UnitOfWork
	gate *ImmutabilityValidator
}

var _ portssvc.ReversalSvcFacade = (*ReversalService)(nil)

// NewReversalService creates a new ReversalService.
func NewReversalService(uow portsrepo.UnitOfWork, gate *ImmutabilityValidator) *ReversalService {
	return &ReversalService{
		BaseService: newBaseService(),
		uow:         uow,
		gate:        gate,
	}
}

// ReverseEntry posts the mirror of entry, dated today, through journals.
func (s *ReversalService) ReverseEntry(ctx context.Context, journals portsrepo.JournalWriter, entry *domain.JournalEntry, memo, userID string) (*domain.JournalEntry, error) {
	now := s.Now()
	rev := entry.Mirror(s.Today(), memo, userID, now)
	if err := rev.Post(now); err != nil {
		s.LogError(ctx, err, "Reversal entry failed balance check", slog.String("journal_id", entry.JournalID))
		return nil, err
	}
	if err := journals.SaveJournalEntry(ctx, *rev); err != nil {
		return nil, fmt.Errorf("saving reversal of journal %s: %w", entry.JournalID, err)
	}
	return rev, nil
}

// ReverseDocument reverses a posted invoice. It creates a mirror document with
// negated quantities and a journal entry with every line's sides swapped, then
// marks the original REVERSED. Reversing twice returns the first reversal.
func (s *ReversalService) ReverseDocument(ctx context.Context, documentID, userID string) (*domain.DocumentReversal, error) {
	var result *domain.DocumentReversal
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		original, err := repos.Documents.FindDocumentForUpdate(ctx, documentID)
		if err != nil {
			return err
		}

		if original.ReversedByID != nil {
			mirror, err := repos.Documents.FindDocumentByID(ctx, *original.ReversedByID)
			if err != nil {
				return fmt.Errorf("loading reversal %s of document %s: %w", *original.ReversedByID, documentID, err)
			}
			var journal *domain.JournalEntry
			if mirror.JournalEntryID != nil {
				if journal, err = repos.Journals.FindJournalByID(ctx, *mirror.JournalEntryID); err != nil {
					return err
				}
			}
			result = &domain.DocumentReversal{Original: original, Reversal: mirror, ReversalJournal: journal, Created: false}
			return nil
		}

		if original.Status != domain.DocumentPosted || original.JournalEntryID == nil {
			return &apperrors.InvalidStateError{Entity: "document", ID: documentID, Current: string(original.Status), Wanted: string(domain.DocumentPosted)}
		}
		if original.ReversalOfID != nil {
			return apperrors.NewValidationError("documentID", "a reversal document cannot itself be reversed")
		}
		if original.HasSettlements() {
			return &apperrors.InvalidStateError{Entity: "document", ID: documentID, Current: string(original.SettlementStatus), Wanted: string(domain.Unpaid)}
		}

		entry, err := repos.Journals.FindJournalByID(ctx, *original.JournalEntryID)
		if err != nil {
			return fmt.Errorf("loading journal %s of document %s: %w", *original.JournalEntryID, documentID, err)
		}
		revEntry, err := s.ReverseEntry(ctx, repos.Journals, entry, "Reversal of "+original.Number, userID)
		if err != nil {
			return err
		}

		mirror := s.mirrorDocument(original, revEntry, userID)
		if err := s.gate.Write(ctx, repos.Documents, nil, mirror); err != nil {
			return err
		}

		reversed := original.Clone()
		reversed.Status = domain.DocumentReversed
		reversed.ReversedByID = &mirror.DocumentID
		reversed.Touch(userID, s.Now())
		if err := s.gate.Write(ctx, repos.Documents, original, reversed); err != nil {
			return err
		}

		result = &domain.DocumentReversal{Original: reversed, Reversal: mirror, ReversalJournal: revEntry, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		s.LogInfo(ctx, "Document reversed",
			slog.String("document_id", documentID),
			slog.String("reversal_id", result.Reversal.DocumentID),
			slog.String("journal_id", result.ReversalJournal.JournalID))
	}
	return result, nil
}

// mirrorDocument builds the negated copy of original, already POSTED against rev.
func (s *ReversalService) mirrorDocument(original *domain.SourceDocument, rev *domain.JournalEntry, userID string) *domain.SourceDocument {
	now := s.Now()
	mirror := original.Clone()
	mirror.DocumentID = uuid.NewString()
	mirror.Number = original.Number + "-REV"
	mirror.DocumentDate = s.Today()
	mirror.Status = domain.DocumentPosted
	mirror.JournalEntryID = &rev.JournalID
	mirror.PostedAt = &now
	mirror.ReversalOfID = &original.DocumentID
	mirror.ReversedByID = nil
	mirror.AmountPaid = decimal.Zero
	mirror.BaseAmountSettled = decimal.Zero
	mirror.SettlementStatus = domain.Unpaid
	if original.BaseCurrencyTotal != nil {
		negated := original.BaseCurrencyTotal.Neg()
		mirror.BaseCurrencyTotal = &negated
	}
	for i := range mirror.Lines {
		mirror.Lines[i].LineID = uuid.NewString()
		mirror.Lines[i].DocumentID = mirror.DocumentID
		mirror.Lines[i].Quantity = mirror.Lines[i].Quantity.Neg()
	}
	mirror.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	return mirror
}

// ReversePayment reverses a posted payment's entry and gives the settled
// amounts back to its invoice.
func (s *ReversalService) ReversePayment(ctx context.Context, paymentID, userID string) (*domain.PaymentReversal, error) {
	var result *domain.PaymentReversal
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		pay, err := repos.Payments.FindPaymentForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}

		if pay.ReversedByID != nil {
			journal, err := repos.Journals.FindJournalByID(ctx, *pay.ReversedByID)
			if err != nil {
				return fmt.Errorf("loading reversal journal of payment %s: %w", paymentID, err)
			}
			invoice, err := repos.Documents.FindDocumentByID(ctx, pay.InvoiceID)
			if err != nil {
				return err
			}
			result = &domain.PaymentReversal{Payment: pay, Invoice: invoice, ReversalJournal: journal, Created: false}
			return nil
		}
		if pay.Status != domain.PaymentPosted || pay.JournalEntryID == nil {
			return &apperrors.InvalidStateError{Entity: "payment", ID: paymentID, Current: string(pay.Status), Wanted: string(domain.PaymentPosted)}
		}

		invoice, err := repos.Documents.FindDocumentForUpdate(ctx, pay.InvoiceID)
		if err != nil {
			return err
		}
		entry, err := repos.Journals.FindJournalByID(ctx, *pay.JournalEntryID)
		if err != nil {
			return fmt.Errorf("loading journal of payment %s: %w", paymentID, err)
		}
		revEntry, err := s.ReverseEntry(ctx, repos.Journals, entry, "Reversal of payment "+paymentLabel(pay), userID)
		if err != nil {
			return err
		}

		now := s.Now()
		pay.Status = domain.PaymentReversed
		pay.ReversedByID = &revEntry.JournalID
		pay.Touch(userID, now)
		if err := repos.Payments.UpdatePayment(ctx, *pay); err != nil {
			return fmt.Errorf("updating payment %s: %w", paymentID, err)
		}

		cleared := decimal.Zero
		if pay.ClearedBaseAmount != nil {
			cleared = *pay.ClearedBaseAmount
		}
		restored := invoice.Clone()
		restored.ApplySettlement(pay.Amount.Neg(), cleared.Neg())
		restored.Touch(userID, now)
		if err := s.gate.Write(ctx, repos.Documents, invoice, restored); err != nil {
			return err
		}

		result = &domain.PaymentReversal{Payment: pay, Invoice: restored, ReversalJournal: revEntry, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		s.LogInfo(ctx, "Payment reversed",
			slog.String("payment_id", paymentID),
			slog.String("journal_id", result.ReversalJournal.JournalID),
			slog.String("settlement_status", string(result.Invoice.SettlementStatus)))
	}
	return result, nil
}
