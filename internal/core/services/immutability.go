package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ImmutabilityValidator is the gate every source document write passes
// through, inside the transaction that performs the write.
//
// Once a document has left DRAFT only these may change: status (along the
// lifecycle), the reversal back-reference, the settlement fields, postedAt
// and the last-updated audit pair.
type ImmutabilityValidator struct{}

// NewImmutabilityValidator creates a new ImmutabilityValidator.
func NewImmutabilityValidator() *ImmutabilityValidator {
	return &ImmutabilityValidator{}
}

// CheckDocumentWrite validates proposed against persisted (nil for an insert).
// On a DRAFT to POSTED transition it also normalizes proposed's header totals.
func (v *ImmutabilityValidator) CheckDocumentWrite(persisted, proposed *domain.SourceDocument) error {
	from := domain.DocumentDraft
	if persisted != nil {
		from = persisted.Status
	}
	if !from.CanTransition(proposed.Status) {
		return &apperrors.InvalidStateError{
			Entity:  "document",
			ID:      proposed.DocumentID,
			Current: string(from),
			Wanted:  string(predecessorOf(proposed.Status)),
		}
	}

	if persisted != nil && persisted.Status != domain.DocumentDraft {
		if fields := protectedFieldChanges(persisted, proposed); len(fields) > 0 {
			return &apperrors.ImmutableDocumentError{DocumentID: persisted.DocumentID, Fields: fields}
		}
		return nil
	}

	if proposed.Status == domain.DocumentPosted {
		if err := validateForPosting(proposed); err != nil {
			return err
		}
		proposed.NormalizeTotals()
	}
	return nil
}

// Write gates proposed and persists it with an insert or an update.
func (v *ImmutabilityValidator) Write(ctx context.Context, repo portsrepo.DocumentWriter, persisted, proposed *domain.SourceDocument) error {
	if err := v.CheckDocumentWrite(persisted, proposed); err != nil {
		return err
	}
	if persisted == nil {
		return repo.SaveDocument(ctx, *proposed)
	}
	return repo.UpdateDocument(ctx, *proposed)
}

func predecessorOf(s domain.DocumentStatus) domain.DocumentStatus {
	if s == domain.DocumentReversed {
		return domain.DocumentPosted
	}
	return domain.DocumentDraft
}

func validateForPosting(doc *domain.SourceDocument) error {
	if len(doc.Lines) == 0 {
		return apperrors.NewValidationError("lines", "document has no line items")
	}
	for i, l := range doc.Lines {
		if l.AccountID == "" {
			return apperrors.NewValidationError(fmt.Sprintf("lines[%d].accountID", i), "line has no account")
		}
		if l.TaxCode == "" {
			return apperrors.NewValidationError(fmt.Sprintf("lines[%d].taxCode", i), "line has no tax classification")
		}
	}
	if _, _, total := doc.ComputeTotals(); total.IsZero() {
		return apperrors.NewValidationError("total", "document gross total is zero")
	}
	return nil
}

// protectedFieldChanges lists the write-protected fields that differ.
func protectedFieldChanges(old, next *domain.SourceDocument) []string {
	var fields []string
	diff := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}

	diff("documentType", old.DocumentType != next.DocumentType)
	diff("number", old.Number != next.Number)
	diff("partyRef", old.PartyRef != next.PartyRef)
	diff("currencyCode", old.CurrencyCode != next.CurrencyCode)
	diff("documentDate", !old.DocumentDate.Equal(next.DocumentDate))
	diff("subtotal", !old.Subtotal.Equal(next.Subtotal))
	diff("taxTotal", !old.TaxTotal.Equal(next.TaxTotal))
	diff("total", !old.Total.Equal(next.Total))
	diff("journalEntryID", !equalStringPtr(old.JournalEntryID, next.JournalEntryID))
	diff("exchangeRate", !equalDecimalPtr(old.ExchangeRate, next.ExchangeRate))
	diff("baseCurrencyTotal", !equalDecimalPtr(old.BaseCurrencyTotal, next.BaseCurrencyTotal))
	diff("reversalOfID", !equalStringPtr(old.ReversalOfID, next.ReversalOfID))
	diff("createdAt", !old.CreatedAt.Equal(next.CreatedAt))
	diff("createdBy", old.CreatedBy != next.CreatedBy)
	// The back-reference is set once, by the write that moves the document to REVERSED.
	if old.ReversedByID != nil || next.Status != domain.DocumentReversed {
		diff("reversedByID", !equalStringPtr(old.ReversedByID, next.ReversedByID))
	}

	if len(old.Lines) != len(next.Lines) {
		return append(fields, "lines")
	}
	byID := make(map[string]domain.DocumentLine, len(old.Lines))
	for _, l := range old.Lines {
		byID[l.LineID] = l
	}
	for i, nl := range next.Lines {
		ol, ok := byID[nl.LineID]
		if !ok {
			return append(fields, "lines")
		}
		prefix := fmt.Sprintf("lines[%d].", i)
		diff(prefix+"position", ol.Position != nl.Position)
		diff(prefix+"description", ol.Description != nl.Description)
		diff(prefix+"quantity", !ol.Quantity.Equal(nl.Quantity))
		diff(prefix+"unitPrice", !ol.UnitPrice.Equal(nl.UnitPrice))
		diff(prefix+"taxRate", !ol.TaxRate.Equal(nl.TaxRate))
		diff(prefix+"accountID", ol.AccountID != nl.AccountID)
		diff(prefix+"taxCode", ol.TaxCode != nl.TaxCode)
	}
	return fields
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalDecimalPtr(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
