package services

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// ReversalSvcFacade reverses posted documents and payments additively.
type ReversalSvcFacade interface {
	// ReverseDocument mirrors a posted invoice. Idempotent.
	ReverseDocument(ctx context.Context, documentID, userID string) (*domain.DocumentReversal, error)

	// ReversePayment reverses a posted payment and restores the invoice balance. Idempotent.
	ReversePayment(ctx context.Context, paymentID, userID string) (*domain.PaymentReversal, error)
}
