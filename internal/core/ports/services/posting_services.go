package services

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// InvoicePostingSvc posts customer and supplier invoices.
type InvoicePostingSvc interface {
	// PostInvoice turns a draft invoice into a posted journal entry.
	// Calling it again for the same invoice returns the first entry with Created=false.
	PostInvoice(ctx context.Context, documentID, userID string) (*domain.PostingResult, error)
}

// PaymentPostingSvc posts payments against posted invoices.
type PaymentPostingSvc interface {
	PostPayment(ctx context.Context, paymentID, userID string) (*domain.PaymentPostingResult, error)
}

// PostingSvcFacade combines all posting operations
type PostingSvcFacade interface {
	InvoicePostingSvc
	PaymentPostingSvc
}
