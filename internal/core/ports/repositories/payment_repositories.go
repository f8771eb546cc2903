package repositories

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentLocker takes an exclusive row lock on a payment.
type PaymentLocker interface {
	FindPaymentForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	UpdatePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithLock is the transactional view of payments.
type PaymentRepositoryWithLock interface {
	PaymentRepositoryFacade
	PaymentLocker
}
