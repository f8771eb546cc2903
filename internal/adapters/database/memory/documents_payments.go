package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

func (v *view) FindDocumentByID(ctx context.Context, documentID string) (*domain.SourceDocument, error) {
	var found *domain.SourceDocument
	v.read(func(st *state) {
		if d, ok := st.documents[documentID]; ok {
			found = d.Clone()
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("document", documentID)
	}
	return found, nil
}

func (v *view) FindDocumentForUpdate(ctx context.Context, documentID string) (*domain.SourceDocument, error) {
	return v.FindDocumentByID(ctx, documentID)
}

func (v *view) SaveDocument(ctx context.Context, doc domain.SourceDocument) error {
	return v.write(func(st *state) error {
		if _, ok := st.documents[doc.DocumentID]; ok {
			return fmt.Errorf("%w: document %s", apperrors.ErrDuplicate, doc.DocumentID)
		}
		st.documents[doc.DocumentID] = *doc.Clone()
		return nil
	})
}

func (v *view) UpdateDocument(ctx context.Context, doc domain.SourceDocument) error {
	return v.write(func(st *state) error {
		if _, ok := st.documents[doc.DocumentID]; !ok {
			return apperrors.NewNotFoundError("document", doc.DocumentID)
		}
		st.documents[doc.DocumentID] = *doc.Clone()
		return nil
	})
}

func (v *view) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var found *domain.Payment
	v.read(func(st *state) {
		if p, ok := st.payments[paymentID]; ok {
			found = &p
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("payment", paymentID)
	}
	return found, nil
}

func (v *view) FindPaymentForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return v.FindPaymentByID(ctx, paymentID)
}

func (v *view) SavePayment(ctx context.Context, payment domain.Payment) error {
	return v.write(func(st *state) error {
		if _, ok := st.payments[payment.PaymentID]; ok {
			return fmt.Errorf("%w: payment %s", apperrors.ErrDuplicate, payment.PaymentID)
		}
		st.payments[payment.PaymentID] = payment
		return nil
	})
}

func (v *view) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return v.write(func(st *state) error {
		if _, ok := st.payments[payment.PaymentID]; !ok {
			return apperrors.NewNotFoundError("payment", payment.PaymentID)
		}
		st.payments[payment.PaymentID] = payment
		return nil
	})
}
