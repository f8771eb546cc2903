package pgsql

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/models"
	"github.com/SscSPs/gl_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type paymentRepository struct {
	db querier
}

var _ portsrepo.PaymentRepositoryWithLock = (*paymentRepository)(nil)

const paymentColumns = `payment_id, invoice_id, amount, currency_code, payment_date, reference, status,
	journal_entry_id, posted_at, exchange_rate, base_amount, cleared_base_amount, fx_amount, fx_kind, reversed_by_id,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *paymentRepository) find(ctx context.Context, paymentID, suffix string) (*domain.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1`+suffix, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, readError("payment", paymentID, err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *paymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.find(ctx, paymentID, "")
}

func (r *paymentRepository) FindPaymentForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.find(ctx, paymentID, " FOR UPDATE")
}

func (r *paymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.PaymentID, m.InvoiceID, m.Amount, m.CurrencyCode, m.PaymentDate, m.Reference, m.Status,
		m.JournalEntryID, m.PostedAt, m.ExchangeRate, m.BaseAmount, m.ClearedBaseAmount, m.FXAmount, m.FXKind, m.ReversedByID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("payment "+m.PaymentID, err)
	}
	return nil
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET
			status = $2, journal_entry_id = $3, posted_at = $4, exchange_rate = $5, base_amount = $6,
			cleared_base_amount = $7, fx_amount = $8, fx_kind = $9, reversed_by_id = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE payment_id = $1`,
		m.PaymentID, m.Status, m.JournalEntryID, m.PostedAt, m.ExchangeRate, m.BaseAmount,
		m.ClearedBaseAmount, m.FXAmount, m.FXKind, m.ReversedByID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("payment "+m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment", m.PaymentID)
	}
	return nil
}
