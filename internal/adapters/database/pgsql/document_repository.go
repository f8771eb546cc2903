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

type documentRepository struct {
	db querier
}

var _ portsrepo.DocumentRepositoryWithLock = (*documentRepository)(nil)

const documentColumns = `document_id, document_type, number, party_ref, currency_code, document_date, status,
	subtotal, tax_total, total, journal_entry_id, posted_at, exchange_rate, base_currency_total,
	reversal_of_id, reversed_by_id, amount_paid, base_amount_settled, settlement_status,
	created_at, created_by, last_updated_at, last_updated_by`

const documentLineColumns = `line_id, document_id, position, description, quantity, unit_price, tax_rate, account_id, tax_code`

func (r *documentRepository) find(ctx context.Context, documentID, suffix string) (*domain.SourceDocument, error) {
	rows, err := r.db.Query(ctx, `SELECT `+documentColumns+` FROM source_documents WHERE document_id = $1`+suffix, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SourceDocument])
	if err != nil {
		return nil, readError("document", documentID, err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT `+documentLineColumns+`
		FROM document_lines
		WHERE document_id = $1
		ORDER BY position`, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document lines", err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DocumentLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan document lines", err)
	}

	doc := mapping.ToDomainSourceDocument(m, lines)
	return &doc, nil
}

func (r *documentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.SourceDocument, error) {
	return r.find(ctx, documentID, "")
}

// FindDocumentForUpdate only locks when called through a transaction.
func (r *documentRepository) FindDocumentForUpdate(ctx context.Context, documentID string) (*domain.SourceDocument, error) {
	return r.find(ctx, documentID, " FOR UPDATE")
}

func (r *documentRepository) SaveDocument(ctx context.Context, doc domain.SourceDocument) error {
	m := mapping.ToModelSourceDocument(doc)
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO source_documents (`+documentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		m.DocumentID, m.DocumentType, m.Number, m.PartyRef, m.CurrencyCode, m.DocumentDate, m.Status,
		m.Subtotal, m.TaxTotal, m.Total, m.JournalEntryID, m.PostedAt, m.ExchangeRate, m.BaseCurrencyTotal,
		m.ReversalOfID, m.ReversedByID, m.AmountPaid, m.BaseAmountSettled, m.SettlementStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	queueDocumentLines(batch, doc.Lines)

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return writeError("document "+m.DocumentID, err)
	}
	return nil
}

// UpdateDocument rewrites the header and replaces every line.
func (r *documentRepository) UpdateDocument(ctx context.Context, doc domain.SourceDocument) error {
	m := mapping.ToModelSourceDocument(doc)
	tag, err := r.db.Exec(ctx, `
		UPDATE source_documents SET
			document_type = $2, number = $3, party_ref = $4, currency_code = $5, document_date = $6, status = $7,
			subtotal = $8, tax_total = $9, total = $10, journal_entry_id = $11, posted_at = $12,
			exchange_rate = $13, base_currency_total = $14, reversal_of_id = $15, reversed_by_id = $16,
			amount_paid = $17, base_amount_settled = $18, settlement_status = $19,
			last_updated_at = $20, last_updated_by = $21
		WHERE document_id = $1`,
		m.DocumentID, m.DocumentType, m.Number, m.PartyRef, m.CurrencyCode, m.DocumentDate, m.Status,
		m.Subtotal, m.TaxTotal, m.Total, m.JournalEntryID, m.PostedAt,
		m.ExchangeRate, m.BaseCurrencyTotal, m.ReversalOfID, m.ReversedByID,
		m.AmountPaid, m.BaseAmountSettled, m.SettlementStatus,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("document "+m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("document", m.DocumentID)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM document_lines WHERE document_id = $1`, m.DocumentID)
	queueDocumentLines(batch, doc.Lines)
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return writeError("lines of document "+m.DocumentID, err)
	}
	return nil
}

func queueDocumentLines(batch *pgx.Batch, lines []domain.DocumentLine) {
	query := `INSERT INTO document_lines (` + documentLineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, line := range lines {
		l := mapping.ToModelDocumentLine(line)
		batch.Queue(query, l.LineID, l.DocumentID, l.Position, l.Description, l.Quantity, l.UnitPrice, l.TaxRate, l.AccountID, l.TaxCode)
	}
}
