package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/models"
	"github.com/SscSPs/gl_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type taxRepository struct {
	db querier
}

var _ portsrepo.TaxRepositoryWithLock = (*taxRepository)(nil)

const taxRuleColumns = `rule_id, country, rate, threshold, active, created_at, created_by, last_updated_at, last_updated_by`

const filingColumns = `filing_id, country, period_start, period_end, status, rule_id, profit, tax_base, tax_amount,
	journal_entry_id, reversal_journal_id, filed_at, created_at, created_by, last_updated_at, last_updated_by`

func (r *taxRepository) SaveTaxRule(ctx context.Context, rule domain.CorporateTaxRule) error {
	m := mapping.ToModelCorporateTaxRule(rule)
	_, err := r.db.Exec(ctx, `
		INSERT INTO corporate_tax_rules (`+taxRuleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.RuleID, m.Country, m.Rate, m.Threshold, m.Active, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("tax rule for "+m.Country, err)
	}
	return nil
}

func (r *taxRepository) FindActiveRule(ctx context.Context, country string) (*domain.CorporateTaxRule, error) {
	rows, err := r.db.Query(ctx, `SELECT `+taxRuleColumns+` FROM corporate_tax_rules WHERE country = $1 AND active`, country)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rule", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CorporateTaxRule])
	if err != nil {
		return nil, readError("active tax rule for", country, err)
	}
	rule := mapping.ToDomainCorporateTaxRule(m)
	return &rule, nil
}

func (r *taxRepository) findFiling(ctx context.Context, key string, query string, args ...any) (*domain.CorporateTaxFiling, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax filing", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CorporateTaxFiling])
	if err != nil {
		return nil, readError("tax filing", key, err)
	}
	filing := mapping.ToDomainCorporateTaxFiling(m)
	return &filing, nil
}

func (r *taxRepository) FindFilingByID(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	return r.findFiling(ctx, filingID, `SELECT `+filingColumns+` FROM corporate_tax_filings WHERE filing_id = $1`, filingID)
}

func (r *taxRepository) FindFilingForUpdate(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	return r.findFiling(ctx, filingID, `SELECT `+filingColumns+` FROM corporate_tax_filings WHERE filing_id = $1 FOR UPDATE`, filingID)
}

// LockFilingPeriod takes a transaction-scoped advisory lock keyed on the
// period, so two accruals of a period with no filing row yet still serialize.
func (r *taxRepository) LockFilingPeriod(ctx context.Context, country string, periodStart, periodEnd time.Time) (*domain.CorporateTaxFiling, error) {
	start, end := periodStart.Format(time.DateOnly), periodEnd.Format(time.DateOnly)
	key := country + "|" + start + "|" + end
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "corporate_tax:"+key); err != nil {
		if cerr, ok := conflictError("tax period "+key, err); ok {
			return nil, cerr
		}
		return nil, apperrors.NewAppError(500, "failed to lock tax period "+key, err)
	}
	return r.findFiling(ctx, key, `
		SELECT `+filingColumns+`
		FROM corporate_tax_filings
		WHERE country = $1 AND period_start = $2::date AND period_end = $3::date AND status <> 'REVERSED'
		FOR UPDATE`, country, start, end)
}

func (r *taxRepository) SaveFiling(ctx context.Context, filing domain.CorporateTaxFiling) error {
	m := mapping.ToModelCorporateTaxFiling(filing)
	_, err := r.db.Exec(ctx, `
		INSERT INTO corporate_tax_filings (`+filingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		m.FilingID, m.Country, m.PeriodStart, m.PeriodEnd, m.Status, m.RuleID, m.Profit, m.TaxBase, m.TaxAmount,
		m.JournalEntryID, m.ReversalJournalID, m.FiledAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("tax filing "+m.FilingID, err)
	}
	return nil
}

func (r *taxRepository) UpdateFiling(ctx context.Context, filing domain.CorporateTaxFiling) error {
	m := mapping.ToModelCorporateTaxFiling(filing)
	tag, err := r.db.Exec(ctx, `
		UPDATE corporate_tax_filings SET
			status = $2, reversal_journal_id = $3, filed_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE filing_id = $1`,
		m.FilingID, m.Status, m.ReversalJournalID, m.FiledAt, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("tax filing "+m.FilingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tax filing", m.FilingID)
	}
	return nil
}
