package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/models"
	"github.com/SscSPs/gl_posting_engine/internal/utils/mapping"
	"github.com/SscSPs/gl_posting_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type journalRepository struct {
	db querier
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

const journalColumns = `journal_id, entry_date, currency_code, memo, posted, posted_at, source_type, source_id, reversal_of_id,
	created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, journal_id, account_id, debit, credit, memo, position`

// SaveJournalEntry inserts the header and queues every line in one batch.
// journal_entries_one_original_per_source rejects a second original entry
// for the same source as a duplicate.
func (r *journalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO journal_entries (`+journalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.JournalID, m.EntryDate, m.CurrencyCode, m.Memo, m.Posted, m.PostedAt, m.SourceType, m.SourceID, m.ReversalOfID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	lineQuery := `INSERT INTO journal_lines (` + journalLineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, line := range entry.Lines {
		l := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, l.LineID, l.JournalID, l.AccountID, l.Debit, l.Credit, l.Memo, l.Position)
	}

	// Close surfaces the first failing statement.
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return writeError("journal entry "+m.JournalID, err)
	}
	return nil
}

func (r *journalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+journalColumns+` FROM journal_entries WHERE journal_id = $1`, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, readError("journal", journalID, err)
	}

	lines, err := r.linesFor(ctx, []string{journalID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m, lines[journalID])
	return &entry, nil
}

func (r *journalRepository) linesFor(ctx context.Context, journalIDs []string) (map[string][]models.JournalLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+journalLineColumns+`
		FROM journal_lines
		WHERE journal_id = ANY($1)
		ORDER BY journal_id, position`, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal lines", err)
	}
	byJournal := make(map[string][]models.JournalLine, len(journalIDs))
	for _, l := range ms {
		byJournal[l.JournalID] = append(byJournal[l.JournalID], l)
	}
	return byJournal, nil
}

// ListJournals pages by (entry_date, created_at, journal_id) descending. The
// token encodes the last row of the previous page.
func (r *journalRepository) ListJournals(ctx context.Context, params portsrepo.ListJournalsParams) ([]domain.JournalEntry, *string, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.SourceType != "" {
		where = append(where, "source_type = "+arg(string(params.SourceType)))
	}
	if params.SourceID != "" {
		where = append(where, "source_id = "+arg(params.SourceID))
	}
	if params.NextToken != nil {
		after, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", err.Error())
		}
		where = append(where, fmt.Sprintf("(entry_date, created_at, journal_id) < (%s::date, %s, %s)",
			arg(after.EntryDate), arg(after.CreatedAt), arg(after.JournalID)))
	}

	query := `SELECT ` + journalColumns + ` FROM journal_entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY entry_date DESC, created_at DESC, journal_id DESC"
	if params.Limit > 0 {
		// One extra row tells us whether another page exists.
		query += " LIMIT " + arg(params.Limit+1)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan journals", err)
	}

	var next *string
	if params.Limit > 0 && len(ms) > params.Limit {
		ms = ms[:params.Limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, JournalID: last.JournalID})
		next = &token
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.JournalID
	}
	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainJournalEntry(m, lines[m.JournalID])
	}
	return entries, next, nil
}

func (r *journalRepository) SumPostedActivityByAccountType(ctx context.Context, from, to time.Time, exclude []domain.SourceType) ([]domain.AccountTypeActivity, error) {
	excluded := make([]string, len(exclude))
	for i, s := range exclude {
		excluded[i] = string(s)
	}

	rows, err := r.db.Query(ctx, `
		SELECT a.account_type, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries j ON j.journal_id = l.journal_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE j.posted
		  AND j.entry_date BETWEEN $1::date AND $2::date
		  AND NOT (j.source_type = ANY($3))
		GROUP BY a.account_type
		ORDER BY a.account_type`,
		from.Format(time.DateOnly), to.Format(time.DateOnly), excluded,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum journal activity", err)
	}

	activity, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountTypeActivity, error) {
		var (
			accountType   string
			debit, credit decimal.Decimal
		)
		if err := row.Scan(&accountType, &debit, &credit); err != nil {
			return domain.AccountTypeActivity{}, err
		}
		return domain.AccountTypeActivity{AccountType: domain.AccountType(accountType), Debit: debit, Credit: credit}, nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal activity", err)
	}
	return activity, nil
}
