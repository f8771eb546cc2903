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

type accountRepository struct {
	db querier
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

const accountColumns = `account_id, code, name, account_type, parent_account_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.AccountID, m.Code, m.Name, m.AccountType, m.ParentAccountID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("account "+m.Code, err)
	}
	return nil
}

func (r *accountRepository) findOne(ctx context.Context, where, key string) (*domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE `+where+` = $1`, key)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, readError("account", key, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, "account_id", accountID)
}

func (r *accountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findOne(ctx, "code", code)
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan accounts", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}
