package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// runs unchanged inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		if cerr, ok := conflictError("commit", err); ok {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// unitOfWork hands fn a set of repositories bound to one pgx.Tx.
type unitOfWork struct {
	BaseRepository
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

func (u *unitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	// Runs on error and on panic; a no-op once committed.
	defer func() { _ = u.Rollback(ctx, tx) }()

	repos := portsrepo.TxRepositories{
		Accounts:      &accountRepository{db: tx},
		Currencies:    &currencyRepository{db: tx},
		ExchangeRates: &exchangeRateRepository{db: tx},
		Journals:      &journalRepository{db: tx},
		Documents:     &documentRepository{db: tx},
		Payments:      &paymentRepository{db: tx},
		Tax:           &taxRepository{db: tx},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// conflictError reports whether err is a lock or serialization failure
// between concurrent transactions and, if so, wraps it as apperrors.ErrConflict.
// The caller may retry the whole operation.
func conflictError(what string, err error) (error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	switch pgErr.Code {
	case serializationFailure, deadlockDetected:
		return fmt.Errorf("%w: %s: %s", apperrors.ErrConflict, what, pgErr.Message), true
	}
	return nil, false
}

// writeError maps unique violations to apperrors.ErrDuplicate, concurrent
// transaction failures to apperrors.ErrConflict and wraps everything else as
// an internal AppError.
func writeError(what string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, what, pgErr.ConstraintName)
	}
	if cerr, ok := conflictError(what, err); ok {
		return cerr
	}
	return apperrors.NewAppError(500, "failed to save "+what, err)
}

// readError maps pgx.ErrNoRows to a not-found error for entity id. Locking
// reads (FOR UPDATE) can lose a deadlock, which maps to apperrors.ErrConflict.
func readError(entity, id string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity, id)
	}
	if cerr, ok := conflictError(entity+" "+id, err); ok {
		return cerr
	}
	return apperrors.NewAppError(500, "failed to find "+entity+" "+id, err)
}
