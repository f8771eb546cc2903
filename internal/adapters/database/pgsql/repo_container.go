package pgsql

import (
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      &accountRepository{db: dbPool},
		CurrencyRepo:     &currencyRepository{db: dbPool},
		ExchangeRateRepo: &exchangeRateRepository{db: dbPool},
		JournalRepo:      &journalRepository{db: dbPool},
		DocumentRepo:     &documentRepository{db: dbPool},
		PaymentRepo:      &paymentRepository{db: dbPool},
		TaxRepo:          &taxRepository{db: dbPool},
		UnitOfWork:       &unitOfWork{BaseRepository: BaseRepository{Pool: dbPool}},
	}
}
