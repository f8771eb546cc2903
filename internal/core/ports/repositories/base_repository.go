package repositories

import (
	"context"
)

// TxRepositories is the set of repositories bound to one database transaction.
// Row locks taken through it are held until the transaction ends.
type TxRepositories struct {
	Accounts      AccountReader
	Currencies    CurrencyReader
	ExchangeRates ExchangeRateReader
	Journals      JournalRepositoryFacade
	Documents     DocumentRepositoryWithLock
	Payments      PaymentRepositoryWithLock
	Tax           TaxRepositoryWithLock
}

// UnitOfWork runs fn inside a single transaction. fn's error, or a panic,
// rolls back every write made through repos; a nil return commits.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
