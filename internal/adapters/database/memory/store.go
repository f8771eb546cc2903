// Package memory is a map-backed implementation of the repository ports.
// WithTx works on a copy of the committed state and swaps it in on success,
// so a failed transaction leaves nothing behind. Transactions are serialized,
// which makes every *ForUpdate lookup trivially exclusive.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
)

type state struct {
	accounts   map[string]domain.Account
	currencies map[string]domain.Currency
	rates      map[string]domain.ExchangeRate
	journals   map[string]domain.JournalEntry
	documents  map[string]domain.SourceDocument
	payments   map[string]domain.Payment
	rules      map[string]domain.CorporateTaxRule
	filings    map[string]domain.CorporateTaxFiling
}

func newState() *state {
	return &state{
		accounts:   map[string]domain.Account{},
		currencies: map[string]domain.Currency{},
		rates:      map[string]domain.ExchangeRate{},
		journals:   map[string]domain.JournalEntry{},
		documents:  map[string]domain.SourceDocument{},
		payments:   map[string]domain.Payment{},
		rules:      map[string]domain.CorporateTaxRule{},
		filings:    map[string]domain.CorporateTaxFiling{},
	}
}

// clone copies every map. Stored values are never mutated in place, only
// replaced, so copying the maps is enough to isolate a transaction.
func (st *state) clone() *state {
	return &state{
		accounts:   maps.Clone(st.accounts),
		currencies: maps.Clone(st.currencies),
		rates:      maps.Clone(st.rates),
		journals:   maps.Clone(st.journals),
		documents:  maps.Clone(st.documents),
		payments:   maps.Clone(st.payments),
		rules:      maps.Clone(st.rules),
		filings:    maps.Clone(st.filings),
	}
}

// Store holds the committed state.
type Store struct {
	mu   sync.RWMutex // guards st
	txMu sync.Mutex   // serializes writers
	st   *state
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// WithTx runs fn against a private copy of the state and commits it when fn
// returns nil. An error or a panic discards the copy.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	work := s.st.clone()
	s.mu.RUnlock()

	v := &view{store: s, tx: work}
	if err := fn(ctx, portsrepo.TxRepositories{
		Accounts:      v,
		Currencies:    v,
		ExchangeRates: v,
		Journals:      v,
		Documents:     v,
		Payments:      v,
		Tax:           v,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = work
	s.mu.Unlock()
	return nil
}

// Provider returns the non-transactional repositories and the store as unit of work.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	v := &view{store: s}
	return portsrepo.RepositoryProvider{
		AccountRepo:      v,
		CurrencyRepo:     v,
		ExchangeRateRepo: v,
		JournalRepo:      v,
		DocumentRepo:     v,
		PaymentRepo:      v,
		TaxRepo:          v,
		UnitOfWork:       s,
	}
}

// view implements every repository port. Inside a transaction tx is the
// working copy; outside it reads and writes go to the committed state.
type view struct {
	store *Store
	tx    *state
}

var (
	_ portsrepo.AccountRepositoryFacade      = (*view)(nil)
	_ portsrepo.CurrencyRepositoryFacade     = (*view)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade = (*view)(nil)
	_ portsrepo.JournalRepositoryFacade      = (*view)(nil)
	_ portsrepo.DocumentRepositoryWithLock   = (*view)(nil)
	_ portsrepo.PaymentRepositoryWithLock    = (*view)(nil)
	_ portsrepo.TaxRepositoryWithLock        = (*view)(nil)
)

func (v *view) read(fn func(st *state)) {
	if v.tx != nil {
		fn(v.tx)
		return
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	fn(v.store.st)
}

func (v *view) write(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.txMu.Lock()
	defer v.store.txMu.Unlock()
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.st)
}
