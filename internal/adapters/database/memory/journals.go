package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/gl_posting_engine/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

func copyEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Lines = slices.Clone(e.Lines)
	return e
}

// SaveJournalEntry rejects a second original (non-reversal) entry for the same source.
func (v *view) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return v.write(func(st *state) error {
		if _, ok := st.journals[entry.JournalID]; ok {
			return fmt.Errorf("%w: journal %s", apperrors.ErrDuplicate, entry.JournalID)
		}
		if entry.ReversalOfID == nil {
			for _, e := range st.journals {
				if e.ReversalOfID == nil && e.SourceType == entry.SourceType && e.SourceID == entry.SourceID {
					return fmt.Errorf("%w: journal for %s %s", apperrors.ErrDuplicate, entry.SourceType, entry.SourceID)
				}
			}
		}
		st.journals[entry.JournalID] = copyEntry(entry)
		return nil
	})
}

func (v *view) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	var found *domain.JournalEntry
	v.read(func(st *state) {
		if e, ok := st.journals[journalID]; ok {
			c := copyEntry(e)
			found = &c
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("journal", journalID)
	}
	return found, nil
}

func (v *view) ListJournals(ctx context.Context, params portsrepo.ListJournalsParams) ([]domain.JournalEntry, *string, error) {
	var after *pagination.Cursor
	if params.NextToken != nil {
		c, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", err.Error())
		}
		after = &c
	}

	var all []domain.JournalEntry
	v.read(func(st *state) {
		for _, e := range st.journals {
			if params.SourceType != "" && e.SourceType != params.SourceType {
				continue
			}
			if params.SourceID != "" && e.SourceID != params.SourceID {
				continue
			}
			all = append(all, copyEntry(e))
		}
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].EntryDate.Equal(all[j].EntryDate) {
			return all[i].EntryDate.After(all[j].EntryDate)
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].JournalID > all[j].JournalID
	})

	page := make([]domain.JournalEntry, 0, max(params.Limit, 0))
	for _, e := range all {
		if after != nil && !after.After(e.EntryDate, e.CreatedAt, e.JournalID) {
			continue
		}
		if params.Limit > 0 && len(page) == params.Limit {
			last := page[len(page)-1]
			token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, JournalID: last.JournalID})
			return page, &token, nil
		}
		page = append(page, e)
	}
	return page, nil, nil
}

func (v *view) SumPostedActivityByAccountType(ctx context.Context, from, to time.Time, exclude []domain.SourceType) ([]domain.AccountTypeActivity, error) {
	fromDay, toDay := from.Format(time.DateOnly), to.Format(time.DateOnly)
	totals := map[domain.AccountType]*domain.AccountTypeActivity{}
	var missing string
	v.read(func(st *state) {
		for _, e := range st.journals {
			day := e.EntryDate.Format(time.DateOnly)
			if !e.Posted || day < fromDay || day > toDay || slices.Contains(exclude, e.SourceType) {
				continue
			}
			for _, l := range e.Lines {
				account, ok := st.accounts[l.AccountID]
				if !ok {
					missing = l.AccountID
					return
				}
				t := totals[account.AccountType]
				if t == nil {
					t = &domain.AccountTypeActivity{AccountType: account.AccountType, Debit: decimal.Zero, Credit: decimal.Zero}
					totals[account.AccountType] = t
				}
				t.Debit = t.Debit.Add(l.Debit)
				t.Credit = t.Credit.Add(l.Credit)
			}
		}
	})
	if missing != "" {
		return nil, apperrors.NewNotFoundError("account", missing)
	}

	out := make([]domain.AccountTypeActivity, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountType < out[j].AccountType })
	return out, nil
}
