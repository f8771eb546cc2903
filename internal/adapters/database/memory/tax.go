package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

func (v *view) SaveTaxRule(ctx context.Context, rule domain.CorporateTaxRule) error {
	return v.write(func(st *state) error {
		if rule.Active {
			for id, r := range st.rules {
				if r.Active && r.Country == rule.Country && id != rule.RuleID {
					return fmt.Errorf("%w: active tax rule for %s", apperrors.ErrDuplicate, rule.Country)
				}
			}
		}
		st.rules[rule.RuleID] = rule
		return nil
	})
}

func (v *view) FindActiveRule(ctx context.Context, country string) (*domain.CorporateTaxRule, error) {
	var found *domain.CorporateTaxRule
	v.read(func(st *state) {
		for _, r := range st.rules {
			if r.Active && r.Country == country {
				found = &r
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("active tax rule for", country)
	}
	return found, nil
}

func (v *view) FindFilingByID(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	var found *domain.CorporateTaxFiling
	v.read(func(st *state) {
		if f, ok := st.filings[filingID]; ok {
			found = &f
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("tax filing", filingID)
	}
	return found, nil
}

func (v *view) FindFilingForUpdate(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	return v.FindFilingByID(ctx, filingID)
}

func samePeriod(f domain.CorporateTaxFiling, country string, start, end time.Time) bool {
	return f.Country == country &&
		f.PeriodStart.Format(time.DateOnly) == start.Format(time.DateOnly) &&
		f.PeriodEnd.Format(time.DateOnly) == end.Format(time.DateOnly)
}

func (v *view) LockFilingPeriod(ctx context.Context, country string, periodStart, periodEnd time.Time) (*domain.CorporateTaxFiling, error) {
	var found *domain.CorporateTaxFiling
	v.read(func(st *state) {
		for _, f := range st.filings {
			if f.Status != domain.FilingReversed && samePeriod(f, country, periodStart, periodEnd) {
				found = &f
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.NewNotFoundError("tax filing for", country)
	}
	return found, nil
}

func (v *view) SaveFiling(ctx context.Context, filing domain.CorporateTaxFiling) error {
	return v.write(func(st *state) error {
		for _, f := range st.filings {
			if f.Status != domain.FilingReversed && samePeriod(f, filing.Country, filing.PeriodStart, filing.PeriodEnd) {
				return fmt.Errorf("%w: open tax filing for %s period", apperrors.ErrDuplicate, filing.Country)
			}
		}
		st.filings[filing.FilingID] = filing
		return nil
	})
}

func (v *view) UpdateFiling(ctx context.Context, filing domain.CorporateTaxFiling) error {
	return v.write(func(st *state) error {
		if _, ok := st.filings[filing.FilingID]; !ok {
			return apperrors.NewNotFoundError("tax filing", filing.FilingID)
		}
		st.filings[filing.FilingID] = filing
		return nil
	})
}
