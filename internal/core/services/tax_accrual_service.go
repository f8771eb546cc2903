package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxAccrualService accrues corporate income tax on the posted profit of a
// period and manages the resulting filing.
type TaxAccrualService struct {
	BaseService
	uow        portsrepo.UnitOfWork
	accounts   portssvc.AccountRegistrySvc
	conversion portssvc.CurrencyConversionSvc
	reversal   *ReversalService
}

var _ portssvc.TaxAccrualSvcFacade = (*TaxAccrualService)(nil)

// NewTaxAccrualService creates a new TaxAccrualService.
func NewTaxAccrualService(
	uow portsrepo.UnitOfWork,
	accounts portssvc.AccountRegistrySvc,
	conversion portssvc.CurrencyConversionSvc,
	reversal *ReversalService,
) *TaxAccrualService {
	return &TaxAccrualService{
		BaseService: newBaseService(),
		uow:         uow,
		accounts:    accounts,
		conversion:  conversion,
		reversal:    reversal,
	}
}

// Accrue computes tax = (profit - threshold) × rate for the period and posts
// Dr TAX_EXPENSE / Cr TAX_PAYABLE dated on the period end.
//
// An ACCRUED filing for the period is returned as is. A FILED one is only
// replaced when req.Override is set, in which case its accrual is reversed
// first. Profit excludes earlier tax accruals.
func (s *TaxAccrualService) Accrue(ctx context.Context, req portssvc.AccrueTaxRequest, userID string) (*domain.TaxAccrual, error) {
	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country == "" {
		return nil, apperrors.NewValidationError("country", "country is required")
	}
	if req.PeriodStart.IsZero() || req.PeriodEnd.IsZero() {
		return nil, apperrors.NewValidationError("period", "period start and end are required")
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, apperrors.NewValidationError("periodEnd", "period end is before period start")
	}
	logger := s.GetLogger(ctx).With(
		slog.String("country", country),
		slog.String("period_start", req.PeriodStart.Format("2006-01-02")),
		slog.String("period_end", req.PeriodEnd.Format("2006-01-02")))

	var result *domain.TaxAccrual
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Tax.LockFilingPeriod(ctx, country, req.PeriodStart, req.PeriodEnd)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		if existing != nil {
			switch existing.Status {
			case domain.FilingAccrued:
				entry, err := s.filingEntry(ctx, repos, existing)
				if err != nil {
					return err
				}
				result = &domain.TaxAccrual{Filing: existing, Entry: entry, Profit: existing.Profit,
					TaxBase: existing.TaxBase, TaxAmount: existing.TaxAmount, Created: false}
				return nil
			case domain.FilingFiled:
				if !req.Override {
					return &apperrors.InvalidStateError{Entity: "tax filing", ID: existing.FilingID, Current: string(existing.Status), Wanted: string(domain.FilingAccrued)}
				}
				if err := s.reverseFiling(ctx, repos, existing, userID); err != nil {
					return err
				}
				logger.Info("Filed accrual reversed for re-accrual", slog.String("filing_id", existing.FilingID))
			}
		}

		rule, err := repos.Tax.FindActiveRule(ctx, country)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return &apperrors.ConfigurationError{Reason: fmt.Sprintf("no active corporate tax rule for %s", country)}
			}
			return err
		}

		activity, err := repos.Journals.SumPostedActivityByAccountType(ctx, req.PeriodStart, req.PeriodEnd,
			[]domain.SourceType{domain.SourceTaxAccrual})
		if err != nil {
			return fmt.Errorf("summing posted activity: %w", err)
		}
		summary, err := accounting.SummarizeProfit(activity)
		if err != nil {
			return err
		}

		profit := summary.NetProfit
		taxBase := profit
		if rule.Threshold != nil {
			taxBase = profit.Sub(*rule.Threshold)
		}
		if !profit.IsPositive() || !taxBase.IsPositive() {
			result = &domain.TaxAccrual{Profit: profit, TaxBase: decimal.Zero, TaxAmount: decimal.Zero}
			return nil
		}
		tax := domain.Percent(taxBase, rule.Rate)
		if tax.IsZero() {
			result = &domain.TaxAccrual{Profit: profit, TaxBase: taxBase, TaxAmount: tax}
			return nil
		}

		base, err := s.conversion.BaseCurrency(ctx)
		if err != nil {
			return err
		}
		expense, err := s.accounts.Resolve(domain.RoleTaxExpense)
		if err != nil {
			return err
		}
		payable, err := s.accounts.Resolve(domain.RoleTaxPayable)
		if err != nil {
			return err
		}

		now := s.Now()
		filingID := uuid.NewString()
		memo := fmt.Sprintf("Corporate tax %s %s to %s", country, req.PeriodStart.Format("2006-01-02"), req.PeriodEnd.Format("2006-01-02"))
		entry := domain.NewJournalEntry(req.PeriodEnd, base.CurrencyCode, memo, domain.SourceTaxAccrual, filingID, userID, now)
		entry.AddDebit(expense.AccountID, tax, "")
		entry.AddCredit(payable.AccountID, tax, "")
		if err := entry.Post(now); err != nil {
			return err
		}
		if err := repos.Journals.SaveJournalEntry(ctx, *entry); err != nil {
			return fmt.Errorf("saving tax accrual journal: %w", err)
		}

		filing := &domain.CorporateTaxFiling{
			FilingID:       filingID,
			Country:        country,
			PeriodStart:    req.PeriodStart,
			PeriodEnd:      req.PeriodEnd,
			Status:         domain.FilingAccrued,
			RuleID:         rule.RuleID,
			Profit:         profit,
			TaxBase:        taxBase,
			TaxAmount:      tax,
			JournalEntryID: &entry.JournalID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := repos.Tax.SaveFiling(ctx, *filing); err != nil {
			return fmt.Errorf("saving tax filing: %w", err)
		}

		result = &domain.TaxAccrual{Filing: filing, Entry: entry, Profit: profit, TaxBase: taxBase, TaxAmount: tax, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case result.Created:
		logger.Info("Corporate tax accrued",
			slog.String("filing_id", result.Filing.FilingID),
			slog.String("tax_amount", result.TaxAmount.StringFixed(domain.AmountScale)))
	case result.Filing == nil:
		logger.Info("No taxable profit for period", slog.String("profit", result.Profit.StringFixed(domain.AmountScale)))
	}
	return result, nil
}

func (s *TaxAccrualService) filingEntry(ctx context.Context, repos portsrepo.TxRepositories, filing *domain.CorporateTaxFiling) (*domain.JournalEntry, error) {
	if filing.JournalEntryID == nil {
		return nil, nil
	}
	entry, err := repos.Journals.FindJournalByID(ctx, *filing.JournalEntryID)
	if err != nil {
		return nil, fmt.Errorf("loading journal of filing %s: %w", filing.FilingID, err)
	}
	return entry, nil
}

// reverseFiling posts the mirror of a filing's accrual and marks it REVERSED.
func (s *TaxAccrualService) reverseFiling(ctx context.Context, repos portsrepo.TxRepositories, filing *domain.CorporateTaxFiling, userID string) error {
	entry, err := s.filingEntry(ctx, repos, filing)
	if err != nil {
		return err
	}
	if entry != nil {
		rev, err := s.reversal.ReverseEntry(ctx, repos.Journals, entry, "Reversal of "+entry.Memo, userID)
		if err != nil {
			return err
		}
		filing.ReversalJournalID = &rev.JournalID
	}
	filing.Status = domain.FilingReversed
	filing.Touch(userID, s.Now())
	if err := repos.Tax.UpdateFiling(ctx, *filing); err != nil {
		return fmt.Errorf("updating tax filing %s: %w", filing.FilingID, err)
	}
	return nil
}

// FileReturn marks an accrued filing as submitted to the authority.
func (s *TaxAccrualService) FileReturn(ctx context.Context, filingID, userID string) (*domain.CorporateTaxFiling, error) {
	var filing *domain.CorporateTaxFiling
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		f, err := repos.Tax.FindFilingForUpdate(ctx, filingID)
		if err != nil {
			return err
		}
		filing = f
		switch f.Status {
		case domain.FilingFiled:
			return nil
		case domain.FilingReversed:
			return &apperrors.InvalidStateError{Entity: "tax filing", ID: filingID, Current: string(f.Status), Wanted: string(domain.FilingAccrued)}
		}

		now := s.Now()
		f.Status = domain.FilingFiled
		f.FiledAt = &now
		f.Touch(userID, now)
		if err := repos.Tax.UpdateFiling(ctx, *f); err != nil {
			return fmt.Errorf("updating tax filing %s: %w", filingID, err)
		}
		s.LogInfo(ctx, "Corporate tax return filed", slog.String("filing_id", filingID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filing, nil
}

// ReverseFiling reverses the accrual of a filing. A FILED filing needs override.
func (s *TaxAccrualService) ReverseFiling(ctx context.Context, filingID string, override bool, userID string) (*domain.CorporateTaxFiling, error) {
	var filing *domain.CorporateTaxFiling
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		f, err := repos.Tax.FindFilingForUpdate(ctx, filingID)
		if err != nil {
			return err
		}
		filing = f
		switch {
		case f.Status == domain.FilingReversed:
			return nil
		case f.Status == domain.FilingFiled && !override:
			return &apperrors.InvalidStateError{Entity: "tax filing", ID: filingID, Current: string(f.Status), Wanted: string(domain.FilingAccrued)}
		}
		if err := s.reverseFiling(ctx, repos, f, userID); err != nil {
			return err
		}
		s.LogInfo(ctx, "Corporate tax accrual reversed", slog.String("filing_id", filingID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filing, nil
}
