package services

import (
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// FXGainLossCalculator measures realized exchange differences and books them
// onto an unposted entry.
type FXGainLossCalculator struct {
	accounts portssvc.AccountRegistrySvc
}

var _ portssvc.FXGainLossSvc = (*FXGainLossCalculator)(nil)

// NewFXGainLossCalculator creates a new FXGainLossCalculator.
func NewFXGainLossCalculator(accounts portssvc.AccountRegistrySvc) *FXGainLossCalculator {
	return &FXGainLossCalculator{accounts: accounts}
}

// ComputeGainLoss converts both legs to base currency at their own frozen
// rates and returns the absolute difference. A settlement leg worth more than
// the original is a gain from the holder of the receivable's point of view;
// payables take kind.Opposite().
func (c *FXGainLossCalculator) ComputeGainLoss(originalAmount decimal.Decimal, originalCcy string, originalRate decimal.Decimal,
	settleAmount decimal.Decimal, settleCcy string, settleRate decimal.Decimal) (decimal.Decimal, domain.FXKind) {
	originalBase := domain.ConvertAmount(originalAmount, originalRate)
	settleBase := domain.ConvertAmount(settleAmount, settleRate)

	diff := settleBase.Sub(originalBase)
	if diff.IsNegative() {
		return diff.Neg(), domain.RealizedLoss
	}
	return diff, domain.RealizedGain
}

// PostGainLoss appends the gain or loss line to entry. With a contra account
// it also appends the opposite leg, so the pair is self-balancing; without
// one the line balances an entry that is otherwise short by amount.
// A zero amount adds nothing.
func (c *FXGainLossCalculator) PostGainLoss(entry *domain.JournalEntry, amount decimal.Decimal, kind domain.FXKind, contraAccountID *string) error {
	if amount.IsZero() {
		return nil
	}

	if kind == domain.RealizedGain {
		account, err := c.accounts.Resolve(domain.RoleFXGain)
		if err != nil {
			return err
		}
		entry.AddCredit(account.AccountID, amount, "Realized FX gain")
		if contraAccountID != nil {
			entry.AddDebit(*contraAccountID, amount, "Realized FX gain")
		}
		return nil
	}

	account, err := c.accounts.Resolve(domain.RoleFXLoss)
	if err != nil {
		return err
	}
	entry.AddDebit(account.AccountID, amount, "Realized FX loss")
	if contraAccountID != nil {
		entry.AddCredit(*contraAccountID, amount, "Realized FX loss")
	}
	return nil
}
