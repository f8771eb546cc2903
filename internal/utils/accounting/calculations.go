package accounting

import (
	"fmt"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetActivity applies the natural sign of an account type to its debit and credit volume.
//
// DEBIT-normal (ASSET/EXPENSE) -> debit - credit
// CREDIT-normal (LIABILITY/EQUITY/INCOME) -> credit - debit
func NetActivity(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// SummarizeProfit reduces per-type activity to income, expenses and net profit.
// Balance sheet types are ignored.
func SummarizeProfit(activity []domain.AccountTypeActivity) (domain.ProfitSummary, error) {
	summary := domain.ProfitSummary{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, a := range activity {
		net, err := NetActivity(a.AccountType, a.Debit, a.Credit)
		if err != nil {
			return domain.ProfitSummary{}, err
		}
		switch a.AccountType {
		case domain.Income:
			summary.Income = summary.Income.Add(net)
		case domain.Expense:
			summary.Expenses = summary.Expenses.Add(net)
		}
	}
	summary.NetProfit = summary.Income.Sub(summary.Expenses)
	return summary, nil
}
