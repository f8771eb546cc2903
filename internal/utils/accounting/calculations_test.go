package accounting

import (
	"testing"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetActivity(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	forty := decimal.NewFromInt(40)

	tests := []struct {
		name        string
		accountType domain.AccountType
		want        decimal.Decimal
	}{
		{"asset is debit normal", domain.Asset, decimal.NewFromInt(60)},
		{"expense is debit normal", domain.Expense, decimal.NewFromInt(60)},
		{"income is credit normal", domain.Income, decimal.NewFromInt(-60)},
		{"liability is credit normal", domain.Liability, decimal.NewFromInt(-60)},
		{"equity is credit normal", domain.Equity, decimal.NewFromInt(-60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NetActivity(tt.accountType, hundred, forty)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := NetActivity(domain.AccountType("BOGUS"), hundred, forty)
	assert.Error(t, err)
}

func TestSummarizeProfit(t *testing.T) {
	activity := []domain.AccountTypeActivity{
		{AccountType: domain.Income, Debit: decimal.NewFromInt(10000), Credit: decimal.NewFromInt(810000)},
		{AccountType: domain.Expense, Debit: decimal.NewFromInt(320000), Credit: decimal.NewFromInt(20000)},
		{AccountType: domain.Asset, Debit: decimal.NewFromInt(999999), Credit: decimal.Zero},
	}

	summary, err := SummarizeProfit(activity)
	require.NoError(t, err)
	assert.Equal(t, "800000", summary.Income.String())
	assert.Equal(t, "300000", summary.Expenses.String())
	assert.Equal(t, "500000", summary.NetProfit.String())
}
