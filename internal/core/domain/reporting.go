package domain

import (
	"github.com/shopspring/decimal"
)

// AccountTypeActivity is the posted debit and credit volume on all accounts
// of one type over a period.
type AccountTypeActivity struct {
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// ProfitSummary is the income statement reduced to the figures the tax
// accrual needs.
type ProfitSummary struct {
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"`
}
