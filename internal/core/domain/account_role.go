package domain

// AccountRole is a symbolic posting role resolved to a concrete account by configuration.
type AccountRole string

const (
	RoleReceivable AccountRole = "AR"
	RoleRevenue    AccountRole = "REVENUE"
	RoleVATOutput  AccountRole = "VAT_OUTPUT"
	RolePayable    AccountRole = "AP"
	RoleExpense    AccountRole = "EXPENSE"
	RoleVATInput   AccountRole = "VAT_INPUT"
	RoleBank       AccountRole = "BANK"
	RoleFXGain     AccountRole = "FX_GAIN"
	RoleFXLoss     AccountRole = "FX_LOSS"
	RoleTaxExpense AccountRole = "TAX_EXPENSE"
	RoleTaxPayable AccountRole = "TAX_PAYABLE"
)

// OptionalRoles may be left unmapped at startup; using them unmapped fails at posting time.
var OptionalRoles = map[AccountRole]bool{
	RoleFXGain: true,
	RoleFXLoss: true,
}
