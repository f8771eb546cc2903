package config

import (
	"log"
	"strings"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	JWTSecret          string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
	MigrationsPath     string
	AccountRoles       AccountRoles
}

// AccountRoles maps each posting role to an account code of the chart of accounts.
// FXGain and FXLoss may be empty; posting an FX difference then fails.
type AccountRoles struct {
	Receivable string `mapstructure:"GL_ACCOUNT_AR"`
	Revenue    string `mapstructure:"GL_ACCOUNT_REVENUE"`
	VATOutput  string `mapstructure:"GL_ACCOUNT_VAT_OUTPUT"`
	Payable    string `mapstructure:"GL_ACCOUNT_AP"`
	Expense    string `mapstructure:"GL_ACCOUNT_EXPENSE"`
	VATInput   string `mapstructure:"GL_ACCOUNT_VAT_INPUT"`
	Bank       string `mapstructure:"GL_ACCOUNT_BANK"`
	FXGain     string `mapstructure:"GL_ACCOUNT_FX_GAIN"`
	FXLoss     string `mapstructure:"GL_ACCOUNT_FX_LOSS"`
	TaxExpense string `mapstructure:"GL_ACCOUNT_TAX_EXPENSE"`
	TaxPayable string `mapstructure:"GL_ACCOUNT_TAX_PAYABLE"`
}

// DefaultAccountRoles is the role table shipped with the default chart of accounts.
func DefaultAccountRoles() AccountRoles {
	return AccountRoles{
		Receivable: "1100",
		Revenue:    "4000",
		VATOutput:  "2200",
		Payable:    "2100",
		Expense:    "5000",
		VATInput:   "1400",
		Bank:       "1000",
		FXGain:     "4900",
		FXLoss:     "5900",
		TaxExpense: "5800",
		TaxPayable: "2300",
	}
}

// Codes returns the role table keyed by role.
func (r AccountRoles) Codes() map[domain.AccountRole]string {
	return map[domain.AccountRole]string{
		domain.RoleReceivable: r.Receivable,
		domain.RoleRevenue:    r.Revenue,
		domain.RoleVATOutput:  r.VATOutput,
		domain.RolePayable:    r.Payable,
		domain.RoleExpense:    r.Expense,
		domain.RoleVATInput:   r.VATInput,
		domain.RoleBank:       r.Bank,
		domain.RoleFXGain:     r.FXGain,
		domain.RoleFXLoss:     r.FXLoss,
		domain.RoleTaxExpense: r.TaxExpense,
		domain.RoleTaxPayable: r.TaxPayable,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")

	defaults := DefaultAccountRoles()
	v.SetDefault("GL_ACCOUNT_AR", defaults.Receivable)
	v.SetDefault("GL_ACCOUNT_REVENUE", defaults.Revenue)
	v.SetDefault("GL_ACCOUNT_VAT_OUTPUT", defaults.VATOutput)
	v.SetDefault("GL_ACCOUNT_AP", defaults.Payable)
	v.SetDefault("GL_ACCOUNT_EXPENSE", defaults.Expense)
	v.SetDefault("GL_ACCOUNT_VAT_INPUT", defaults.VATInput)
	v.SetDefault("GL_ACCOUNT_BANK", defaults.Bank)
	v.SetDefault("GL_ACCOUNT_FX_GAIN", defaults.FXGain)
	v.SetDefault("GL_ACCOUNT_FX_LOSS", defaults.FXLoss)
	v.SetDefault("GL_ACCOUNT_TAX_EXPENSE", defaults.TaxExpense)
	v.SetDefault("GL_ACCOUNT_TAX_PAYABLE", defaults.TaxPayable)

	v.AllowEmptyEnv(true) // an empty GL_ACCOUNT_FX_* unmaps the role
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	// AutomaticEnv does not feed Unmarshal, so read each role key explicitly.
	cfg.AccountRoles = AccountRoles{
		Receivable: v.GetString("GL_ACCOUNT_AR"),
		Revenue:    v.GetString("GL_ACCOUNT_REVENUE"),
		VATOutput:  v.GetString("GL_ACCOUNT_VAT_OUTPUT"),
		Payable:    v.GetString("GL_ACCOUNT_AP"),
		Expense:    v.GetString("GL_ACCOUNT_EXPENSE"),
		VATInput:   v.GetString("GL_ACCOUNT_VAT_INPUT"),
		Bank:       v.GetString("GL_ACCOUNT_BANK"),
		FXGain:     v.GetString("GL_ACCOUNT_FX_GAIN"),
		FXLoss:     v.GetString("GL_ACCOUNT_FX_LOSS"),
		TaxExpense: v.GetString("GL_ACCOUNT_TAX_EXPENSE"),
		TaxPayable: v.GetString("GL_ACCOUNT_TAX_PAYABLE"),
	}

	return cfg, nil
}
