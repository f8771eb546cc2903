package services

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// AccrueTaxRequest identifies the country and period to accrue.
type AccrueTaxRequest struct {
	Country     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	// Override allows re-accruing a period whose filing is already FILED.
	Override bool
}

// TaxAccrualSvcFacade accrues, files and reverses corporate tax.
type TaxAccrualSvcFacade interface {
	Accrue(ctx context.Context, req AccrueTaxRequest, userID string) (*domain.TaxAccrual, error)
	FileReturn(ctx context.Context, filingID, userID string) (*domain.CorporateTaxFiling, error)
	ReverseFiling(ctx context.Context, filingID string, override bool, userID string) (*domain.CorporateTaxFiling, error)
}
