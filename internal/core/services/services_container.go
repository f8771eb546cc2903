package services

import (
	"context"

	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// It fails fast when the account role table does not match the chart of accounts.
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	// The registry is validated once here so misconfiguration stops startup
	registry, err := NewAccountRegistry(ctx, repos.AccountRepo, cfg.AccountRoles.Codes())
	if err != nil {
		return nil, err
	}

	conversion := NewCurrencyConversionService(repos.ExchangeRateRepo, repos.CurrencyRepo)
	if _, err := conversion.BaseCurrency(ctx); err != nil {
		return nil, err
	}

	gate := NewImmutabilityValidator()
	fx := NewFXGainLossCalculator(registry)
	reversal := NewReversalService(repos.UnitOfWork, gate)

	container := &portssvc.ServiceContainer{
		Accounts:   registry,
		Conversion: conversion,
		Posting:    NewPostingService(repos.UnitOfWork, registry, conversion, fx, gate),
		Reversal:   reversal,
		Document:   NewDocumentService(repos.DocumentRepo, repos.UnitOfWork, gate),
		Journal:    NewJournalService(repos.JournalRepo),
		Tax:        NewTaxAccrualService(repos.UnitOfWork, registry, conversion, reversal),
	}
	return container, nil
}
