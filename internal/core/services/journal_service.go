package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
)

const (
	defaultJournalPageSize = 20
	maxJournalPageSize     = 100
)

// JournalService exposes posted journal entries read-only.
type JournalService struct {
	BaseService
	journalRepo portsrepo.JournalReader
}

var _ portssvc.JournalSvcFacade = (*JournalService)(nil)

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalReader) *JournalService {
	return &JournalService{
		BaseService: newBaseService(),
		journalRepo: journalRepo,
	}
}

// GetJournal retrieves an entry with its lines.
func (s *JournalService) GetJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal", slog.String("journal_id", journalID))
		}
		return nil, err
	}
	return entry, nil
}

// ListJournals retrieves entries newest first, optionally filtered by source.
func (s *JournalService) ListJournals(ctx context.Context, params portsrepo.ListJournalsParams) ([]domain.JournalEntry, *string, error) {
	if params.Limit <= 0 {
		params.Limit = defaultJournalPageSize
	}
	if params.Limit > maxJournalPageSize {
		params.Limit = maxJournalPageSize
	}
	if params.SourceID != "" && params.SourceType == "" {
		return nil, nil, apperrors.NewValidationError("sourceType", "sourceType is required when filtering by sourceID")
	}

	entries, next, err := s.journalRepo.ListJournals(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals")
		return nil, nil, err
	}
	return entries, next, nil
}
