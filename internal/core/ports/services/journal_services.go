package services

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	GetJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error)
	ListJournals(ctx context.Context, params portsrepo.ListJournalsParams) ([]domain.JournalEntry, *string, error)
}

// JournalSvcFacade combines all journal operations
type JournalSvcFacade interface {
	JournalReaderSvc
}
