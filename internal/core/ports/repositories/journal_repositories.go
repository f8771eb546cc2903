package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// ListJournalsParams filters and pages journal listings.
type ListJournalsParams struct {
	SourceType domain.SourceType
	SourceID   string
	Limit      int
	NextToken  *string
}

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalByID retrieves an entry with its lines ordered by position
	FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ListJournals retrieves entries newest first, with their lines.
	// The returned token is nil when there are no more pages.
	ListJournals(ctx context.Context, params ListJournalsParams) ([]domain.JournalEntry, *string, error)

	// SumPostedActivityByAccountType totals debits and credits of posted lines
	// dated within [from, to], grouped by account type. Entries whose source
	// type is in exclude are skipped.
	SumPostedActivityByAccountType(ctx context.Context, from, to time.Time, exclude []domain.SourceType) ([]domain.AccountTypeActivity, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveJournalEntry inserts a posted entry and all of its lines
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
