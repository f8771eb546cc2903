package repositories

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// DocumentReader defines read operations for source documents
type DocumentReader interface {
	// FindDocumentByID retrieves a document with its lines
	FindDocumentByID(ctx context.Context, documentID string) (*domain.SourceDocument, error)
}

// DocumentLocker takes an exclusive row lock on a document for the rest of
// the enclosing transaction.
type DocumentLocker interface {
	FindDocumentForUpdate(ctx context.Context, documentID string) (*domain.SourceDocument, error)
}

// DocumentWriter defines write operations for source documents.
// Callers must pass every write through the immutability gate first.
type DocumentWriter interface {
	// SaveDocument inserts a new document and its lines
	SaveDocument(ctx context.Context, doc domain.SourceDocument) error

	// UpdateDocument replaces the header and lines of an existing document
	UpdateDocument(ctx context.Context, doc domain.SourceDocument) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentRepositoryWithLock is the transactional view of documents.
type DocumentRepositoryWithLock interface {
	DocumentRepositoryFacade
	DocumentLocker
}
