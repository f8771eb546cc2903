package services

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
)

// DocumentReaderSvc defines read operations for source documents
type DocumentReaderSvc interface {
	GetDocument(ctx context.Context, documentID string) (*domain.SourceDocument, error)
}

// DocumentWriterSvc is the external write path for source documents.
// Every write passes the immutability gate.
type DocumentWriterSvc interface {
	// SaveDocument creates the document when documentID is unknown, otherwise
	// applies the proposed state to the persisted one.
	SaveDocument(ctx context.Context, proposed domain.SourceDocument, userID string) (*domain.SourceDocument, error)
}

// DocumentSvcFacade combines all document operations
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
