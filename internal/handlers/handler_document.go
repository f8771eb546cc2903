package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/SscSPs/gl_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests related to source documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
	postingService  portssvc.InvoicePostingSvc
	reversalService portssvc.ReversalSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade, ps portssvc.InvoicePostingSvc, rs portssvc.ReversalSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds, postingService: ps, reversalService: rs}
}

// registerDocumentRoutes registers routes related to source documents.
func registerDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade, ps portssvc.InvoicePostingSvc, rs portssvc.ReversalSvcFacade) {
	h := newDocumentHandler(ds, ps, rs)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("/:documentID", h.getDocument)
		documents.PUT("/:documentID", h.saveDocument)
		documents.POST("/:documentID/post", h.postDocument)
		documents.POST("/:documentID/reverse", h.reverseDocument)
	}
}

// createDocument godoc
// @Summary Create a draft document
// @Description Creates a DRAFT customer or supplier invoice with its line items
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.SaveDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save document"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	h.save(c, "")
}

// saveDocument godoc
// @Summary Update a document
// @Description Replaces a DRAFT document. Once posted only settlement and audit fields may change.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   document body dto.SaveDocumentRequest true "Document details"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is immutable or in the wrong state"
// @Failure 500 {object} map[string]string "Failed to save document"
// @Security BearerAuth
// @Router /documents/{documentID} [put]
func (h *documentHandler) saveDocument(c *gin.Context) {
	h.save(c, c.Param("documentID"))
}

func (h *documentHandler) save(c *gin.Context, documentID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	doc, err := h.documentService.SaveDocument(c.Request.Context(), req.ToDomain(documentID), userID)
	if err != nil {
		respondError(c, err, "save document")
		return
	}

	logger.Info("Document saved", slog.String("document_id", doc.DocumentID))
	status := http.StatusOK
	if documentID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a document by ID
// @Description Retrieves a source document with its lines and posting state
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondError(c, err, "retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// postDocument posts a draft invoice. A repeat call answers 200 with the
// entry created by the first call.
// @Summary Post an invoice
// @Description Creates the balanced journal entry for a DRAFT invoice and marks it POSTED
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 201 {object} dto.PostDocumentResponse
// @Success 200 {object} dto.PostDocumentResponse "Already posted"
// @Failure 400 {object} map[string]string "Document is not postable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is in the wrong state or a concurrent posting won"
// @Failure 422 {object} map[string]string "No exchange rate for the document date"
// @Failure 500 {object} map[string]string "Failed to post document"
// @Security BearerAuth
// @Router /documents/{documentID}/post [post]
func (h *documentHandler) postDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	result, err := h.postingService.PostInvoice(c.Request.Context(), documentID, userID)
	if err != nil {
		respondError(c, err, "post document")
		return
	}

	logger.Info("Document posted",
		slog.String("document_id", documentID),
		slog.String("journal_id", result.Entry.JournalID),
		slog.Bool("created", result.Created))
	c.JSON(createdOrOK(result.Created), dto.ToPostDocumentResponse(result))
}

// reverseDocument godoc
// @Summary Reverse a posted invoice
// @Description Creates a reversal document and the mirror journal entry, and marks the original REVERSED
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 201 {object} dto.ReverseDocumentResponse
// @Success 200 {object} dto.ReverseDocumentResponse "Already reversed"
// @Failure 400 {object} map[string]string "Document is itself a reversal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is not POSTED or is already settled in part"
// @Failure 500 {object} map[string]string "Failed to reverse document"
// @Security BearerAuth
// @Router /documents/{documentID}/reverse [post]
func (h *documentHandler) reverseDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	result, err := h.reversalService.ReverseDocument(c.Request.Context(), documentID, userID)
	if err != nil {
		respondError(c, err, "reverse document")
		return
	}

	logger.Info("Document reversed",
		slog.String("document_id", documentID),
		slog.String("reversal_document_id", result.Reversal.DocumentID),
		slog.Bool("created", result.Created))
	c.JSON(createdOrOK(result.Created), dto.ToReverseDocumentResponse(result))
}
