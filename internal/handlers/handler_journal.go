package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/SscSPs/gl_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, js portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: js}

	journals := rg.Group("/journals")
	{
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
	}
}

// getJournal godoc
// @Summary Get a journal entry by ID
// @Description Retrieves a journal entry with its lines and totals
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	entry, err := h.journalService.GetJournal(c.Request.Context(), journalID)
	if err != nil {
		respondError(c, err, "retrieve journal")
		return
	}

	logger.Debug("Journal retrieved successfully", slog.String("journal_id", journalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists journal entries newest first, optionally filtered by source
// @Tags journals
// @Produce  json
// @Param   sourceType query string false "Source type" Enums(CUSTOMER_INVOICE, SUPPLIER_INVOICE, PAYMENT, TAX_ACCRUAL)
// @Param   sourceID query string false "Source document, payment or filing ID"
// @Param   limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or page token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	repoParams := portsrepo.ListJournalsParams{
		SourceType: domain.SourceType(params.SourceType),
		SourceID:   params.SourceID,
		Limit:      params.Limit,
	}
	if params.NextToken != "" {
		repoParams.NextToken = &params.NextToken
	}

	entries, next, err := h.journalService.ListJournals(c.Request.Context(), repoParams)
	if err != nil {
		respondError(c, err, "list journals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalsResponse(entries, next))
}
