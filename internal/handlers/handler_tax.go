package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/SscSPs/gl_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxHandler handles corporate tax accrual and filing requests.
type taxHandler struct {
	taxService portssvc.TaxAccrualSvcFacade
}

func registerTaxRoutes(rg *gin.RouterGroup, ts portssvc.TaxAccrualSvcFacade) {
	h := &taxHandler{taxService: ts}

	tax := rg.Group("/tax")
	{
		tax.POST("/accruals", h.accrue)
		tax.POST("/filings/:filingID/file", h.fileReturn)
		tax.POST("/filings/:filingID/reverse", h.reverseFiling)
	}
}

// accrue godoc
// @Summary Accrue corporate tax
// @Description Computes profit for the period from posted journals and posts the tax accrual
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   accrual body dto.AccrueTaxRequest true "Country and period"
// @Success 201 {object} dto.AccrueTaxResponse
// @Success 200 {object} dto.AccrueTaxResponse "Already accrued or nothing to accrue"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Period already filed"
// @Failure 500 {object} map[string]string "No active tax rule for the country, or failed to accrue"
// @Security BearerAuth
// @Router /tax/accruals [post]
func (h *taxHandler) accrue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AccrueTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AccrueTax", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	accrual, err := h.taxService.Accrue(c.Request.Context(), req.ToServiceRequest(), userID)
	if err != nil {
		respondError(c, err, "accrue corporate tax")
		return
	}

	logger.Info("Corporate tax accrual processed",
		slog.String("country", req.Country),
		slog.String("tax", accrual.TaxAmount.StringFixed(2)),
		slog.Bool("created", accrual.Created))
	c.JSON(createdOrOK(accrual.Created), dto.ToAccrueTaxResponse(accrual))
}

// fileReturn godoc
// @Summary File a corporate tax return
// @Description Marks an ACCRUED filing as FILED
// @Tags tax
// @Produce  json
// @Param   filingID path string true "Filing ID"
// @Success 200 {object} dto.FilingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Filing not found"
// @Failure 409 {object} map[string]string "Filing is not ACCRUED"
// @Failure 500 {object} map[string]string "Failed to file corporate tax return"
// @Security BearerAuth
// @Router /tax/filings/{filingID}/file [post]
func (h *taxHandler) fileReturn(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	filing, err := h.taxService.FileReturn(c.Request.Context(), c.Param("filingID"), userID)
	if err != nil {
		respondError(c, err, "file corporate tax return")
		return
	}
	c.JSON(http.StatusOK, dto.ToFilingResponse(filing))
}

// reverseFiling accepts an empty body; {"override": true} is needed for FILED returns.
// @Summary Reverse a corporate tax filing
// @Description Posts the mirror of the accrual entry and marks the filing REVERSED
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   filingID path string true "Filing ID"
// @Param   reversal body dto.ReverseFilingRequest false "Override for FILED returns"
// @Success 200 {object} dto.FilingResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Filing not found"
// @Failure 409 {object} map[string]string "Filing is FILED without override, or already reversed"
// @Failure 500 {object} map[string]string "Failed to reverse corporate tax filing"
// @Security BearerAuth
// @Router /tax/filings/{filingID}/reverse [post]
func (h *taxHandler) reverseFiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReverseFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for ReverseFiling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	filing, err := h.taxService.ReverseFiling(c.Request.Context(), c.Param("filingID"), req.Override, userID)
	if err != nil {
		respondError(c, err, "reverse corporate tax filing")
		return
	}
	c.JSON(http.StatusOK, dto.ToFilingResponse(filing))
}
