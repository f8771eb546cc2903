package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/SscSPs/gl_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	postingService  portssvc.PaymentPostingSvc
	reversalService portssvc.ReversalSvcFacade
}

func registerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentPostingSvc, rs portssvc.ReversalSvcFacade) {
	h := &paymentHandler{postingService: ps, reversalService: rs}

	payments := rg.Group("/payments")
	{
		payments.POST("/:paymentID/post", h.postPayment)
		payments.POST("/:paymentID/reverse", h.reversePayment)
	}
}

// postPayment godoc
// @Summary Post a payment
// @Description Settles an invoice, recognising the realized FX gain or loss for foreign-currency invoices
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 201 {object} dto.PostPaymentResponse
// @Success 200 {object} dto.PostPaymentResponse "Already posted"
// @Failure 400 {object} map[string]string "Payment is invalid for the invoice"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment or invoice not found"
// @Failure 409 {object} map[string]string "Invoice is not POSTED or a concurrent posting won"
// @Failure 422 {object} map[string]string "No exchange rate for the payment date"
// @Failure 500 {object} map[string]string "Failed to post payment"
// @Security BearerAuth
// @Router /payments/{paymentID}/post [post]
func (h *paymentHandler) postPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	result, err := h.postingService.PostPayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		respondError(c, err, "post payment")
		return
	}

	attrs := []any{
		slog.String("payment_id", paymentID),
		slog.String("journal_id", result.Entry.JournalID),
		slog.Bool("created", result.Created),
	}
	if result.Payment.FXAmount != nil {
		attrs = append(attrs, slog.String("fx_amount", result.Payment.FXAmount.StringFixed(2)))
	}
	logger.Info("Payment posted", attrs...)
	c.JSON(createdOrOK(result.Created), dto.ToPostPaymentResponse(result))
}

// reversePayment godoc
// @Summary Reverse a posted payment
// @Description Posts the mirror entry and restores the invoice's open balance
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 201 {object} dto.ReversePaymentResponse
// @Success 200 {object} dto.ReversePaymentResponse "Already reversed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is not POSTED"
// @Failure 500 {object} map[string]string "Failed to reverse payment"
// @Security BearerAuth
// @Router /payments/{paymentID}/reverse [post]
func (h *paymentHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	userID, ok := actingUser(c)
	if !ok {
		return
	}

	result, err := h.reversalService.ReversePayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		respondError(c, err, "reverse payment")
		return
	}

	logger.Info("Payment reversed", slog.String("payment_id", paymentID), slog.Bool("created", result.Created))
	c.JSON(createdOrOK(result.Created), dto.ToReversePaymentResponse(result))
}
