package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	"github.com/edubaze/paystack-recon-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type PaymentRequestHandler struct {
	usecase usecase.PaymentRequestUsecase
}

func NewPaymentRequestHandler(uc usecase.PaymentRequestUsecase) *PaymentRequestHandler {
	return &PaymentRequestHandler{usecase: uc}
}

// GetPaymentRequest bootstraps the payment page. This is the only surface
// that returns descriptive errors to the caller: it is synchronous and
// user-initiated, so the feedback is actionable.
func (h *PaymentRequestHandler) GetPaymentRequest(c *gin.Context) {
	doctype := c.Query("reference_doctype")
	docname := c.Query("reference_docname")
	if doctype == "" || docname == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_doctype and reference_docname are required"})
		return
	}

	info, err := h.usecase.GetPaymentRequestInfo(c.Request.Context(), docname)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotInwardPaymentRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only Inward payment allowed."})
		case errors.Is(err, domain.ErrMissingAssociatedDocument):
			c.JSON(http.StatusNotFound, gin.H{"error": "payment request not found"})
		default:
			slog.Error("payment request bootstrap failed", "docname", docname, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid payment request"})
		}
		return
	}

	c.JSON(http.StatusOK, info)
}
