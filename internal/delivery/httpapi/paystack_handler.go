package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edubaze/paystack-recon-service/internal/app/background"
	recondto "github.com/edubaze/paystack-recon-service/internal/usecase/dto/recon"
	"github.com/edubaze/paystack-recon-service/internal/usecase/recon"
	"github.com/gin-gonic/gin"
)

// PaystackHandler owns the two reconciliation entry points: the provider
// webhook and the client-initiated poll.
type PaystackHandler struct {
	usecase    recon.ReconUsecase
	dispatcher *background.Dispatcher
}

func NewPaystackHandler(uc recon.ReconUsecase, dispatcher *background.Dispatcher) *PaystackHandler {
	return &PaystackHandler{
		usecase:    uc,
		dispatcher: dispatcher,
	}
}

// webhookEnvelope is the JSON document inside the form-encoded "data" field of
// a Paystack push. Only the reference and gateway name are taken from it, the
// rest is re-fetched from the provider.
type webhookEnvelope struct {
	Reference string `json:"reference"`
	Metadata  struct {
		Gateway string `json:"gateway"`
	} `json:"metadata"`
}

// Webhook handles provider pushes synchronously. The pushed payload is never
// trusted as settlement truth: the reference is re-verified against the
// provider before anything is recorded. The response is always a generic ack,
// internal failures are logged with the raw payload for operators.
func (h *PaystackHandler) Webhook(c *gin.Context) {
	raw := c.PostForm("data")

	var envelope webhookEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil || envelope.Reference == "" {
		slog.Error("rejected malformed webhook payload", "payload", raw, "error", errString(err))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	// Detached from the request context: once reconciliation starts it runs
	// to completion, a dropped provider connection must not abort it.
	out, err := h.usecase.Reconcile(context.Background(), &recondto.ReconcileInput{
		Reference: envelope.Reference,
		Gateway:   envelope.Metadata.Gateway,
	})
	if err != nil {
		slog.Error("webhook reconciliation failed",
			"reference", envelope.Reference,
			"payload", raw,
			"error", err.Error())
	} else if !out.Created {
		slog.Info("webhook duplicate delivery", "reference", envelope.Reference)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type verifyTransactionRequest struct {
	Reference string `json:"reference"`
	Gateway   string `json:"gateway"`
}

// VerifyTransaction enqueues a background reconciliation and acknowledges
// immediately. The caller learns the outcome only through the ledger.
func (h *PaystackHandler) VerifyTransaction(c *gin.Context) {
	var request verifyTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	h.dispatcher.Submit(background.ReconJob{
		Reference: request.Reference,
		Gateway:   request.Gateway,
	})

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
