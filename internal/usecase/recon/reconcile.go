package recon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	publisher "github.com/edubaze/paystack-recon-service/internal/infrastructure/kafka"
	recondto "github.com/edubaze/paystack-recon-service/internal/usecase/dto/recon"
	"github.com/google/uuid"
)

// Reconcile authoritatively verifies a transaction reference with the
// provider, records it at most once, settles the originating payment request
// and dispatches enrollment mail for successful payments. Both entry points
// (webhook and poll) go through here with the same contract.
func (uc *DefaultReconUsecase) Reconcile(ctx context.Context, input *recondto.ReconcileInput) (*recondto.ReconcileOutput, error) {
	settings, err := uc.Documents.GetGatewaySettings(ctx, input.Gateway)
	if err != nil {
		uc.Metrics.RecordError("gateway_settings")
		return nil, fmt.Errorf("resolve gateway credentials: %w", err)
	}

	start := time.Now()
	result, err := uc.Gateway.Verify(ctx, input.Reference, settings.SecretKey)
	uc.Metrics.RecordVerification(input.Gateway, verifyOutcome(err), time.Since(start).Seconds())
	if err != nil {
		// Terminal for this invocation. No ledger write happened, so a later
		// provider retry starts from a clean slate.
		return nil, err
	}

	entry := &domain.LedgerEntry{
		ID:        uuid.NewString(),
		Reference: result.Reference,
		// Provider reports minor units
		Amount:           float64(result.AmountMinor) / 100,
		Currency:         result.Currency,
		Message:          result.Message,
		Status:           result.Status,
		PaymentRequest:   result.Metadata.Docname,
		ReferenceDoctype: result.Metadata.ReferenceDoctype,
		ReferenceName:    result.Metadata.ReferenceName,
		TransactionID:    result.TransactionID,
		Data:             result.RawPayload,
		CreatedAt:        time.Now(),
	}

	created, existing, err := uc.Ledger.CreateIfAbsent(ctx, entry)
	if err != nil {
		uc.Metrics.RecordError("ledger_write")
		return nil, fmt.Errorf("record transaction %s: %w", result.Reference, err)
	}
	if !created {
		// Duplicate delivery. The invocation that created the entry owns all
		// downstream effects.
		uc.Metrics.RecordDuplicateDelivery()
		slog.Info("duplicate transaction delivery",
			"reference", result.Reference,
			"status", string(result.Status))
		return &recondto.ReconcileOutput{Created: false, Entry: existing}, nil
	}
	uc.Metrics.RecordLedgerEntryCreated(string(result.Status), result.Currency)

	if err := uc.Documents.SettlePayment(ctx, result.Metadata.Docname, result.Metadata.Doctype, result.Metadata.Docname); err != nil {
		uc.Metrics.RecordError("settlement")
		return nil, fmt.Errorf("settle payment request %s: %w", result.Metadata.Docname, err)
	}
	uc.Metrics.RecordSettlement(string(result.Status))

	go func(event publisher.PaymentEvent) {
		if err := uc.Publisher.PublishPayment(event); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "reference", event.Reference, "error", err.Error())
		}
	}(publisher.PaymentEvent{
		Reference:      entry.Reference,
		PaymentRequest: entry.PaymentRequest,
		Status:         string(entry.Status),
		Amount:         entry.Amount,
		Currency:       entry.Currency,
	})

	mailSent := false
	if result.Status == domain.TxStatusSuccess {
		mailSent, err = uc.fulfill(ctx, result)
		if err != nil {
			// Settlement is authoritative regardless of notification outcome.
			uc.Metrics.RecordFulfillmentMail(fulfillOutcome(err))
			slog.Warn("enrollment fulfillment failed",
				"reference", result.Reference,
				"sales_order", result.Metadata.ReferenceName,
				"error", err.Error())
		} else if mailSent {
			uc.Metrics.RecordFulfillmentMail("sent")
		} else {
			uc.Metrics.RecordFulfillmentMail("no_match")
		}
	}

	return &recondto.ReconcileOutput{Created: true, Entry: entry, MailSent: mailSent}, nil
}

func verifyOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrGatewayTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	default:
		return "gateway_error"
	}
}

func fulfillOutcome(err error) string {
	if errors.Is(err, domain.ErrMissingCustomerEmail) {
		return "no_email"
	}
	return "failed"
}
