package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReconMetrics covers the verification and settlement pipeline.
type ReconMetrics struct {
	// Provider verify calls
	VerificationsTotal prometheus.CounterVec
	VerifyDuration     prometheus.HistogramVec

	// Ledger writes
	LedgerEntriesCreatedTotal prometheus.CounterVec
	DuplicateDeliveriesTotal  prometheus.Counter

	// Settlement and fulfillment
	SettlementsTotal      prometheus.CounterVec
	FulfillmentMailsTotal prometheus.CounterVec

	// Errors along the reconcile path
	ReconErrorsTotal prometheus.CounterVec
}

func NewReconMetrics() *ReconMetrics {
	return &ReconMetrics{
		VerificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paystack_verifications_total",
				Help: "Provider verify calls by outcome",
			},
			[]string{"gateway", "outcome"},
		),

		VerifyDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paystack_verify_duration_seconds",
				Help:    "Duration of provider verify round trips",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"gateway"},
		),

		LedgerEntriesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_ledger_entries_created_total",
				Help: "First-time ledger records by transaction status",
			},
			[]string{"status", "currency"},
		),

		DuplicateDeliveriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recon_duplicate_deliveries_total",
				Help: "Deliveries that found an existing ledger record and became no-ops",
			},
		),

		SettlementsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_settlements_total",
				Help: "Payment requests marked Completed",
			},
			[]string{"status"},
		),

		FulfillmentMailsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_fulfillment_mails_total",
				Help: "Enrollment mail dispatches by outcome",
			},
			[]string{"outcome"},
		),

		ReconErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_errors_total",
				Help: "Reconciliation failures by error type",
			},
			[]string{"error_type"},
		),
	}
}

func (m *ReconMetrics) RecordVerification(gateway, outcome string, durationSeconds float64) {
	m.VerificationsTotal.WithLabelValues(gateway, outcome).Inc()
	m.VerifyDuration.WithLabelValues(gateway).Observe(durationSeconds)
}

func (m *ReconMetrics) RecordLedgerEntryCreated(status, currency string) {
	m.LedgerEntriesCreatedTotal.WithLabelValues(status, currency).Inc()
}

func (m *ReconMetrics) RecordDuplicateDelivery() {
	m.DuplicateDeliveriesTotal.Inc()
}

func (m *ReconMetrics) RecordSettlement(status string) {
	m.SettlementsTotal.WithLabelValues(status).Inc()
}

func (m *ReconMetrics) RecordFulfillmentMail(outcome string) {
	m.FulfillmentMailsTotal.WithLabelValues(outcome).Inc()
}

func (m *ReconMetrics) RecordError(errorType string) {
	m.ReconErrorsTotal.WithLabelValues(errorType).Inc()
}
