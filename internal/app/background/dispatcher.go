package background

import (
	"context"
	"log/slog"

	recondto "github.com/edubaze/paystack-recon-service/internal/usecase/dto/recon"
	"github.com/edubaze/paystack-recon-service/internal/usecase/recon"
)

// ReconJob is one queued verification request from the poll endpoint.
type ReconJob struct {
	Reference string
	Gateway   string
}

// Dispatcher runs reconciliations out-of-band so the poll endpoint can
// acknowledge immediately. Completion is observable only through the ledger.
type Dispatcher struct {
	usecase recon.ReconUsecase
	jobs    chan ReconJob
	workers int
}

func NewDispatcher(uc recon.ReconUsecase, workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		usecase: uc,
		jobs:    make(chan ReconJob, queueSize),
		workers: workers,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.worker(ctx)
	}
}

// Submit queues a job without blocking the caller. A full queue drops the job:
// the provider webhook remains the authoritative delivery path.
func (d *Dispatcher) Submit(job ReconJob) bool {
	select {
	case d.jobs <- job:
		return true
	default:
		slog.Warn("reconciliation queue full, dropping job", "reference", job.Reference)
		return false
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.jobs:
			d.process(job)
		}
	}
}

func (d *Dispatcher) process(job ReconJob) {
	// Jobs run to completion even if the submitting request is long gone.
	out, err := d.usecase.Reconcile(context.Background(), &recondto.ReconcileInput{
		Reference: job.Reference,
		Gateway:   job.Gateway,
	})
	if err != nil {
		slog.Error("background reconciliation failed",
			"reference", job.Reference,
			"gateway", job.Gateway,
			"error", err.Error())
		return
	}

	slog.Info("background reconciliation finished",
		"reference", job.Reference,
		"created", out.Created,
		"mail_sent", out.MailSent)
}
