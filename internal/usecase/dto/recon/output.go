package recondto

import "github.com/edubaze/paystack-recon-service/internal/domain"

type ReconcileOutput struct {
	// Created is false when the ledger already held this reference and the
	// invocation was a no-op.
	Created  bool
	Entry    *domain.LedgerEntry
	MailSent bool
}
