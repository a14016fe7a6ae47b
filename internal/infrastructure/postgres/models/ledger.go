package models

import (
	"time"

	"github.com/edubaze/paystack-recon-service/internal/domain"
)

// LedgerEntryModel mirrors the Paystack Log schema external tooling queries.
// The unique index on Reference is the synchronization point for concurrent
// webhook and poll deliveries of the same transaction.
type LedgerEntryModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	Reference        string `gorm:"uniqueIndex:idx_ledger_reference;not null"`
	Amount           float64
	Currency         string
	Message          string
	Status           domain.TransactionStatus `gorm:"index:idx_ledger_status"`
	PaymentRequest   string
	ReferenceDoctype string
	ReferenceName    string
	TransactionID    int64
	Data             string `gorm:"type:jsonb"`
	CreatedAt        time.Time
}
