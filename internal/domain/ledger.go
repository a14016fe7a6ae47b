package domain

import (
	"context"
	"time"
)

// LedgerEntry is the durable record of a processed transaction reference.
// Exactly one entry exists per reference.
type LedgerEntry struct {
	ID               string
	Reference        string
	Amount           float64
	Currency         string
	Message          string
	Status           TransactionStatus
	PaymentRequest   string
	ReferenceDoctype string
	ReferenceName    string
	TransactionID    int64
	Data             string
	CreatedAt        time.Time
}

type LedgerRepository interface {
	// CreateIfAbsent inserts the entry unless one already exists for the same
	// reference. The duplicate case is not an error: created=false and the
	// existing entry are returned instead.
	CreateIfAbsent(ctx context.Context, entry *LedgerEntry) (created bool, existing *LedgerEntry, err error)
	GetByReference(ctx context.Context, reference string) (*LedgerEntry, error)
}
