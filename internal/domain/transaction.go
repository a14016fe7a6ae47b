package domain

type TransactionStatus string

const (
	TxStatusSuccess TransactionStatus = "success"
	TxStatusFailed  TransactionStatus = "failed"
	TxStatusPending TransactionStatus = "pending"
)

// TransactionMetadata carries the back-references the shop embedded when it
// initiated the payment. Paystack echoes them verbatim inside the verify envelope.
type TransactionMetadata struct {
	Gateway          string
	Doctype          string
	Docname          string
	ReferenceDoctype string
	ReferenceName    string
}

// VerificationResult is the normalized outcome of a provider verify call.
// AmountMinor is in the provider's minor units (kobo for NGN).
type VerificationResult struct {
	Reference     string
	Status        TransactionStatus
	AmountMinor   int64
	Currency      string
	Message       string
	TransactionID int64
	Metadata      TransactionMetadata
	RawPayload    string
}
