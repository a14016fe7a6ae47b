package publisher

// PaymentEvent is published to the payment-events topic on every first-time
// reconciliation of a transaction reference.
type PaymentEvent struct {
	Reference      string  `json:"reference"`
	PaymentRequest string  `json:"payment_request"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}
