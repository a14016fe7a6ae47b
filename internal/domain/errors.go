package domain

import "errors"

var (
	ErrGateway                   = errors.New("gateway verification failed")
	ErrGatewayTimeout            = errors.New("gateway verification timed out")
	ErrMalformedResponse         = errors.New("malformed gateway response")
	ErrMissingAssociatedDocument = errors.New("associated document not found")
	ErrMissingCustomerEmail      = errors.New("no customer email found for sales order")
	ErrNotInwardPaymentRequest   = errors.New("only inward payment allowed")
)
