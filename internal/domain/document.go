package domain

import "context"

const (
	PaymentRequestTypeInward  = "Inward"
	PaymentRequestTypeOutward = "Outward"

	DocStatusCompleted = "Completed"
)

type PaymentRequest struct {
	Name             string
	Type             string
	Status           string
	EmailTo          string
	Currency         string
	Gateway          string
	ReferenceDoctype string
	ReferenceName    string
}

type IntegrationRequest struct {
	ID               string
	ReferenceDoctype string
	ReferenceDocname string
	Status           string
}

type OrderLineItem struct {
	ItemCode string
	Qty      int32
}

type SalesOrder struct {
	Name          string
	CustomerName  string
	ContactEmail  string
	CustomerEmail string
	Items         []OrderLineItem
}

// GatewaySettings holds the credential pair for one named gateway controller.
type GatewaySettings struct {
	Name      string
	SecretKey string
	PublicKey string
}

// DocumentStore is the port to the shop's document registry. The reconciliation
// core never owns these documents, it only reads them and invokes the
// settlement transition.
type DocumentStore interface {
	GetPaymentRequest(ctx context.Context, name string) (*PaymentRequest, error)
	GetIntegrationRequest(ctx context.Context, refDoctype, refDocname string) (*IntegrationRequest, error)
	GetSalesOrder(ctx context.Context, name string) (*SalesOrder, error)
	GetGatewaySettings(ctx context.Context, gateway string) (*GatewaySettings, error)

	// SettlePayment marks the payment request authorized and the matching
	// integration request Completed inside a single transaction. Returns
	// ErrMissingAssociatedDocument if either document does not exist.
	SettlePayment(ctx context.Context, paymentRequestName, refDoctype, refDocname string) error
}
