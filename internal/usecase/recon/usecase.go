package recon

import (
	"context"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	publisher "github.com/edubaze/paystack-recon-service/internal/infrastructure/kafka"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/metrics"
	recondto "github.com/edubaze/paystack-recon-service/internal/usecase/dto/recon"
)

type ReconUsecase interface {
	Reconcile(ctx context.Context, input *recondto.ReconcileInput) (*recondto.ReconcileOutput, error)
}

// GatewayClient is the outbound verification port. The Paystack client in
// infrastructure implements it.
type GatewayClient interface {
	Verify(ctx context.Context, reference, secretKey string) (*domain.VerificationResult, error)
}

type PaymentEventPublisher interface {
	PublishPayment(event publisher.PaymentEvent) error
}

type DefaultReconUsecase struct {
	Ledger    domain.LedgerRepository
	Documents domain.DocumentStore
	Catalog   domain.CatalogRepository
	Gateway   GatewayClient
	Mailer    domain.MailerPort
	Publisher PaymentEventPublisher
	Metrics   *metrics.ReconMetrics
}

func NewDefaultReconUsecase(
	ledger domain.LedgerRepository,
	documents domain.DocumentStore,
	catalog domain.CatalogRepository,
	gateway GatewayClient,
	mailer domain.MailerPort,
	eventPublisher PaymentEventPublisher,
	reconMetrics *metrics.ReconMetrics) *DefaultReconUsecase {

	return &DefaultReconUsecase{
		Ledger:    ledger,
		Documents: documents,
		Catalog:   catalog,
		Gateway:   gateway,
		Mailer:    mailer,
		Publisher: eventPublisher,
		Metrics:   reconMetrics,
	}
}
