package usecase

import (
	"context"
	"fmt"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	prdto "github.com/edubaze/paystack-recon-service/internal/usecase/dto/paymentrequest"
)

type PaymentRequestUsecase interface {
	GetPaymentRequestInfo(ctx context.Context, name string) (*prdto.PaymentRequestInfo, error)
}

type DefaultPaymentRequestUsecase struct {
	Documents domain.DocumentStore
}

func NewDefaultPaymentRequestUsecase(documents domain.DocumentStore) *DefaultPaymentRequestUsecase {
	return &DefaultPaymentRequestUsecase{Documents: documents}
}

// GetPaymentRequestInfo resolves everything the payment page needs to open a
// checkout. Only Inward payment requests may be paid through this surface.
func (uc *DefaultPaymentRequestUsecase) GetPaymentRequestInfo(ctx context.Context, name string) (*prdto.PaymentRequestInfo, error) {
	paymentRequest, err := uc.Documents.GetPaymentRequest(ctx, name)
	if err != nil {
		return nil, err
	}

	if paymentRequest.Type != domain.PaymentRequestTypeInward {
		return nil, fmt.Errorf("payment request %s: %w", name, domain.ErrNotInwardPaymentRequest)
	}

	settings, err := uc.Documents.GetGatewaySettings(ctx, paymentRequest.Gateway)
	if err != nil {
		return nil, err
	}

	return &prdto.PaymentRequestInfo{
		Name:      paymentRequest.Name,
		Email:     paymentRequest.EmailTo,
		Currency:  paymentRequest.Currency,
		Status:    paymentRequest.Status,
		PublicKey: settings.PublicKey,
		Metadata: prdto.PaymentRequestMetadata{
			Doctype:          "Payment Request",
			Docname:          paymentRequest.Name,
			ReferenceDoctype: paymentRequest.ReferenceDoctype,
			ReferenceName:    paymentRequest.ReferenceName,
			Gateway:          paymentRequest.Gateway,
		},
	}, nil
}
