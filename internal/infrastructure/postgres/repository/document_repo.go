package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/mappers"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultDocumentStore reads the shop's documents and applies the settlement
// transition. It implements domain.DocumentStore.
type DefaultDocumentStore struct {
	DB *gorm.DB
}

func NewDefaultDocumentStore(db *gorm.DB) *DefaultDocumentStore {
	return &DefaultDocumentStore{DB: db}
}

func (r *DefaultDocumentStore) GetPaymentRequest(ctx context.Context, name string) (*domain.PaymentRequest, error) {
	var model models.PaymentRequestModel
	if err := r.DB.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment request %s: %w", name, domain.ErrMissingAssociatedDocument)
		}
		return nil, err
	}
	return mappers.ToDomainPaymentRequest(&model), nil
}

func (r *DefaultDocumentStore) GetIntegrationRequest(ctx context.Context, refDoctype, refDocname string) (*domain.IntegrationRequest, error) {
	var model models.IntegrationRequestModel
	if err := r.DB.WithContext(ctx).
		First(&model, "reference_doctype = ? AND reference_docname = ?", refDoctype, refDocname).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("integration request %s/%s: %w", refDoctype, refDocname, domain.ErrMissingAssociatedDocument)
		}
		return nil, err
	}
	return mappers.ToDomainIntegrationRequest(&model), nil
}

func (r *DefaultDocumentStore) GetSalesOrder(ctx context.Context, name string) (*domain.SalesOrder, error) {
	var model models.SalesOrderModel
	if err := r.DB.WithContext(ctx).Preload("Items").First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sales order %s: %w", name, domain.ErrMissingAssociatedDocument)
		}
		return nil, err
	}
	return mappers.ToDomainSalesOrder(&model), nil
}

func (r *DefaultDocumentStore) GetGatewaySettings(ctx context.Context, gateway string) (*domain.GatewaySettings, error) {
	var model models.GatewaySettingsModel
	if err := r.DB.WithContext(ctx).First(&model, "name = ?", gateway).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gateway settings %s: %w", gateway, domain.ErrMissingAssociatedDocument)
		}
		return nil, err
	}
	return mappers.ToDomainGatewaySettings(&model), nil
}

// SettlePayment commits both status transitions together. Either both
// documents move to Completed or neither does.
func (r *DefaultDocumentStore) SettlePayment(ctx context.Context, paymentRequestName, refDoctype, refDocname string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paymentRequest models.PaymentRequestModel
		if err := tx.First(&paymentRequest, "name = ?", paymentRequestName).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("payment request %s: %w", paymentRequestName, domain.ErrMissingAssociatedDocument)
			}
			return err
		}

		var integrationRequest models.IntegrationRequestModel
		if err := tx.First(&integrationRequest, "reference_doctype = ? AND reference_docname = ?", refDoctype, refDocname).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("integration request %s/%s: %w", refDoctype, refDocname, domain.ErrMissingAssociatedDocument)
			}
			return err
		}

		if err := tx.Model(&paymentRequest).Update("status", domain.DocStatusCompleted).Error; err != nil {
			return err
		}
		return tx.Model(&integrationRequest).Update("status", domain.DocStatusCompleted).Error
	})
}
