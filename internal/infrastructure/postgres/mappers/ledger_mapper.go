package mappers

import (
	"github.com/edubaze/paystack-recon-service/internal/domain"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/models"
)

func ToGORMLedgerEntry(entry *domain.LedgerEntry) *models.LedgerEntryModel {
	return &models.LedgerEntryModel{
		ID:               entry.ID,
		Reference:        entry.Reference,
		Amount:           entry.Amount,
		Currency:         entry.Currency,
		Message:          entry.Message,
		Status:           entry.Status,
		PaymentRequest:   entry.PaymentRequest,
		ReferenceDoctype: entry.ReferenceDoctype,
		ReferenceName:    entry.ReferenceName,
		TransactionID:    entry.TransactionID,
		Data:             entry.Data,
		CreatedAt:        entry.CreatedAt,
	}
}

func ToDomainLedgerEntry(model *models.LedgerEntryModel) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:               model.ID,
		Reference:        model.Reference,
		Amount:           model.Amount,
		Currency:         model.Currency,
		Message:          model.Message,
		Status:           model.Status,
		PaymentRequest:   model.PaymentRequest,
		ReferenceDoctype: model.ReferenceDoctype,
		ReferenceName:    model.ReferenceName,
		TransactionID:    model.TransactionID,
		Data:             model.Data,
		CreatedAt:        model.CreatedAt,
	}
}
