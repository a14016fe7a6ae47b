package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/mappers"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

// CreateIfAbsent relies on the unique index on reference: the insert and the
// duplicate check are a single statement, so concurrent writers for the same
// reference cannot both observe "absent". The loser gets created=false and the
// winner's row.
func (r *DefaultLedgerRepository) CreateIfAbsent(ctx context.Context, entry *domain.LedgerEntry) (bool, *domain.LedgerEntry, error) {
	model := mappers.ToGORMLedgerEntry(entry)

	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reference"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		return false, nil, fmt.Errorf("insert ledger entry: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		existing, err := r.GetByReference(ctx, entry.Reference)
		if err != nil {
			return false, nil, err
		}
		return false, existing, nil
	}

	return true, mappers.ToDomainLedgerEntry(model), nil
}

func (r *DefaultLedgerRepository) GetByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	var model models.LedgerEntryModel
	if err := r.DB.WithContext(ctx).First(&model, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ledger entry %s: %w", reference, domain.ErrMissingAssociatedDocument)
		}
		return nil, err
	}
	return mappers.ToDomainLedgerEntry(&model), nil
}
