package repository

import (
	"context"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/mappers"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) ListCourseProvisions(ctx context.Context) ([]domain.CourseProvision, error) {
	var rows []models.CourseSettingModel
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	provisions := make([]domain.CourseProvision, 0, len(rows))
	for i := range rows {
		provisions = append(provisions, mappers.ToDomainCourseProvision(&rows[i]))
	}
	return provisions, nil
}
