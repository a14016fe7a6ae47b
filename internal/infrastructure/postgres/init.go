package postgres

import (
	"log"

	"github.com/edubaze/paystack-recon-service/internal/config"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ReconConfig) *gorm.DB {
	dsn := cfg.ReconDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.LedgerEntryModel{},
		&models.PaymentRequestModel{},
		&models.IntegrationRequestModel{},
		&models.SalesOrderModel{},
		&models.SalesOrderItemModel{},
		&models.GatewaySettingsModel{},
		&models.CourseSettingModel{},
	)

	return db
}
