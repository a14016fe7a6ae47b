package main

import (
	"context"
	"fmt"
	"log"

	"github.com/edubaze/paystack-recon-service/internal/app/background"
	"github.com/edubaze/paystack-recon-service/internal/config"
	"github.com/edubaze/paystack-recon-service/internal/delivery/httpapi"
	publisher "github.com/edubaze/paystack-recon-service/internal/infrastructure/kafka"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/mailer"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/metrics"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/migrate"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/paystack"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/repository"
	"github.com/edubaze/paystack-recon-service/internal/usecase"
	"github.com/edubaze/paystack-recon-service/internal/usecase/recon"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ReconDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ReconDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka payment events publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	paymentPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init repositories
	ledgerRepo := repository.NewDefaultLedgerRepository(db)
	documentStore := repository.NewDefaultDocumentStore(db)
	catalogRepo := repository.NewDefaultCatalogRepository(db)

	// Init external collaborators
	gatewayClient := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.VerifyTimeout)
	httpMailer := mailer.NewHTTPMailer(fmt.Sprintf("%s:%s", cfg.MailerService.Host, cfg.MailerService.Port))

	reconMetrics := metrics.NewReconMetrics()

	// Init recon usecase
	reconUsecase := recon.NewDefaultReconUsecase(
		ledgerRepo,
		documentStore,
		catalogRepo,
		gatewayClient,
		httpMailer,
		paymentPublisher,
		reconMetrics,
	)
	// Init payment request usecase
	paymentRequestUsecase := usecase.NewDefaultPaymentRequestUsecase(documentStore)

	// Background workers for poll-triggered verification
	dispatcher := background.NewDispatcher(reconUsecase, cfg.WorkerPool.Workers, cfg.WorkerPool.QueueSize)
	dispatcher.Start(context.Background())

	paystackHandler := httpapi.NewPaystackHandler(reconUsecase, dispatcher)
	paymentRequestHandler := httpapi.NewPaymentRequestHandler(paymentRequestUsecase)
	router := httpapi.NewRouter(paystackHandler, paymentRequestHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
