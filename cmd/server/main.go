package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"gstportal/internal/config"
	"gstportal/internal/email/noop"
	"gstportal/internal/email/ses"
	"gstportal/internal/handler"
	"gstportal/internal/port"
	"gstportal/internal/repository/postgres"
	"gstportal/internal/router"
	"gstportal/internal/service"
	s3storage "gstportal/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	ddoRepo := postgres.NewDDORepo(db)
	gstinRepo := postgres.NewGSTINRepo(db)
	bankRepo := postgres.NewBankAccountRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)
	billRepo := postgres.NewBillRepo(db)
	certRepo := postgres.NewCertificateRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// The HSN master is small enough to hold in memory for bill-entry checks.
	hsnLookup, err := service.LoadHSNLookup(context.Background(), hsnRepo)
	if err != nil {
		return fmt.Errorf("failed to load HSN master: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo, ddoRepo)
	ddoSvc := service.NewDDOService(ddoRepo)
	masterSvc := service.NewMasterService(gstinRepo, bankRepo, hsnRepo, ddoRepo)
	billSvc := service.NewBillService(billRepo, ddoRepo, hsnLookup, cfg.GST)
	certSvc := service.NewCertificateService(certRepo, ddoRepo, s3Client, emailSender, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	ddoH := handler.NewDDOHandler(ddoSvc)
	masterH := handler.NewMasterHandler(masterSvc)
	billH := handler.NewBillHandler(billSvc)
	certH := handler.NewCertificateHandler(certSvc)
	validateH := handler.NewValidateHandler()
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, userH, ddoH, masterH, billH, certH, validateH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
