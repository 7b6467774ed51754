package main

import (
	"fmt"
	"log"

	"novabill/internal/config"
	"novabill/internal/domain"
	"novabill/internal/email/noop"
	"novabill/internal/email/ses"
	"novabill/internal/handler"
	"novabill/internal/port"
	"novabill/internal/render"
	"novabill/internal/repository/postgres"
	"novabill/internal/router"
	"novabill/internal/service"
	noopstorage "novabill/internal/storage/noop"
	s3storage "novabill/internal/storage/s3"
)

// @title NovaBill API
// @version 1.0
// @description Invoice management backend with derived totals, sequential numbering, and PDF rendering.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
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
	invoiceRepo := postgres.NewInvoiceRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize email delivery
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

	// Initialize document archive
	var archive port.DocumentArchive
	switch cfg.Archive.Provider {
	case "s3":
		archive, err = s3storage.NewS3Archive(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 archive: %w", err)
		}
	default:
		archive = noopstorage.NewNoopArchive()
	}

	issuer := domain.Issuer{Name: cfg.Issuer.Name, Address: cfg.Issuer.Address}
	renderer := render.NewPDFRenderer()

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, service.ComputeDefaults{
		TaxRate:  cfg.Invoice.DefaultTaxRate,
		Currency: cfg.Invoice.DefaultCurrency,
	})
	clientSvc := service.NewClientService(clientRepo)
	statsSvc := service.NewStatsService(statsRepo)
	documentSvc := service.NewDocumentService(invoiceRepo, clientRepo, renderer, emailSender, archive, issuer, cfg.Archive.Prefix)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, documentSvc)
	clientH := handler.NewClientHandler(clientSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(invoiceH, clientH, statsH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
