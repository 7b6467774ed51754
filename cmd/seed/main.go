package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"novabill/internal/config"
	"novabill/internal/domain"
	"novabill/internal/repository/postgres"
	"novabill/internal/service"
)

// Development seed: five clients and ten invoices spread across the
// status lifecycle (4 paid, 3 sent, 2 overdue, 1 draft).

type seedInvoice struct {
	number    string
	clientIdx int
	items     []service.LineItemInput
	discount  float64
	status    domain.InvoiceStatus
	dueDate   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "DELETE FROM invoices"); err != nil {
		log.Fatalf("failed to clear invoices: %v", err)
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM clients"); err != nil {
		log.Fatalf("failed to clear clients: %v", err)
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM invoice_sequences"); err != nil {
		log.Fatalf("failed to clear invoice sequences: %v", err)
	}

	clientRepo := postgres.NewClientRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	clientSvc := service.NewClientService(clientRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, service.ComputeDefaults{
		TaxRate:  cfg.Invoice.DefaultTaxRate,
		Currency: cfg.Invoice.DefaultCurrency,
	})

	clientInputs := []service.CreateClientInput{
		{Name: "Maple Tech Inc.", Email: "billing@mapletech.ca", Address: "100 Bay Street, Suite 400, Toronto, ON M5J 2T3", Phone: "(416) 555-0101"},
		{Name: "Great Lakes Consulting", Email: "invoices@greatlakes.ca", Address: "250 University Ave, Waterloo, ON N2L 3G1", Phone: "(519) 555-0202"},
		{Name: "Pacific Digital Agency", Email: "accounts@pacificdigital.ca", Address: "800 Robson Street, Vancouver, BC V6Z 3B7", Phone: "(604) 555-0303"},
		{Name: "Aurora Health Systems", Email: "finance@aurorahealth.ca", Address: "55 Metcalfe Street, Ottawa, ON K1P 6L5", Phone: "(613) 555-0404"},
		{Name: "Summit Financial Group", Email: "ap@summitfinancial.ca", Address: "150 8th Ave SW, Calgary, AB T2P 3S2", Phone: "(403) 555-0505"},
	}

	clientIDs := make([]uuid.UUID, 0, len(clientInputs))
	for _, in := range clientInputs {
		client, err := clientSvc.Create(ctx, in)
		if err != nil {
			log.Fatalf("failed to seed client %q: %v", in.Name, err)
		}
		clientIDs = append(clientIDs, client.ID)
	}

	invoices := []seedInvoice{
		{"INV-2026-001", 0, items(item("Web Application Development", 1, 8500)), 0, domain.StatusPaid, "2026-01-15"},
		{"INV-2026-002", 1, items(item("IT Strategy Consulting", 40, 150), item("Documentation", 1, 500)), 200, domain.StatusPaid, "2026-01-20"},
		{"INV-2026-003", 2, items(item("UI/UX Design Package", 1, 3200), item("Brand Guidelines", 1, 800)), 0, domain.StatusSent, "2026-02-28"},
		{"INV-2026-004", 3, items(item("EMR Integration", 1, 12000), item("Training Sessions", 3, 500)), 500, domain.StatusPaid, "2026-01-30"},
		{"INV-2026-005", 4, items(item("Security Audit", 1, 4500)), 0, domain.StatusOverdue, "2026-01-10"},
		{"INV-2026-006", 0, items(item("Monthly Maintenance", 1, 850)), 0, domain.StatusSent, "2026-02-25"},
		{"INV-2026-007", 1, items(item("Cloud Migration Phase 1", 1, 7500), item("AWS Setup", 1, 1200)), 200, domain.StatusPaid, "2026-02-01"},
		{"INV-2026-008", 2, items(item("Mobile App Prototype", 1, 5500)), 0, domain.StatusOverdue, "2026-01-25"},
		{"INV-2026-009", 3, items(item("HIPAA Compliance Review", 1, 3800)), 0, domain.StatusSent, "2026-03-01"},
		{"INV-2026-010", 4, items(item("API Development", 1, 6200), item("Documentation", 1, 800)), 0, domain.StatusDraft, "2026-03-15"},
	}

	for i := range invoices {
		inv := invoices[i]
		input := service.CreateInvoiceInput{
			Number:   &inv.number,
			ClientID: &clientIDs[inv.clientIdx],
			Items:    inv.items,
			Discount: &inv.discount,
			Status:   &inv.status,
			DueDate:  &inv.dueDate,
		}
		if _, err := invoiceSvc.Create(ctx, input); err != nil {
			log.Fatalf("failed to seed invoice %s: %v", inv.number, err)
		}
	}

	// Align the generator with the highest seeded number so the next
	// created invoice continues the sequence.
	if _, err := db.ExecContext(ctx,
		"INSERT INTO invoice_sequences (year, last_value) VALUES ($1, $2)", 2026, len(invoices)); err != nil {
		log.Fatalf("failed to seed invoice sequence: %v", err)
	}

	log.Printf("seeded %d clients and %d invoices", len(clientIDs), len(invoices))
}

func item(desc string, qty, rate float64) service.LineItemInput {
	return service.LineItemInput{Description: desc, Quantity: &qty, Rate: &rate}
}

func items(in ...service.LineItemInput) []service.LineItemInput {
	return in
}
