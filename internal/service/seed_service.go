package service

import (
	"context"
	"fmt"
	"log/slog"

	"buyit/internal/model"

	"github.com/shopspring/decimal"
)

// SeedReport lists what a demo seed created.
type SeedReport struct {
	RequestIDs []uint              `json:"request_ids"`
	PONumbers  []string            `json:"po_numbers"`
	Invoices   []model.MatchStatus `json:"invoices"`
}

type SeedService interface {
	Seed(ctx context.Context) (SeedReport, error)
}

type seedService struct {
	requests RequestService
	orders   PurchaseOrderService
	invoices InvoiceService
	log      *slog.Logger
}

// NewSeedService builds the demo seeder on top of the lifecycle services, so
// seeded records pass the same checks as real ones.
func NewSeedService(requests RequestService, orders PurchaseOrderService, invoices InvoiceService, log *slog.Logger) SeedService {
	return &seedService{requests: requests, orders: orders, invoices: invoices, log: log}
}

func (s *seedService) Seed(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	// Figma licenses: full lifecycle with one invoice inside tolerance and
	// one outside it.
	figma, err := s.requests.SubmitRequest(ctx, SubmitRequestDTO{
		RequesterName: "Rohan",
		Department:    "Design",
		ItemDesc:      "Figma Professional licenses",
		Quantity:      20,
		EstCost:       decimal.NewFromInt(8000),
		Justification: "Design team seat renewal",
		VendorName:    "Figma",
	})
	if err != nil {
		return report, fmt.Errorf("seed figma request: %w", err)
	}
	report.RequestIDs = append(report.RequestIDs, figma.ID)

	if _, err := s.requests.Review(ctx, figma.ID, "Isha"); err != nil {
		return report, fmt.Errorf("seed figma review: %w", err)
	}
	if _, err := s.requests.Decide(ctx, figma.ID, DecisionDTO{ApproverName: "Isha", Decision: model.DecisionApproved, Comments: "Within budget"}); err != nil {
		return report, fmt.Errorf("seed figma decision: %w", err)
	}
	po, err := s.orders.CreatePO(ctx, figma.ID, CreatePODTO{CreatedBy: "Shalini", VendorName: "Figma", TotalAmount: decimal.NewFromInt(8000)})
	if err != nil {
		return report, fmt.Errorf("seed figma purchase order: %w", err)
	}
	report.PONumbers = append(report.PONumbers, po.PONumber)
	if _, err := s.orders.MarkSent(ctx, figma.ID, "Shalini"); err != nil {
		return report, fmt.Errorf("seed figma send: %w", err)
	}

	hundred := decimal.NewFromInt(100)
	twentyFive := decimal.NewFromInt(25)
	for _, tol := range []*decimal.Decimal{&hundred, &twentyFive} {
		res, err := s.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{
			PONumber:      po.PONumber,
			VendorName:    "Figma",
			InvoiceAmount: decimal.NewFromInt(8050),
			Tolerance:     tol,
			SubmittedBy:   "Asha",
		})
		if err != nil {
			return report, fmt.Errorf("seed figma invoice: %w", err)
		}
		report.Invoices = append(report.Invoices, res.Status)
	}

	// Laptops: rejected at approval, terminal.
	laptops, err := s.requests.SubmitRequest(ctx, SubmitRequestDTO{
		RequesterName: "Rohan",
		Department:    "Engineering",
		ItemDesc:      "Dell XPS laptops",
		Quantity:      5,
		EstCost:       decimal.NewFromInt(12000),
		Justification: "New hires",
		VendorName:    "Dell",
	})
	if err != nil {
		return report, fmt.Errorf("seed laptop request: %w", err)
	}
	report.RequestIDs = append(report.RequestIDs, laptops.ID)
	if _, err := s.requests.Decide(ctx, laptops.ID, DecisionDTO{ApproverName: "Isha", Decision: model.DecisionRejected, Comments: "Reuse returned laptops first"}); err != nil {
		return report, fmt.Errorf("seed laptop decision: %w", err)
	}

	s.log.Info("demo data seeded", "requests", len(report.RequestIDs), "purchase_orders", len(report.PONumbers), "invoices", len(report.Invoices))
	return report, nil
}
