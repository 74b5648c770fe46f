package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"buyit/internal/lifecycle"
	"buyit/internal/matching"
	"buyit/internal/metrics"
	"buyit/internal/model"
	"buyit/internal/repository"
	"buyit/pkg/pagination"

	"github.com/shopspring/decimal"
)

const (
	// InvoiceNumberFormat derives an invoice number from the PO's request id
	// and the invoice's sequence on that PO.
	InvoiceNumberFormat = "INV-%06d-%02d"
	InvoiceDateLayout   = "2006-01-02"
)

type SubmitInvoiceDTO struct {
	PONumber      string           `json:"po_number"`
	VendorName    string           `json:"vendor_name"`
	InvoiceNumber string           `json:"invoice_number"`
	InvoiceAmount decimal.Decimal  `json:"invoice_amount"`
	InvoiceDate   string           `json:"invoice_date" example:"2026-01-31"`
	Tolerance     *decimal.Decimal `json:"tolerance"`
	SubmittedBy   string           `json:"submitted_by"`
}

// InvoiceResult is the recorded invoice and the verdict it received.
type InvoiceResult struct {
	Invoice model.Invoice     `json:"invoice"`
	Status  model.MatchStatus `json:"status"`
	Reason  *string           `json:"reason"`
}

type InvoiceFilter struct {
	Status model.MatchStatus
	Page   int
	Limit  int
}

type InvoiceService interface {
	SubmitInvoice(ctx context.Context, req SubmitInvoiceDTO) (InvoiceResult, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]model.Invoice, int64, error)
}

type invoiceService struct {
	poRepo      repository.PurchaseOrderRepository
	invoiceRepo repository.InvoiceRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	tolerance   decimal.Decimal
	notifier    Notifier
	log         *slog.Logger
}

// NewInvoiceService returns a service that matches with tolerance unless a
// submission carries its own.
func NewInvoiceService(
	poRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	tolerance decimal.Decimal,
	notifier Notifier,
	log *slog.Logger,
) InvoiceService {
	return &invoiceService{
		poRepo:      poRepo,
		invoiceRepo: invoiceRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		tolerance:   tolerance,
		notifier:    notifier,
		log:         log,
	}
}

// SubmitInvoice matches the invoice against its PO and records it with the
// verdict in one transaction. Every submission creates a new row; existing
// invoices are never re-evaluated.
func (s *invoiceService) SubmitInvoice(ctx context.Context, req SubmitInvoiceDTO) (InvoiceResult, error) {
	poNumber, err := requireText("po_number", req.PONumber)
	if err != nil {
		return InvoiceResult{}, err
	}
	vendor, err := requireText("vendor_name", req.VendorName)
	if err != nil {
		return InvoiceResult{}, err
	}
	if req.InvoiceAmount.IsNegative() {
		return InvoiceResult{}, lifecycle.InvalidInput("invoice_amount must not be negative, got %s", req.InvoiceAmount)
	}
	tolerance := s.tolerance
	if req.Tolerance != nil {
		tolerance = *req.Tolerance
	}
	if tolerance.IsNegative() {
		return InvoiceResult{}, lifecycle.InvalidInput("tolerance must not be negative, got %s", tolerance)
	}
	invoiceDate, err := parseInvoiceDate(req.InvoiceDate)
	if err != nil {
		return InvoiceResult{}, err
	}

	var invoice model.Invoice
	var verdict matching.Verdict
	var requestID uint
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		po, findErr := s.poRepo.FindByPONumber(txCtx, poNumber)
		if findErr != nil {
			return findErr
		}
		requestID = po.RequestID

		verdict = matching.Match(matching.Candidate{VendorName: vendor, Amount: req.InvoiceAmount}, *po, tolerance)

		number := strings.TrimSpace(req.InvoiceNumber)
		if number == "" {
			seq, countErr := s.invoiceRepo.CountByPONumber(txCtx, po.PONumber)
			if countErr != nil {
				return fmt.Errorf("failed to count invoices: %w", countErr)
			}
			number = fmt.Sprintf(InvoiceNumberFormat, po.RequestID, seq+1)
		}

		invoice = model.Invoice{
			PONumber:      po.PONumber,
			VendorName:    vendor,
			InvoiceNumber: number,
			InvoiceAmount: req.InvoiceAmount,
			InvoiceDate:   invoiceDate,
		}
		if createErr := s.invoiceRepo.Create(txCtx, &invoice, verdict); createErr != nil {
			return fmt.Errorf("failed to record invoice: %w", createErr)
		}

		action := model.ActionInvoiceMatched
		details := map[string]any{
			"po_number":      po.PONumber,
			"invoice_amount": invoice.InvoiceAmount.StringFixed(2),
			"po_amount":      po.TotalAmount.StringFixed(2),
			"tolerance":      tolerance.StringFixed(2),
		}
		if !verdict.Matched() {
			action = model.ActionInvoiceException
			details["reason"] = verdict.Reason
		}
		return writeAudit(txCtx, s.auditRepo, auditActor(req.SubmittedBy, vendor), action, model.EntityTypeInvoice, idString(invoice.ID), details)
	})
	if err != nil {
		if lifecycle.Code(err) == "INTERNAL" {
			s.log.Error("invoice submission failed", "po_number", poNumber, "error", err)
		} else {
			s.log.Warn("invoice submission rejected", "po_number", poNumber, "code", lifecycle.Code(err), "error", err)
		}
		return InvoiceResult{}, err
	}

	metrics.InvoiceVerdictsTotal.WithLabelValues(string(verdict.Status)).Inc()
	s.log.Info("invoice recorded",
		"invoice_id", invoice.ID,
		"po_number", invoice.PONumber,
		"request_id", requestID,
		"status", verdict.Status,
	)

	result := InvoiceResult{Invoice: invoice, Status: invoice.Status, Reason: invoice.ExceptionReason}
	s.notifier.Publish(EventInvoiceRecorded, result)
	return result, nil
}

func parseInvoiceDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	d, err := time.Parse(InvoiceDateLayout, v)
	if err != nil {
		return time.Time{}, lifecycle.InvalidInput("invoice_date must be YYYY-MM-DD, got %q", value)
	}
	return d, nil
}

func auditActor(actor, fallback string) string {
	if a := strings.TrimSpace(actor); a != "" {
		return a
	}
	return fallback
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter InvoiceFilter) ([]model.Invoice, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, lifecycle.InvalidInput("unknown match status %q", filter.Status)
	}
	p := pagination.Normalize(filter.Page, filter.Limit)
	invoices, total, err := s.invoiceRepo.List(ctx, filter.Status, p.Page, p.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, total, nil
}
