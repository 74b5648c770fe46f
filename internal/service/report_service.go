package service

import (
	"bytes"
	"context"
	"fmt"

	"buyit/internal/model"
	"buyit/internal/repository"

	"github.com/xuri/excelize/v2"
)

const (
	ReportFileName    = "BuyIT_Hub_Report.xlsx"
	ReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Report sheet names, in workbook order.
const (
	SheetRequests  = "Requests"
	SheetApprovals = "Approvals"
	SheetPOs       = "POs"
	SheetInvoices  = "Invoices"
)

// ReportService renders the full record store as a spreadsheet. It only
// reads; the workbook is a view over the same rows the API returns.
type ReportService interface {
	Workbook(ctx context.Context) (*bytes.Buffer, error)
}

type reportService struct {
	requestRepo  repository.RequestRepository
	approvalRepo repository.ApprovalRepository
	poRepo       repository.PurchaseOrderRepository
	invoiceRepo  repository.InvoiceRepository
	txManager    repository.TransactionManager
}

func NewReportService(
	requestRepo repository.RequestRepository,
	approvalRepo repository.ApprovalRepository,
	poRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	txManager repository.TransactionManager,
) ReportService {
	return &reportService{
		requestRepo:  requestRepo,
		approvalRepo: approvalRepo,
		poRepo:       poRepo,
		invoiceRepo:  invoiceRepo,
		txManager:    txManager,
	}
}

type reportData struct {
	requests  []model.Request
	approvals []model.Approval
	orders    []model.PurchaseOrder
	invoices  []model.Invoice
}

// Workbook writes one sheet per table. All four are read in one
// transaction so the sheets agree with each other.
func (s *reportService) Workbook(ctx context.Context) (*bytes.Buffer, error) {
	var data reportData
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if data.requests, err = s.requestRepo.All(txCtx); err != nil {
			return fmt.Errorf("read requests: %w", err)
		}
		if data.approvals, err = s.approvalRepo.All(txCtx); err != nil {
			return fmt.Errorf("read approvals: %w", err)
		}
		if data.orders, err = s.poRepo.All(txCtx); err != nil {
			return fmt.Errorf("read purchase orders: %w", err)
		}
		if data.invoices, err = s.invoiceRepo.All(txCtx); err != nil {
			return fmt.Errorf("read invoices: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renderWorkbook(data)
}

func renderWorkbook(data reportData) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetRequests, requestRows(data.requests)},
		{SheetApprovals, approvalRows(data.approvals)},
		{SheetPOs, purchaseOrderRows(data.orders)},
		{SheetInvoices, invoiceRows(data.invoices)},
	}
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return nil, fmt.Errorf("name sheet %s: %w", sheet.name, err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("add sheet %s: %w", sheet.name, err)
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return nil, fmt.Errorf("write %s row %d: %w", sheet.name, r+1, err)
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf, nil
}

func requestRows(requests []model.Request) [][]any {
	rows := [][]any{{"request_id", "requester_name", "department", "item_desc", "quantity", "est_cost", "justification", "vendor_name", "status", "created_at"}}
	for _, r := range requests {
		rows = append(rows, []any{int(r.ID), r.RequesterName, r.Department, r.ItemDesc, r.Quantity, r.EstCost.InexactFloat64(), r.Justification, deref(r.VendorName), string(r.Status), r.CreatedAt.UTC()})
	}
	return rows
}

func approvalRows(approvals []model.Approval) [][]any {
	rows := [][]any{{"approval_id", "request_id", "approver_name", "decision", "comments", "decided_at"}}
	for _, a := range approvals {
		rows = append(rows, []any{int(a.ID), int(a.RequestID), a.ApproverName, string(a.Decision), deref(a.Comments), a.DecidedAt.UTC()})
	}
	return rows
}

func purchaseOrderRows(orders []model.PurchaseOrder) [][]any {
	rows := [][]any{{"po_id", "request_id", "po_number", "created_by", "vendor_name", "total_amount", "status", "created_at"}}
	for _, po := range orders {
		rows = append(rows, []any{int(po.ID), int(po.RequestID), po.PONumber, po.CreatedBy, po.VendorName, po.TotalAmount.InexactFloat64(), string(po.Status), po.CreatedAt.UTC()})
	}
	return rows
}

func invoiceRows(invoices []model.Invoice) [][]any {
	rows := [][]any{{"invoice_id", "po_number", "vendor_name", "invoice_number", "invoice_amount", "invoice_date", "status", "exception_reason"}}
	for _, inv := range invoices {
		rows = append(rows, []any{int(inv.ID), inv.PONumber, inv.VendorName, inv.InvoiceNumber, inv.InvoiceAmount.InexactFloat64(), inv.InvoiceDate.UTC().Format(InvoiceDateLayout), string(inv.Status), deref(inv.ExceptionReason)})
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
