package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCount is the number of requests currently in one status.
type StatusCount struct {
	Status RequestStatus `json:"status"`
	Count  int64         `json:"count"`
}

// DecisionCount is the number of approval rows with one outcome.
type DecisionCount struct {
	Decision Decision `json:"decision"`
	Count    int64    `json:"count"`
}

// VendorSpend is the sum of PO totals for one vendor.
type VendorSpend struct {
	VendorName string          `json:"vendor_name"`
	TotalSpend decimal.Decimal `json:"total_spend"`
	POCount    int             `json:"po_count"`
}

// DashboardSummary holds the headline KPIs.
type DashboardSummary struct {
	Requests          int64 `json:"requests"`
	ApprovedDecisions int64 `json:"approved_decisions"`
	PurchaseOrders    int64 `json:"purchase_orders"`
	InvoicesMatched   int64 `json:"invoices_matched"`
	InvoiceExceptions int64 `json:"invoice_exceptions"`
}

// ApprovalTrailEntry is one approval row joined with its request.
type ApprovalTrailEntry struct {
	ApprovalID    uint      `json:"approval_id"`
	RequestID     uint      `json:"request_id"`
	RequesterName string    `json:"requester_name"`
	ApproverName  string    `json:"approver_name"`
	Decision      Decision  `json:"decision"`
	Comments      *string   `json:"comments"`
	DecidedAt     time.Time `json:"decided_at"`
}

// TraceRow is one flattened row of the request → PO → invoice outer join.
// PO and invoice columns are nil when the join found nothing.
type TraceRow struct {
	RequestID       uint
	ItemDesc        string
	RequestStatus   RequestStatus
	PONumber        *string
	POStatus        *string
	TotalAmount     decimal.NullDecimal
	InvoiceID       *uint
	InvoiceNumber   *string
	InvoiceAmount   decimal.NullDecimal
	InvoiceStatus   *string
	ExceptionReason *string
}

// TraceInvoice is an invoice linked to a traced purchase order.
type TraceInvoice struct {
	InvoiceID       uint            `json:"invoice_id"`
	InvoiceNumber   string          `json:"invoice_number"`
	InvoiceAmount   decimal.Decimal `json:"invoice_amount"`
	Status          MatchStatus     `json:"status"`
	ExceptionReason *string         `json:"exception_reason"`
}

// TracePO is the current purchase order of a traced request.
type TracePO struct {
	PONumber    string          `json:"po_number"`
	Status      POStatus        `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Invoices    []TraceInvoice  `json:"invoices"`
}

// TraceEntry links a request to its PO and that PO's invoices.
type TraceEntry struct {
	RequestID     uint          `json:"request_id"`
	ItemDesc      string        `json:"item_desc"`
	RequestStatus RequestStatus `json:"request_status"`
	PurchaseOrder *TracePO      `json:"purchase_order"`
}
