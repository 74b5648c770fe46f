package repository

import (
	"context"
	"fmt"

	"buyit/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// POTotal is one purchase order's vendor and amount.
type POTotal struct {
	VendorName  string
	TotalAmount decimal.Decimal
}

// StatisticsRepository is the read-only side of the record store. Nothing
// here writes.
type StatisticsRepository interface {
	CountRequests(ctx context.Context) (int64, error)
	CountRequestsByStatus(ctx context.Context) (map[model.RequestStatus]int64, error)
	CountApprovalsByDecision(ctx context.Context) (map[model.Decision]int64, error)
	CountPurchaseOrders(ctx context.Context) (int64, error)
	CountInvoicesByStatus(ctx context.Context, status model.MatchStatus) (int64, error)
	ListPOTotals(ctx context.Context) ([]POTotal, error)
	ListTraceRows(ctx context.Context, requestLimit int) ([]model.TraceRow, error)
	ListApprovalTrail(ctx context.Context, limit int) ([]model.ApprovalTrailEntry, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CountRequests(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Request{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return count, nil
}

func (r *statisticsRepository) CountRequestsByStatus(ctx context.Context) (map[model.RequestStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := GetDB(ctx, r.db).Model(&model.Request{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count requests by status: %w", err)
	}
	counts := make(map[model.RequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[model.RequestStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *statisticsRepository) CountApprovalsByDecision(ctx context.Context) (map[model.Decision]int64, error) {
	var rows []struct {
		Decision string
		Count    int64
	}
	if err := GetDB(ctx, r.db).Model(&model.Approval{}).
		Select("decision, COUNT(*) AS count").
		Group("decision").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count approvals by decision: %w", err)
	}
	counts := make(map[model.Decision]int64, len(rows))
	for _, row := range rows {
		counts[model.Decision(row.Decision)] = row.Count
	}
	return counts, nil
}

func (r *statisticsRepository) CountPurchaseOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.PurchaseOrder{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count purchase orders: %w", err)
	}
	return count, nil
}

func (r *statisticsRepository) CountInvoicesByStatus(ctx context.Context, status model.MatchStatus) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Invoice{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s invoices: %w", status, err)
	}
	return count, nil
}

// ListPOTotals returns raw totals; summing happens in decimal arithmetic so
// the result does not depend on the database's numeric type.
func (r *statisticsRepository) ListPOTotals(ctx context.Context) ([]POTotal, error) {
	var rows []POTotal
	if err := GetDB(ctx, r.db).Model(&model.PurchaseOrder{}).
		Select("vendor_name, total_amount").
		Order("id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list purchase order totals: %w", err)
	}
	return rows, nil
}

// ListTraceRows outer-joins requests to their PO and invoices. requestLimit
// bounds the number of requests (newest first), not the number of rows.
func (r *statisticsRepository) ListTraceRows(ctx context.Context, requestLimit int) ([]model.TraceRow, error) {
	db := GetDB(ctx, r.db)
	query := db.Table("requests AS r").
		Select(`r.id AS request_id, r.item_desc AS item_desc, r.status AS request_status,
			po.po_number AS po_number, po.status AS po_status, po.total_amount AS total_amount,
			inv.id AS invoice_id, inv.invoice_number AS invoice_number, inv.invoice_amount AS invoice_amount,
			inv.status AS invoice_status, inv.exception_reason AS exception_reason`).
		Joins("LEFT JOIN purchase_orders po ON po.request_id = r.id").
		Joins("LEFT JOIN invoices inv ON inv.po_number = po.po_number")
	if requestLimit > 0 {
		query = query.Where("r.id IN (?)", db.Model(&model.Request{}).Select("id").Order("id DESC").Limit(requestLimit))
	}

	var rows []model.TraceRow
	if err := query.Order("r.id DESC, inv.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query traceability: %w", err)
	}
	return rows, nil
}

func (r *statisticsRepository) ListApprovalTrail(ctx context.Context, limit int) ([]model.ApprovalTrailEntry, error) {
	var rows []model.ApprovalTrailEntry
	if err := GetDB(ctx, r.db).Table("approvals AS a").
		Select("a.id AS approval_id, a.request_id, r.requester_name, a.approver_name, a.decision, a.comments, a.decided_at").
		Joins("JOIN requests r ON r.id = a.request_id").
		Order("a.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query approval trail: %w", err)
	}
	return rows, nil
}
