package service

import (
	"context"
	"sort"

	"buyit/internal/lifecycle"
	"buyit/internal/model"
	"buyit/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTraceLimit    = 30
	DefaultApprovalLimit = 50
	maxReadLimit         = 500
)

type StatisticsService interface {
	GetSummary(ctx context.Context) (model.DashboardSummary, error)
	RequestStatusBreakdown(ctx context.Context) ([]model.StatusCount, error)
	ApprovalDecisionBreakdown(ctx context.Context) ([]model.DecisionCount, error)
	SpendByVendor(ctx context.Context) ([]model.VendorSpend, error)
	Traceability(ctx context.Context, limit int) ([]model.TraceEntry, error)
	ApprovalTrail(ctx context.Context, limit int) ([]model.ApprovalTrailEntry, error)
}

type statisticsService struct {
	statsRepo repository.StatisticsRepository
}

func NewStatisticsService(statsRepo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{statsRepo: statsRepo}
}

// GetSummary loads the headline KPIs concurrently.
func (s *statisticsService) GetSummary(ctx context.Context) (model.DashboardSummary, error) {
	var summary model.DashboardSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.statsRepo.CountRequests(gctx)
		summary.Requests = n
		return err
	})
	g.Go(func() error {
		counts, err := s.statsRepo.CountApprovalsByDecision(gctx)
		summary.ApprovedDecisions = counts[model.DecisionApproved]
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountPurchaseOrders(gctx)
		summary.PurchaseOrders = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountInvoicesByStatus(gctx, model.MatchMatched)
		summary.InvoicesMatched = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountInvoicesByStatus(gctx, model.MatchException)
		summary.InvoiceExceptions = n
		return err
	})

	if err := g.Wait(); err != nil {
		return model.DashboardSummary{}, err
	}
	return summary, nil
}

// RequestStatusBreakdown returns one entry per status in lifecycle order,
// including statuses with no requests.
func (s *statisticsService) RequestStatusBreakdown(ctx context.Context) ([]model.StatusCount, error) {
	counts, err := s.statsRepo.CountRequestsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.StatusCount, 0, len(model.RequestStatuses))
	for _, status := range model.RequestStatuses {
		out = append(out, model.StatusCount{Status: status, Count: counts[status]})
	}
	return out, nil
}

func (s *statisticsService) ApprovalDecisionBreakdown(ctx context.Context) ([]model.DecisionCount, error) {
	counts, err := s.statsRepo.CountApprovalsByDecision(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.DecisionCount, 0, len(model.Decisions))
	for _, d := range model.Decisions {
		out = append(out, model.DecisionCount{Decision: d, Count: counts[d]})
	}
	return out, nil
}

// SpendByVendor sums PO totals of every status per vendor name, largest
// first. Ties are ordered by vendor name.
func (s *statisticsService) SpendByVendor(ctx context.Context) ([]model.VendorSpend, error) {
	totals, err := s.statsRepo.ListPOTotals(ctx)
	if err != nil {
		return nil, err
	}
	return sumByVendor(totals), nil
}

func sumByVendor(totals []repository.POTotal) []model.VendorSpend {
	index := make(map[string]int)
	out := make([]model.VendorSpend, 0)
	for _, t := range totals {
		i, ok := index[t.VendorName]
		if !ok {
			i = len(out)
			index[t.VendorName] = i
			out = append(out, model.VendorSpend{VendorName: t.VendorName, TotalSpend: decimal.Zero})
		}
		out[i].TotalSpend = out[i].TotalSpend.Add(t.TotalAmount)
		out[i].POCount++
	}
	sort.SliceStable(out, func(a, b int) bool {
		if c := out[a].TotalSpend.Cmp(out[b].TotalSpend); c != 0 {
			return c > 0
		}
		return out[a].VendorName < out[b].VendorName
	})
	return out
}

// Traceability links the newest requests to their PO and invoices. Requests
// without a PO and POs without invoices are still listed.
func (s *statisticsService) Traceability(ctx context.Context, limit int) ([]model.TraceEntry, error) {
	limit, err := readLimit(limit, DefaultTraceLimit)
	if err != nil {
		return nil, err
	}
	rows, err := s.statsRepo.ListTraceRows(ctx, limit)
	if err != nil {
		return nil, err
	}
	return groupTrace(rows), nil
}

func groupTrace(rows []model.TraceRow) []model.TraceEntry {
	out := make([]model.TraceEntry, 0)
	index := make(map[uint]int)
	for _, row := range rows {
		i, ok := index[row.RequestID]
		if !ok {
			i = len(out)
			index[row.RequestID] = i
			entry := model.TraceEntry{
				RequestID:     row.RequestID,
				ItemDesc:      row.ItemDesc,
				RequestStatus: row.RequestStatus,
			}
			if row.PONumber != nil {
				entry.PurchaseOrder = &model.TracePO{
					PONumber:    *row.PONumber,
					TotalAmount: row.TotalAmount.Decimal,
					Invoices:    []model.TraceInvoice{},
				}
				if row.POStatus != nil {
					entry.PurchaseOrder.Status = model.POStatus(*row.POStatus)
				}
			}
			out = append(out, entry)
		}

		po := out[i].PurchaseOrder
		if po == nil || row.InvoiceID == nil {
			continue
		}
		inv := model.TraceInvoice{
			InvoiceID:       *row.InvoiceID,
			InvoiceAmount:   row.InvoiceAmount.Decimal,
			ExceptionReason: row.ExceptionReason,
		}
		if row.InvoiceNumber != nil {
			inv.InvoiceNumber = *row.InvoiceNumber
		}
		if row.InvoiceStatus != nil {
			inv.Status = model.MatchStatus(*row.InvoiceStatus)
		}
		po.Invoices = append(po.Invoices, inv)
	}
	return out
}

func (s *statisticsService) ApprovalTrail(ctx context.Context, limit int) ([]model.ApprovalTrailEntry, error) {
	limit, err := readLimit(limit, DefaultApprovalLimit)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.ListApprovalTrail(ctx, limit)
}

func readLimit(limit, def int) (int, error) {
	switch {
	case limit == 0:
		return def, nil
	case limit < 0:
		return 0, lifecycle.InvalidInput("limit must be positive, got %d", limit)
	case limit > maxReadLimit:
		return maxReadLimit, nil
	}
	return limit, nil
}
