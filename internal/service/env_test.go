package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"buyit/internal/database"
	"buyit/internal/matching"
	"buyit/internal/model"
	"buyit/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Publish(eventType string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, eventType)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

type testEnv struct {
	db       *gorm.DB
	notifier *recordingNotifier
	requests RequestService
	orders   PurchaseOrderService
	invoices InvoiceService
	stats    StatisticsService
	audit    AuditService
	seed     SeedService
	reports  ReportService
	poRepo   repository.PurchaseOrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "buyit.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &recordingNotifier{}

	requestRepo := repository.NewRequestRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	txManager := repository.NewTransactionManager(db)

	env := &testEnv{
		db:       db,
		notifier: notifier,
		requests: NewRequestService(requestRepo, approvalRepo, poRepo, auditRepo, txManager, notifier, log),
		orders:   NewPurchaseOrderService(requestRepo, poRepo, auditRepo, txManager, notifier, log),
		invoices: NewInvoiceService(poRepo, invoiceRepo, auditRepo, txManager, matching.DefaultTolerance, notifier, log),
		stats:    NewStatisticsService(statsRepo),
		audit:    NewAuditService(auditRepo),
		reports:  NewReportService(requestRepo, approvalRepo, poRepo, invoiceRepo, txManager),
		poRepo:   poRepo,
	}
	env.seed = NewSeedService(env.requests, env.orders, env.invoices, log)
	return env
}

func figmaRequest() SubmitRequestDTO {
	return SubmitRequestDTO{
		RequesterName: "Rohan",
		Department:    "Design",
		ItemDesc:      "Figma licenses",
		Quantity:      20,
		EstCost:       decimal.NewFromInt(8000),
		Justification: "Seat renewal",
		VendorName:    "Figma",
	}
}

// approvedRequest submits and approves a request.
func (e *testEnv) approvedRequest(t *testing.T, req SubmitRequestDTO) model.Request {
	t.Helper()
	ctx := context.Background()
	r, err := e.requests.SubmitRequest(ctx, req)
	require.NoError(t, err)
	_, err = e.requests.Decide(ctx, r.ID, DecisionDTO{ApproverName: "Isha", Decision: model.DecisionApproved})
	require.NoError(t, err)
	return r
}

func (e *testEnv) status(t *testing.T, id uint) model.RequestStatus {
	t.Helper()
	detail, err := e.requests.GetRequest(context.Background(), id)
	require.NoError(t, err)
	return detail.Request.Status
}

func (e *testEnv) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}
