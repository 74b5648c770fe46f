package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"buyit/internal/database"
	"buyit/internal/lifecycle"
	"buyit/internal/matching"
	"buyit/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRequestUpdateStatusIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(newTestDB(t))
	req := model.Request{RequesterName: "Rohan", Department: "IT", ItemDesc: "Dock", Quantity: 1, EstCost: decimal.NewFromInt(200), Status: model.StatusSubmitted}
	require.NoError(t, repo.Create(ctx, &req))

	ok, err := repo.UpdateStatus(ctx, req.ID, model.StatusSubmitted, model.StatusApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatus(ctx, req.ID, model.StatusSubmitted, model.StatusRejected)
	require.NoError(t, err)
	assert.False(t, ok, "stale from status must not overwrite")

	got, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)

	_, err = repo.FindByID(ctx, req.ID+1)
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestRunInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRequestRepository(db)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		req := model.Request{RequesterName: "Rohan", Department: "IT", ItemDesc: "Dock", Quantity: 1, Status: model.StatusSubmitted}
		if err := repo.Create(txCtx, &req); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, total, err := repo.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestInvoiceCreateRequiresVerdict(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository(newTestDB(t))
	inv := model.Invoice{PONumber: "PO-000001", VendorName: "Figma", InvoiceNumber: "INV-1", InvoiceAmount: decimal.NewFromInt(10)}

	require.Error(t, repo.Create(ctx, &inv, matching.Verdict{}))

	verdict := matching.Verdict{Status: model.MatchException, Reason: "Vendor mismatch: PO=Figma vs Invoice=Adobe"}
	require.NoError(t, repo.Create(ctx, &inv, verdict))
	assert.Equal(t, model.MatchException, inv.Status)
	require.NotNil(t, inv.ExceptionReason)

	n, err := repo.CountByPONumber(ctx, "PO-000001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPurchaseOrderCreateNamesCollidingIndex(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	requests := NewRequestRepository(db)
	orders := NewPurchaseOrderRepository(db)
	tm := NewTransactionManager(db)

	newRequest := func() uint {
		req := model.Request{RequesterName: "Rohan", Department: "Design", ItemDesc: "Figma licenses", Quantity: 20, EstCost: decimal.NewFromInt(8000), Status: model.StatusApproved}
		require.NoError(t, requests.Create(ctx, &req))
		return req.ID
	}
	newPO := func(requestID uint, number string) *model.PurchaseOrder {
		return &model.PurchaseOrder{RequestID: requestID, PONumber: number, CreatedBy: "Shalini", VendorName: "Figma", TotalAmount: decimal.NewFromInt(8000), Status: model.POStatusCreated}
	}

	first, second := newRequest(), newRequest()
	require.NoError(t, orders.Create(ctx, newPO(first, "PO-000001")))

	tests := []struct {
		name    string
		po      *model.PurchaseOrder
		want    error
		notWant error
	}{
		{"same request new number", newPO(first, "PO-FIGMA-2"), lifecycle.ErrDuplicatePO, lifecycle.ErrDuplicatePONumber},
		{"new request same number", newPO(second, "PO-000001"), lifecycle.ErrDuplicatePONumber, lifecycle.ErrDuplicatePO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := orders.Create(ctx, tt.po)
			require.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, tt.notWant)

			// Inside a unit of work the re-check must still run.
			err = tm.RunInTx(ctx, func(txCtx context.Context) error {
				return orders.Create(txCtx, newPO(tt.po.RequestID, tt.po.PONumber))
			})
			require.ErrorIs(t, err, tt.want)
		})
	}

	n, err := orders.CountByRequest(ctx, first)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
