package service

import (
	"bytes"
	"context"
	"testing"

	"buyit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportWorkbook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := env.approvedRequest(t, figmaRequest())
	po, err := env.orders.CreatePO(ctx, req.ID, CreatePODTO{CreatedBy: "Shalini", TotalAmount: dec("8000")})
	require.NoError(t, err)
	_, err = env.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Figma", InvoiceAmount: dec("8050"), InvoiceDate: "2026-01-15", Tolerance: decPtr("25")})
	require.NoError(t, err)

	noVendor := figmaRequest()
	noVendor.VendorName = ""
	rejected, err := env.requests.SubmitRequest(ctx, noVendor)
	require.NoError(t, err)
	_, err = env.requests.Decide(ctx, rejected.ID, DecisionDTO{ApproverName: "Isha", Decision: model.DecisionRejected, Comments: "Use existing seats"})
	require.NoError(t, err)

	buf, err := env.reports.Workbook(ctx)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetRequests, SheetApprovals, SheetPOs, SheetInvoices}, f.GetSheetList())

	tests := []struct {
		sheet string
		rows  int
	}{
		{SheetRequests, 3},
		{SheetApprovals, 3},
		{SheetPOs, 2},
		{SheetInvoices, 2},
	}
	for _, tt := range tests {
		t.Run(tt.sheet, func(t *testing.T) {
			rows, err := f.GetRows(tt.sheet)
			require.NoError(t, err)
			assert.Len(t, rows, tt.rows)
		})
	}

	requests, err := f.GetRows(SheetRequests)
	require.NoError(t, err)
	assert.Equal(t, "Figma", requests[1][7])
	assert.Equal(t, string(model.StatusRejected), requests[2][8])

	invoices, err := f.GetRows(SheetInvoices)
	require.NoError(t, err)
	assert.Equal(t, po.PONumber, invoices[1][1])
	assert.Equal(t, "2026-01-15", invoices[1][5])
	assert.Equal(t, string(model.MatchException), invoices[1][6])
	assert.Contains(t, invoices[1][7], "8050")
}

func TestReportWorkbookEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	buf, err := env.reports.Workbook(context.Background())
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{SheetRequests, SheetApprovals, SheetPOs, SheetInvoices} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1, sheet)
	}
}
