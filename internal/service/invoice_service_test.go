package service

import (
	"context"
	"testing"

	"buyit/internal/lifecycle"
	"buyit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentFigmaPO(t *testing.T, env *testEnv) model.PurchaseOrder {
	t.Helper()
	ctx := context.Background()
	req := env.approvedRequest(t, figmaRequest())
	po, err := env.orders.CreatePO(ctx, req.ID, CreatePODTO{CreatedBy: "Shalini", VendorName: "Figma", TotalAmount: dec("8000")})
	require.NoError(t, err)
	_, err = env.orders.MarkSent(ctx, req.ID, "Shalini")
	require.NoError(t, err)
	return po
}

func TestFigmaEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	po := sentFigmaPO(t, env)

	matched, err := env.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{
		PONumber:      po.PONumber,
		VendorName:    "Figma",
		InvoiceAmount: dec("8050"),
		InvoiceDate:   "2026-01-31",
		Tolerance:     decPtr("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.MatchMatched, matched.Status)
	assert.Nil(t, matched.Reason)
	assert.Equal(t, "INV-000001-01", matched.Invoice.InvoiceNumber)

	exception, err := env.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{
		PONumber:      po.PONumber,
		VendorName:    "Figma",
		InvoiceAmount: dec("8050"),
		Tolerance:     decPtr("25"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.MatchException, exception.Status)
	require.NotNil(t, exception.Reason)
	assert.Contains(t, *exception.Reason, "$8000.00")
	assert.Contains(t, *exception.Reason, "$8050.00")
	assert.Equal(t, "INV-000001-02", exception.Invoice.InvoiceNumber)

	// Invoices never move the request.
	assert.Equal(t, model.StatusPOSent, env.status(t, po.RequestID))
	assert.EqualValues(t, 2, env.count(t, &model.Invoice{}))
}

func TestSubmitInvoiceDefaultTolerance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	po := sentFigmaPO(t, env)

	inside, err := env.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "figma ", InvoiceAmount: dec("8050")})
	require.NoError(t, err)
	assert.Equal(t, model.MatchMatched, inside.Status)

	outside, err := env.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Figma", InvoiceAmount: dec("8050.01")})
	require.NoError(t, err)
	assert.Equal(t, model.MatchException, outside.Status)
}

func TestSubmitInvoiceVendorMismatch(t *testing.T) {
	env := newTestEnv(t)
	po := sentFigmaPO(t, env)

	res, err := env.invoices.SubmitInvoice(context.Background(), SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Adobe", InvoiceAmount: dec("8000"), InvoiceNumber: "A-1"})
	require.NoError(t, err)
	assert.Equal(t, model.MatchException, res.Status)
	require.NotNil(t, res.Reason)
	assert.Equal(t, "Vendor mismatch: PO=Figma vs Invoice=Adobe", *res.Reason)
	assert.Equal(t, "A-1", res.Invoice.InvoiceNumber)

	logs, _, err := env.audit.GetAuditLogs(context.Background(), model.EntityTypeInvoice, 1, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActionInvoiceException, logs[0].Action)
}

func TestSubmitInvoiceErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	po := sentFigmaPO(t, env)

	tests := []struct {
		name string
		in   SubmitInvoiceDTO
		want error
	}{
		{"unknown po", SubmitInvoiceDTO{PONumber: "PO-999999", VendorName: "Figma", InvoiceAmount: dec("1")}, lifecycle.ErrNotFound},
		{"blank po", SubmitInvoiceDTO{VendorName: "Figma", InvoiceAmount: dec("1")}, lifecycle.ErrInvalidInput},
		{"blank vendor", SubmitInvoiceDTO{PONumber: po.PONumber, InvoiceAmount: dec("1")}, lifecycle.ErrInvalidInput},
		{"negative amount", SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Figma", InvoiceAmount: dec("-1")}, lifecycle.ErrInvalidInput},
		{"negative tolerance", SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Figma", InvoiceAmount: dec("1"), Tolerance: decPtr("-5")}, lifecycle.ErrInvalidInput},
		{"bad date", SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Figma", InvoiceAmount: dec("1"), InvoiceDate: "31/01/2026"}, lifecycle.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.invoices.SubmitInvoice(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, env.count(t, &model.Invoice{}))
}

func TestListInvoices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	po := sentFigmaPO(t, env)
	for _, amount := range []string{"8000", "9000", "8010"} {
		_, err := env.invoices.SubmitInvoice(ctx, SubmitInvoiceDTO{PONumber: po.PONumber, VendorName: "Figma", InvoiceAmount: dec(amount)})
		require.NoError(t, err)
	}

	matched, total, err := env.invoices.ListInvoices(ctx, InvoiceFilter{Status: model.MatchMatched})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, matched, 2)

	_, _, err = env.invoices.ListInvoices(ctx, InvoiceFilter{Status: "Pending"})
	require.ErrorIs(t, err, lifecycle.ErrInvalidInput)
}
