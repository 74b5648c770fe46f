package repository

import (
	"context"
	"fmt"

	"buyit/internal/matching"
	"buyit/internal/model"

	"gorm.io/gorm"
)

// InvoiceRepository has no update method: an invoice's verdict is final.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice, verdict matching.Verdict) error
	CountByPONumber(ctx context.Context, poNumber string) (int64, error)
	ListByPONumber(ctx context.Context, poNumber string) ([]model.Invoice, error)
	List(ctx context.Context, status model.MatchStatus, page, limit int) ([]model.Invoice, int64, error)
	All(ctx context.Context) ([]model.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create stamps the verdict onto the invoice and inserts it in one statement.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice, verdict matching.Verdict) error {
	if verdict.Status != model.MatchMatched && verdict.Status != model.MatchException {
		return fmt.Errorf("invoice %s has no verdict", invoice.InvoiceNumber)
	}
	invoice.Status = verdict.Status
	invoice.ExceptionReason = verdict.ReasonPtr()
	return GetDB(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) CountByPONumber(ctx context.Context, poNumber string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Invoice{}).Where("po_number = ?", poNumber).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *invoiceRepository) ListByPONumber(ctx context.Context, poNumber string) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := GetDB(ctx, r.db).Where("po_number = ?", poNumber).Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) List(ctx context.Context, status model.MatchStatus, page, limit int) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Invoice{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetchQuery := db.Model(&model.Invoice{})
	if status != "" {
		fetchQuery = fetchQuery.Where("status = ?", status)
	}
	offset := (page - 1) * limit
	if err := fetchQuery.Order("id desc").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) All(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
