package repository

import (
	"context"
	"errors"
	"fmt"

	"buyit/internal/lifecycle"
	"buyit/internal/model"

	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	FindByRequestID(ctx context.Context, requestID uint) (*model.PurchaseOrder, error)
	FindByPONumber(ctx context.Context, poNumber string) (*model.PurchaseOrder, error)
	ExistsForRequest(ctx context.Context, requestID uint) (bool, error)
	ExistsPONumber(ctx context.Context, poNumber string) (bool, error)
	UpdateStatus(ctx context.Context, id uint, from, to model.POStatus) (bool, error)
	CountByRequest(ctx context.Context, requestID uint) (int64, error)
	List(ctx context.Context, status model.POStatus, page, limit int) ([]model.PurchaseOrder, int64, error)
	All(ctx context.Context) ([]model.PurchaseOrder, error)
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

// Create inserts the PO. Both request_id and po_number are unique; on a
// violation the request is re-checked so the error names the index that
// collided, even when the caller could not lock the request row. The insert
// runs under a savepoint so the re-check can use the same transaction.
func (r *purchaseOrderRepository) Create(ctx context.Context, po *model.PurchaseOrder) error {
	err := GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(po).Error
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("create purchase order: %w", err)
	}
	exists, existsErr := r.ExistsForRequest(ctx, po.RequestID)
	if existsErr != nil {
		return fmt.Errorf("create purchase order: %w", existsErr)
	}
	if exists {
		return fmt.Errorf("%w: request %d", lifecycle.ErrDuplicatePO, po.RequestID)
	}
	return fmt.Errorf("%w: %s", lifecycle.ErrDuplicatePONumber, po.PONumber)
}

func (r *purchaseOrderRepository) FindByRequestID(ctx context.Context, requestID uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := GetDB(ctx, r.db).First(&po, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase order for request %d", lifecycle.ErrNotFound, requestID)
		}
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepository) FindByPONumber(ctx context.Context, poNumber string) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := GetDB(ctx, r.db).First(&po, "po_number = ?", poNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase order %s", lifecycle.ErrNotFound, poNumber)
		}
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepository) ExistsForRequest(ctx context.Context, requestID uint) (bool, error) {
	n, err := r.CountByRequest(ctx, requestID)
	return n > 0, err
}

func (r *purchaseOrderRepository) ExistsPONumber(ctx context.Context, poNumber string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.PurchaseOrder{}).Where("po_number = ?", poNumber).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *purchaseOrderRepository) UpdateStatus(ctx context.Context, id uint, from, to model.POStatus) (bool, error) {
	res := GetDB(ctx, r.db).Model(&model.PurchaseOrder{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("update purchase order %d status: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *purchaseOrderRepository) CountByRequest(ctx context.Context, requestID uint) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.PurchaseOrder{}).Where("request_id = ?", requestID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *purchaseOrderRepository) List(ctx context.Context, status model.POStatus, page, limit int) ([]model.PurchaseOrder, int64, error) {
	var orders []model.PurchaseOrder
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.PurchaseOrder{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetchQuery := db.Model(&model.PurchaseOrder{})
	if status != "" {
		fetchQuery = fetchQuery.Where("status = ?", status)
	}
	offset := (page - 1) * limit
	if err := fetchQuery.Order("id DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *purchaseOrderRepository) All(ctx context.Context) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
