package repository

import (
	"context"

	"buyit/internal/model"

	"gorm.io/gorm"
)

// ApprovalRepository is append-only: approvals are never updated or deleted.
type ApprovalRepository interface {
	Create(ctx context.Context, approval *model.Approval) error
	ListByRequest(ctx context.Context, requestID uint) ([]model.Approval, error)
	CountByRequest(ctx context.Context, requestID uint) (int64, error)
	All(ctx context.Context) ([]model.Approval, error)
}

type approvalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &approvalRepository{db: db}
}

func (r *approvalRepository) Create(ctx context.Context, approval *model.Approval) error {
	return GetDB(ctx, r.db).Create(approval).Error
}

func (r *approvalRepository) ListByRequest(ctx context.Context, requestID uint) ([]model.Approval, error) {
	var approvals []model.Approval
	if err := GetDB(ctx, r.db).Where("request_id = ?", requestID).Order("id ASC").Find(&approvals).Error; err != nil {
		return nil, err
	}
	return approvals, nil
}

func (r *approvalRepository) CountByRequest(ctx context.Context, requestID uint) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Approval{}).Where("request_id = ?", requestID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *approvalRepository) All(ctx context.Context) ([]model.Approval, error) {
	var approvals []model.Approval
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&approvals).Error; err != nil {
		return nil, err
	}
	return approvals, nil
}
