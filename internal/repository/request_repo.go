package repository

import (
	"context"
	"errors"
	"fmt"

	"buyit/internal/lifecycle"
	"buyit/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository interface {
	Create(ctx context.Context, req *model.Request) error
	FindByID(ctx context.Context, id uint) (*model.Request, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Request, error)
	UpdateStatus(ctx context.Context, id uint, from, to model.RequestStatus) (bool, error)
	List(ctx context.Context, status model.RequestStatus, page, limit int) ([]model.Request, int64, error)
	All(ctx context.Context) ([]model.Request, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *model.Request) error {
	return GetDB(ctx, r.db).Create(req).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uint) (*model.Request, error) {
	return r.find(GetDB(ctx, r.db), id)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
// Dialects without row locks (SQLite) drop the clause.
func (r *requestRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Request, error) {
	return r.find(GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *requestRepository) find(db *gorm.DB, id uint) (*model.Request, error) {
	var req model.Request
	if err := db.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request %d", lifecycle.ErrNotFound, id)
		}
		return nil, fmt.Errorf("find request %d: %w", id, err)
	}
	return &req, nil
}

// UpdateStatus moves the request from one status to the next only if it is
// still in from. It reports false when another writer got there first.
func (r *requestRepository) UpdateStatus(ctx context.Context, id uint, from, to model.RequestStatus) (bool, error) {
	res := GetDB(ctx, r.db).Model(&model.Request{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("update request %d status: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *requestRepository) List(ctx context.Context, status model.RequestStatus, page, limit int) ([]model.Request, int64, error) {
	var requests []model.Request
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Request{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetchQuery := db.Model(&model.Request{})
	if status != "" {
		fetchQuery = fetchQuery.Where("status = ?", status)
	}
	offset := (page - 1) * limit
	if err := fetchQuery.Order("id DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// All returns every row in id order, for full exports.
func (r *requestRepository) All(ctx context.Context) ([]model.Request, error) {
	var requests []model.Request
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
