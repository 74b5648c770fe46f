package service

import (
	"context"
	"encoding/json"

	"buyit/internal/model"
	"buyit/internal/repository"
	"buyit/pkg/pagination"
)

type AuditLogResponse struct {
	ID         string          `json:"id"`
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Details    json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt  string          `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, entityType string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns the newest audit rows first, optionally for one entity type.
func (s *auditService) GetAuditLogs(ctx context.Context, entityType string, page, limit int) ([]AuditLogResponse, int64, error) {
	p := pagination.Normalize(page, limit)
	logs, total, err := s.auditRepo.List(ctx, entityType, p.Page, p.Limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, toAuditLogResponse(l))
	}
	return res, total, nil
}

func toAuditLogResponse(l model.AuditLog) AuditLogResponse {
	details := json.RawMessage(l.Details)
	if !json.Valid(details) {
		details, _ = json.Marshal(l.Details)
	}
	return AuditLogResponse{
		ID:         l.ID.String(),
		Actor:      l.Actor,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    details,
		CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
