package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"buyit/internal/lifecycle"
	"buyit/internal/model"
	"buyit/internal/repository"
	"buyit/pkg/pagination"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type SubmitRequestDTO struct {
	RequesterName string          `json:"requester_name"`
	Department    string          `json:"department"`
	ItemDesc      string          `json:"item_desc"`
	Quantity      int             `json:"quantity"`
	EstCost       decimal.Decimal `json:"est_cost"`
	Justification string          `json:"justification"`
	VendorName    string          `json:"vendor_name"`
}

type DecisionDTO struct {
	ApproverName string         `json:"approver_name"`
	Decision     model.Decision `json:"decision"`
	Comments     string         `json:"comments"`
}

type RequestFilter struct {
	Status model.RequestStatus
	Page   int
	Limit  int
}

// RequestDetail is a request with its approval history and purchase order.
type RequestDetail struct {
	Request       model.Request        `json:"request"`
	Approvals     []model.Approval     `json:"approvals"`
	PurchaseOrder *model.PurchaseOrder `json:"purchase_order"`
}

// --- Interface ---

type RequestService interface {
	SubmitRequest(ctx context.Context, req SubmitRequestDTO) (model.Request, error)
	Review(ctx context.Context, id uint, actor string) (model.Request, error)
	Decide(ctx context.Context, id uint, req DecisionDTO) (model.Approval, error)
	GetRequest(ctx context.Context, id uint) (RequestDetail, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]model.Request, int64, error)
}

type requestService struct {
	requestRepo  repository.RequestRepository
	approvalRepo repository.ApprovalRepository
	poRepo       repository.PurchaseOrderRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	notifier     Notifier
	log          *slog.Logger
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	approvalRepo repository.ApprovalRepository,
	poRepo repository.PurchaseOrderRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	notifier Notifier,
	log *slog.Logger,
) RequestService {
	return &requestService{
		requestRepo:  requestRepo,
		approvalRepo: approvalRepo,
		poRepo:       poRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		notifier:     notifier,
		log:          log,
	}
}

// --- Implementation ---

func (s *requestService) SubmitRequest(ctx context.Context, req SubmitRequestDTO) (model.Request, error) {
	record, err := newRequest(req)
	if err != nil {
		observe(s.log, lifecycle.EventSubmit, 0, err)
		return model.Request{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.requestRepo.Create(txCtx, &record); createErr != nil {
			return fmt.Errorf("failed to create request: %w", createErr)
		}
		return writeAudit(txCtx, s.auditRepo, record.RequesterName, model.ActionSubmitRequest, model.EntityTypeRequest, idString(record.ID), map[string]any{
			"department": record.Department,
			"item_desc":  record.ItemDesc,
			"quantity":   record.Quantity,
			"est_cost":   record.EstCost.StringFixed(2),
		})
	})
	observe(s.log, lifecycle.EventSubmit, record.ID, err, "to", record.Status)
	if err != nil {
		return model.Request{}, err
	}

	s.notifier.Publish(EventRequestSubmitted, record)
	return record, nil
}

// newRequest validates a submission and builds the row in its initial status.
func newRequest(req SubmitRequestDTO) (model.Request, error) {
	requester, err := requireText("requester_name", req.RequesterName)
	if err != nil {
		return model.Request{}, err
	}
	department, err := requireText("department", req.Department)
	if err != nil {
		return model.Request{}, err
	}
	itemDesc, err := requireText("item_desc", req.ItemDesc)
	if err != nil {
		return model.Request{}, err
	}
	if req.Quantity <= 0 {
		return model.Request{}, lifecycle.InvalidInput("quantity must be positive, got %d", req.Quantity)
	}
	if req.EstCost.IsNegative() {
		return model.Request{}, lifecycle.InvalidInput("est_cost must not be negative, got %s", req.EstCost)
	}

	tr, err := lifecycle.Next(0, "", lifecycle.EventSubmit)
	if err != nil {
		return model.Request{}, err
	}

	return model.Request{
		RequesterName: requester,
		Department:    department,
		ItemDesc:      itemDesc,
		Quantity:      req.Quantity,
		EstCost:       req.EstCost,
		Justification: req.Justification,
		VendorName:    optionalText(req.VendorName),
		Status:        tr.To,
	}, nil
}

func (s *requestService) Review(ctx context.Context, id uint, actor string) (model.Request, error) {
	var req *model.Request
	var tr lifecycle.Transition
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		req, findErr = s.requestRepo.FindByIDForUpdate(txCtx, id)
		if findErr != nil {
			return findErr
		}
		var advErr error
		if tr, advErr = advanceRequest(txCtx, s.requestRepo, req, lifecycle.EventReview); advErr != nil {
			return advErr
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionReviewRequest, model.EntityTypeRequest, idString(id), map[string]any{
			"from": req.Status,
			"to":   tr.To,
		})
	})
	observe(s.log, lifecycle.EventReview, id, err, "to", tr.To)
	if err != nil {
		return model.Request{}, err
	}

	from := req.Status
	req.Status = tr.To
	s.notifier.Publish(EventRequestTransition, TransitionEvent{RequestID: id, Event: lifecycle.EventReview, From: from, To: tr.To})
	return *req, nil
}

// Decide records an approver decision and moves the request to Approved or
// Rejected. The approval row and the status change commit together.
func (s *requestService) Decide(ctx context.Context, id uint, req DecisionDTO) (model.Approval, error) {
	event, approval, err := newApproval(id, req)
	if err != nil {
		observe(s.log, decisionEventOrApprove(req.Decision), id, err)
		return model.Approval{}, err
	}

	var from model.RequestStatus
	var tr lifecycle.Transition
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		record, findErr := s.requestRepo.FindByIDForUpdate(txCtx, id)
		if findErr != nil {
			return findErr
		}
		from = record.Status

		var advErr error
		if tr, advErr = advanceRequest(txCtx, s.requestRepo, record, event); advErr != nil {
			return advErr
		}
		if createErr := s.approvalRepo.Create(txCtx, &approval); createErr != nil {
			return fmt.Errorf("failed to create approval: %w", createErr)
		}

		action := model.ActionApproveRequest
		if approval.Decision == model.DecisionRejected {
			action = model.ActionRejectRequest
		}
		details := map[string]any{"approval_id": approval.ID, "from": from, "to": tr.To}
		if approval.Comments != nil {
			details["comments"] = *approval.Comments
		}
		return writeAudit(txCtx, s.auditRepo, approval.ApproverName, action, model.EntityTypeRequest, idString(id), details)
	})
	observe(s.log, event, id, err, "from", from, "to", tr.To)
	if err != nil {
		return model.Approval{}, err
	}

	s.notifier.Publish(EventRequestTransition, TransitionEvent{RequestID: id, Event: event, From: from, To: tr.To})
	return approval, nil
}

func newApproval(requestID uint, req DecisionDTO) (lifecycle.Event, model.Approval, error) {
	approver, err := requireText("approver_name", req.ApproverName)
	if err != nil {
		return "", model.Approval{}, err
	}
	event, ok := lifecycle.DecisionEvent(req.Decision)
	if !ok {
		return "", model.Approval{}, lifecycle.InvalidInput("decision must be %q or %q, got %q", model.DecisionApproved, model.DecisionRejected, req.Decision)
	}
	comments := optionalText(req.Comments)
	if req.Decision == model.DecisionRejected && comments == nil {
		return "", model.Approval{}, fmt.Errorf("%w: request %d", lifecycle.ErrMissingJustification, requestID)
	}
	return event, model.Approval{
		RequestID:    requestID,
		ApproverName: approver,
		Decision:     req.Decision,
		Comments:     comments,
		DecidedAt:    time.Now().UTC(),
	}, nil
}

func decisionEventOrApprove(d model.Decision) lifecycle.Event {
	if ev, ok := lifecycle.DecisionEvent(d); ok {
		return ev
	}
	return lifecycle.EventApprove
}

func (s *requestService) GetRequest(ctx context.Context, id uint) (RequestDetail, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return RequestDetail{}, err
	}
	approvals, err := s.approvalRepo.ListByRequest(ctx, id)
	if err != nil {
		return RequestDetail{}, fmt.Errorf("failed to load approvals: %w", err)
	}

	detail := RequestDetail{Request: *req, Approvals: approvals}
	po, err := s.poRepo.FindByRequestID(ctx, id)
	switch {
	case err == nil:
		detail.PurchaseOrder = po
	case !errors.Is(err, lifecycle.ErrNotFound):
		return RequestDetail{}, fmt.Errorf("failed to load purchase order: %w", err)
	}
	return detail, nil
}

func (s *requestService) ListRequests(ctx context.Context, filter RequestFilter) ([]model.Request, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, lifecycle.InvalidInput("unknown status %q", filter.Status)
	}
	p := pagination.Normalize(filter.Page, filter.Limit)
	requests, total, err := s.requestRepo.List(ctx, filter.Status, p.Page, p.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, total, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
