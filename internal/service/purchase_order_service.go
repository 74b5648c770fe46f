package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"buyit/internal/lifecycle"
	"buyit/internal/model"
	"buyit/internal/repository"
	"buyit/pkg/pagination"

	"github.com/shopspring/decimal"
)

// PONumberFormat derives a PO number from the request id when the caller
// supplies none. Request ids are unique, so derived numbers are too.
const PONumberFormat = "PO-%06d"

type CreatePODTO struct {
	CreatedBy   string          `json:"created_by"`
	VendorName  string          `json:"vendor_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PONumber    string          `json:"po_number"`
}

type POFilter struct {
	Status model.POStatus
	Page   int
	Limit  int
}

type PurchaseOrderService interface {
	CreatePO(ctx context.Context, requestID uint, req CreatePODTO) (model.PurchaseOrder, error)
	MarkSent(ctx context.Context, requestID uint, actor string) (model.PurchaseOrder, error)
	Close(ctx context.Context, requestID uint, actor string) (model.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, filter POFilter) ([]model.PurchaseOrder, int64, error)
}

type purchaseOrderService struct {
	requestRepo repository.RequestRepository
	poRepo      repository.PurchaseOrderRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	notifier    Notifier
	log         *slog.Logger
}

func NewPurchaseOrderService(
	requestRepo repository.RequestRepository,
	poRepo repository.PurchaseOrderRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	notifier Notifier,
	log *slog.Logger,
) PurchaseOrderService {
	return &purchaseOrderService{
		requestRepo: requestRepo,
		poRepo:      poRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		notifier:    notifier,
		log:         log,
	}
}

// CreatePO issues the single purchase order of an approved request. The
// request row is locked for the whole unit. Terminal requests are refused
// first; otherwise the existing-PO check runs before the status check so a
// repeated call reports DuplicatePO. A blank vendor falls back to the
// request's preferred vendor.
func (s *purchaseOrderService) CreatePO(ctx context.Context, requestID uint, req CreatePODTO) (model.PurchaseOrder, error) {
	creator, err := requireText("created_by", req.CreatedBy)
	if err != nil {
		observe(s.log, lifecycle.EventCreatePO, requestID, err)
		return model.PurchaseOrder{}, err
	}
	if req.TotalAmount.IsNegative() {
		err = lifecycle.InvalidInput("total_amount must not be negative, got %s", req.TotalAmount)
		observe(s.log, lifecycle.EventCreatePO, requestID, err)
		return model.PurchaseOrder{}, err
	}

	var po model.PurchaseOrder
	var from model.RequestStatus
	var tr lifecycle.Transition
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		record, findErr := s.requestRepo.FindByIDForUpdate(txCtx, requestID)
		if findErr != nil {
			return findErr
		}
		from = record.Status
		if lifecycle.IsTerminal(record.Status) {
			return &lifecycle.TransitionError{RequestID: requestID, Event: lifecycle.EventCreatePO, From: record.Status}
		}

		exists, existsErr := s.poRepo.ExistsForRequest(txCtx, requestID)
		if existsErr != nil {
			return fmt.Errorf("failed to check existing purchase order: %w", existsErr)
		}
		if exists {
			return fmt.Errorf("%w: request %d", lifecycle.ErrDuplicatePO, requestID)
		}

		var nextErr error
		if tr, nextErr = lifecycle.Next(requestID, record.Status, lifecycle.EventCreatePO); nextErr != nil {
			return nextErr
		}

		vendor := strings.TrimSpace(req.VendorName)
		if vendor == "" && record.VendorName != nil {
			vendor = *record.VendorName
		}
		if vendor == "" {
			return lifecycle.InvalidInput("vendor_name is required when the request has no preferred vendor")
		}

		number, numErr := poNumberFor(requestID, req.PONumber)
		if numErr != nil {
			return numErr
		}
		taken, takenErr := s.poRepo.ExistsPONumber(txCtx, number)
		if takenErr != nil {
			return fmt.Errorf("failed to check po number: %w", takenErr)
		}
		if taken {
			return fmt.Errorf("%w: %s", lifecycle.ErrDuplicatePONumber, number)
		}

		po = model.PurchaseOrder{
			RequestID:   requestID,
			PONumber:    number,
			CreatedBy:   creator,
			VendorName:  vendor,
			TotalAmount: req.TotalAmount,
			Status:      tr.PO,
		}
		if createErr := s.poRepo.Create(txCtx, &po); createErr != nil {
			return createErr
		}
		if _, advErr := advanceRequest(txCtx, s.requestRepo, record, lifecycle.EventCreatePO); advErr != nil {
			return advErr
		}
		return writeAudit(txCtx, s.auditRepo, creator, model.ActionCreatePO, model.EntityTypePurchaseOrder, po.PONumber, map[string]any{
			"request_id":   requestID,
			"vendor_name":  po.VendorName,
			"total_amount": po.TotalAmount.StringFixed(2),
		})
	})
	observe(s.log, lifecycle.EventCreatePO, requestID, err, "po_number", po.PONumber)
	if err != nil {
		return model.PurchaseOrder{}, err
	}

	s.notifier.Publish(EventRequestTransition, TransitionEvent{RequestID: requestID, Event: lifecycle.EventCreatePO, From: from, To: tr.To, PONumber: po.PONumber})
	s.notifier.Publish(EventPurchaseOrderSaved, po)
	return po, nil
}

// poNumberFor returns the caller's PO number or the derived default. A
// caller-supplied number in the derived PO-<digits> form must be the one
// derived for this request, so it cannot take another request's default.
func poNumberFor(requestID uint, supplied string) (string, error) {
	derived := fmt.Sprintf(PONumberFormat, requestID)
	number := strings.TrimSpace(supplied)
	if number == "" {
		return derived, nil
	}
	if digits, ok := strings.CutPrefix(number, "PO-"); ok && digits != "" && strings.Trim(digits, "0123456789") == "" && number != derived {
		return "", lifecycle.InvalidInput("po_number %s is reserved for another request; request %d derives %s", number, requestID, derived)
	}
	return number, nil
}

func (s *purchaseOrderService) MarkSent(ctx context.Context, requestID uint, actor string) (model.PurchaseOrder, error) {
	return s.advancePO(ctx, requestID, actor, lifecycle.EventMarkSent, model.ActionSendPO)
}

func (s *purchaseOrderService) Close(ctx context.Context, requestID uint, actor string) (model.PurchaseOrder, error) {
	return s.advancePO(ctx, requestID, actor, lifecycle.EventClose, model.ActionClosePO)
}

// advancePO moves the request and its purchase order together; both
// compare-and-set updates must land or the unit rolls back.
func (s *purchaseOrderService) advancePO(ctx context.Context, requestID uint, actor string, event lifecycle.Event, action string) (model.PurchaseOrder, error) {
	var po *model.PurchaseOrder
	var from model.RequestStatus
	var tr lifecycle.Transition
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		record, findErr := s.requestRepo.FindByIDForUpdate(txCtx, requestID)
		if findErr != nil {
			return findErr
		}
		from = record.Status

		var nextErr error
		if tr, nextErr = lifecycle.Next(requestID, record.Status, event); nextErr != nil {
			return nextErr
		}
		if po, findErr = s.poRepo.FindByRequestID(txCtx, requestID); findErr != nil {
			return findErr
		}

		ok, updErr := s.poRepo.UpdateStatus(txCtx, po.ID, tr.POFrom, tr.PO)
		if updErr != nil {
			return updErr
		}
		if !ok {
			return &lifecycle.TransitionError{RequestID: requestID, Event: event, From: record.Status}
		}
		po.Status = tr.PO

		if _, advErr := advanceRequest(txCtx, s.requestRepo, record, event); advErr != nil {
			return advErr
		}
		return writeAudit(txCtx, s.auditRepo, actor, action, model.EntityTypePurchaseOrder, po.PONumber, map[string]any{
			"request_id": requestID,
			"from":       tr.POFrom,
			"to":         tr.PO,
		})
	})
	observe(s.log, event, requestID, err, "to", tr.To)
	if err != nil {
		return model.PurchaseOrder{}, err
	}

	s.notifier.Publish(EventRequestTransition, TransitionEvent{RequestID: requestID, Event: event, From: from, To: tr.To, PONumber: po.PONumber})
	s.notifier.Publish(EventPurchaseOrderSaved, po)
	return *po, nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, filter POFilter) ([]model.PurchaseOrder, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, lifecycle.InvalidInput("unknown purchase order status %q", filter.Status)
	}
	p := pagination.Normalize(filter.Page, filter.Limit)
	orders, total, err := s.poRepo.List(ctx, filter.Status, p.Page, p.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, total, nil
}
