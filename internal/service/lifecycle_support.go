package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"buyit/internal/lifecycle"
	"buyit/internal/metrics"
	"buyit/internal/model"
	"buyit/internal/repository"
)

// Event types published to the live dashboard hub.
const (
	EventRequestSubmitted   = "request.submitted"
	EventRequestTransition  = "request.transitioned"
	EventPurchaseOrderSaved = "purchase_order.updated"
	EventInvoiceRecorded    = "invoice.recorded"
)

// Notifier receives events after their transaction has committed.
type Notifier interface {
	Publish(eventType string, data any)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, any) {}

// NopNotifier discards every event.
func NopNotifier() Notifier { return nopNotifier{} }

// TransitionEvent is the payload published for each applied transition.
type TransitionEvent struct {
	RequestID uint                `json:"request_id"`
	Event     lifecycle.Event     `json:"event"`
	From      model.RequestStatus `json:"from"`
	To        model.RequestStatus `json:"to"`
	PONumber  string              `json:"po_number,omitempty"`
}

// advanceRequest validates event against req's status and writes the new
// status with a compare-and-set, so a concurrent writer that already moved
// the request makes this call fail instead of overwriting it.
func advanceRequest(ctx context.Context, requests repository.RequestRepository, req *model.Request, event lifecycle.Event) (lifecycle.Transition, error) {
	tr, err := lifecycle.Next(req.ID, req.Status, event)
	if err != nil {
		return lifecycle.Transition{}, err
	}
	ok, err := requests.UpdateStatus(ctx, req.ID, req.Status, tr.To)
	if err != nil {
		return lifecycle.Transition{}, err
	}
	if !ok {
		return lifecycle.Transition{}, &lifecycle.TransitionError{RequestID: req.ID, Event: event, From: req.Status}
	}
	return tr, nil
}

func writeAudit(ctx context.Context, audit repository.AuditRepository, actor, action, entityType, entityID string, details map[string]any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode audit details: %w", err)
	}
	entry := model.AuditLog{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    string(payload),
	}
	if err := audit.Log(ctx, &entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// observe records the outcome of a lifecycle event in metrics and logs.
func observe(log *slog.Logger, event lifecycle.Event, requestID uint, err error, attrs ...any) {
	result := metrics.ResultOK
	switch {
	case err == nil:
		log.Info("request transitioned", append([]any{"request_id", requestID, "event", event}, attrs...)...)
	case lifecycle.Code(err) == "INTERNAL":
		result = metrics.ResultError
		log.Error("lifecycle event failed", "request_id", requestID, "event", event, "error", err)
	default:
		result = metrics.ResultRejected
		log.Warn("lifecycle event rejected", "request_id", requestID, "event", event, "code", lifecycle.Code(err), "error", err)
	}
	metrics.TransitionsTotal.WithLabelValues(string(event), result).Inc()
}

func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", lifecycle.InvalidInput("%s is required", field)
	}
	return v, nil
}

func optionalText(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}
