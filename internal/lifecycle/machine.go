// Package lifecycle holds the procurement request state machine: the closed
// set of events, the transition table, and the error kinds every core
// operation reports.
package lifecycle

import "buyit/internal/model"

// Event is a lifecycle trigger applied to a request.
type Event string

const (
	EventSubmit   Event = "submit"
	EventReview   Event = "review"
	EventApprove  Event = "approve"
	EventReject   Event = "reject"
	EventCreatePO Event = "create_po"
	EventMarkSent Event = "mark_sent"
	EventClose    Event = "close"
)

// Events lists every event in table order.
var Events = []Event{EventSubmit, EventReview, EventApprove, EventReject, EventCreatePO, EventMarkSent, EventClose}

// noRecord is the pseudo-status of a request that does not exist yet.
const noRecord model.RequestStatus = ""

// Transition is one row of the lifecycle table.
type Transition struct {
	Event Event
	From  []model.RequestStatus
	To    model.RequestStatus
	// PO is the purchase order sub-status written in the same unit, if any,
	// and POFrom the sub-status the order must currently hold.
	PO     model.POStatus
	POFrom model.POStatus
}

var transitions = map[Event]Transition{
	EventSubmit: {
		Event: EventSubmit,
		From:  []model.RequestStatus{noRecord},
		To:    model.StatusSubmitted,
	},
	EventReview: {
		Event: EventReview,
		From:  []model.RequestStatus{model.StatusSubmitted},
		To:    model.StatusPendingApproval,
	},
	EventApprove: {
		Event: EventApprove,
		From:  []model.RequestStatus{model.StatusSubmitted, model.StatusPendingApproval},
		To:    model.StatusApproved,
	},
	EventReject: {
		Event: EventReject,
		From:  []model.RequestStatus{model.StatusSubmitted, model.StatusPendingApproval},
		To:    model.StatusRejected,
	},
	EventCreatePO: {
		Event: EventCreatePO,
		From:  []model.RequestStatus{model.StatusApproved},
		To:    model.StatusPOCreated,
		PO:    model.POStatusCreated,
	},
	EventMarkSent: {
		Event:  EventMarkSent,
		From:   []model.RequestStatus{model.StatusPOCreated},
		To:     model.StatusPOSent,
		PO:     model.POStatusSent,
		POFrom: model.POStatusCreated,
	},
	EventClose: {
		Event:  EventClose,
		From:   []model.RequestStatus{model.StatusPOSent},
		To:     model.StatusClosed,
		PO:     model.POStatusClosed,
		POFrom: model.POStatusSent,
	},
}

// rank orders statuses along the lifecycle. Approved and Rejected share a
// rank because they are alternative outcomes of the same decision.
var rank = map[model.RequestStatus]int{
	noRecord:                    0,
	model.StatusSubmitted:       1,
	model.StatusPendingApproval: 2,
	model.StatusApproved:        3,
	model.StatusRejected:        3,
	model.StatusPOCreated:       4,
	model.StatusPOSent:          5,
	model.StatusClosed:          6,
}

// Lookup returns the table row for an event.
func Lookup(event Event) (Transition, bool) {
	t, ok := transitions[event]
	return t, ok
}

// Allows reports whether the transition accepts a request in status from.
func (t Transition) Allows(from model.RequestStatus) bool {
	for _, s := range t.From {
		if s == from {
			return true
		}
	}
	return false
}

// Next validates event against the request's current status and returns
// the transition to apply. Terminal statuses accept nothing.
func Next(requestID uint, from model.RequestStatus, event Event) (Transition, error) {
	t, ok := transitions[event]
	if !ok || IsTerminal(from) || !t.Allows(from) {
		return Transition{}, &TransitionError{RequestID: requestID, Event: event, From: from}
	}
	return t, nil
}

// IsTerminal reports whether no event can leave status s.
func IsTerminal(s model.RequestStatus) bool {
	return s == model.StatusRejected || s == model.StatusClosed
}

// Rank returns the lifecycle position of s; higher is later.
func Rank(s model.RequestStatus) int {
	return rank[s]
}

// DecisionEvent maps an approver decision onto its lifecycle event.
func DecisionEvent(d model.Decision) (Event, bool) {
	switch d {
	case model.DecisionApproved:
		return EventApprove, true
	case model.DecisionRejected:
		return EventReject, true
	default:
		return "", false
	}
}
