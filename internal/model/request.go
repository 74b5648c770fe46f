package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle position of a procurement request.
type RequestStatus string

const (
	StatusSubmitted       RequestStatus = "Submitted"
	StatusPendingApproval RequestStatus = "Pending Approval"
	StatusApproved        RequestStatus = "Approved"
	StatusRejected        RequestStatus = "Rejected"
	StatusPOCreated       RequestStatus = "PO Created"
	StatusPOSent          RequestStatus = "PO Sent"
	StatusClosed          RequestStatus = "Closed"
)

// RequestStatuses lists every status in lifecycle order.
var RequestStatuses = []RequestStatus{
	StatusSubmitted,
	StatusPendingApproval,
	StatusApproved,
	StatusRejected,
	StatusPOCreated,
	StatusPOSent,
	StatusClosed,
}

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	for _, known := range RequestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Request is a procurement ask submitted by an employee.
// Rows are never deleted; only the lifecycle engine mutates Status.
type Request struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	RequesterName string          `gorm:"type:varchar(255);not null" json:"requester_name"`
	Department    string          `gorm:"type:varchar(255);not null" json:"department"`
	ItemDesc      string          `gorm:"type:text;not null" json:"item_desc"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	EstCost       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"est_cost"`
	Justification string          `gorm:"type:text;not null" json:"justification"`
	VendorName    *string         `gorm:"type:varchar(255)" json:"vendor_name"`
	Status        RequestStatus   `gorm:"type:varchar(30);not null;default:'Submitted';index" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
