package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// POStatus is the purchase order sub-status, moved in lockstep with its request.
type POStatus string

const (
	POStatusCreated POStatus = "Created"
	POStatusSent    POStatus = "Sent"
	POStatusClosed  POStatus = "Closed"
)

func (s POStatus) Valid() bool {
	switch s {
	case POStatusCreated, POStatusSent, POStatusClosed:
		return true
	}
	return false
}

// PurchaseOrder is the commitment to buy. RequestID and PONumber are
// independently unique: one PO per request, and globally unique numbers.
type PurchaseOrder struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	RequestID   uint            `gorm:"not null;uniqueIndex" json:"request_id"`
	Request     *Request        `gorm:"foreignKey:RequestID" json:"-"`
	PONumber    string          `gorm:"column:po_number;type:varchar(30);not null;uniqueIndex" json:"po_number"`
	CreatedBy   string          `gorm:"type:varchar(255);not null" json:"created_by"`
	VendorName  string          `gorm:"type:varchar(255);not null;index" json:"vendor_name"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"`
	Status      POStatus        `gorm:"type:varchar(20);not null;default:'Created'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
