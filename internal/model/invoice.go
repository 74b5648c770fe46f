package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchStatus is the verdict assigned to an invoice when it is recorded.
type MatchStatus string

const (
	MatchMatched   MatchStatus = "Matched"
	MatchException MatchStatus = "Exception"
)

func (s MatchStatus) Valid() bool {
	return s == MatchMatched || s == MatchException
}

// Invoice is a vendor billing document against a PO number.
// Status and ExceptionReason are fixed at creation and never updated;
// corrections are recorded as new invoices.
type Invoice struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PONumber        string          `gorm:"column:po_number;type:varchar(30);not null;index" json:"po_number"`
	VendorName      string          `gorm:"type:varchar(255);not null" json:"vendor_name"`
	InvoiceNumber   string          `gorm:"type:varchar(50);not null" json:"invoice_number"`
	InvoiceAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"invoice_amount"`
	InvoiceDate     time.Time       `gorm:"type:date;not null" json:"invoice_date"`
	Status          MatchStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	ExceptionReason *string         `gorm:"type:text" json:"exception_reason"`
	CreatedAt       time.Time       `json:"created_at"`
}
