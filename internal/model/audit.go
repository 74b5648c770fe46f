package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionSubmitRequest     = "SUBMIT_REQUEST"
	ActionReviewRequest     = "REVIEW_REQUEST"
	ActionApproveRequest    = "APPROVE_REQUEST"
	ActionRejectRequest     = "REJECT_REQUEST"
	ActionCreatePO          = "CREATE_PURCHASE_ORDER"
	ActionSendPO            = "SEND_PURCHASE_ORDER"
	ActionClosePO           = "CLOSE_PURCHASE_ORDER"
	ActionInvoiceMatched    = "INVOICE_MATCHED"
	ActionInvoiceException  = "INVOICE_EXCEPTION"
	EntityTypeRequest       = "REQUEST"
	EntityTypePurchaseOrder = "PURCHASE_ORDER"
	EntityTypeInvoice       = "INVOICE"
)

// AuditLog tracks who did what to which record, written in the same
// transaction as the change it describes.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Actor      string    `gorm:"type:varchar(255)" json:"actor"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityType string    `gorm:"type:varchar(30);not null" json:"entity_type"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
