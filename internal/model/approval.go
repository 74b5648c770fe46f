package model

import "time"

// Decision is the outcome an approver records against a request.
type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

// Decisions lists every decision outcome.
var Decisions = []Decision{DecisionApproved, DecisionRejected}

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Approval is an append-only decision row. Rejections always carry comments.
type Approval struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RequestID    uint      `gorm:"not null;index" json:"request_id"`
	Request      *Request  `gorm:"foreignKey:RequestID" json:"-"`
	ApproverName string    `gorm:"type:varchar(255);not null" json:"approver_name"`
	Decision     Decision  `gorm:"type:varchar(20);not null;index" json:"decision"`
	Comments     *string   `gorm:"type:text" json:"comments"`
	DecidedAt    time.Time `gorm:"not null" json:"decided_at"`
}
