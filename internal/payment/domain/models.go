package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Method string

const (
	MethodCash         Method = "cash"
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodPaypal       Method = "paypal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Record is an append-only ledger entry for a priced service. Only Status may
// change after creation (pending -> completed|failed).
type Record struct {
	PaymentID      string         `json:"payment_id" gorm:"column:payment_id;primaryKey"`
	PayerID        string         `json:"payer_id" gorm:"type:text;not null;index"`
	ServiceKind    string         `json:"service_kind" gorm:"type:text;not null"`
	Description    string         `json:"description" gorm:"type:text;not null"`
	Amount         int64          `json:"amount" gorm:"not null"`
	PaymentMethod  Method         `json:"payment_method" gorm:"type:text;not null"`
	Status         Status         `json:"status" gorm:"type:text;not null"`
	ServiceDate    time.Time      `json:"service_date" gorm:"not null"`
	ServiceDetails datatypes.JSON `json:"service_details" gorm:"type:jsonb"`
	IdempotencyKey *string        `json:"-" gorm:"type:text;uniqueIndex"`
	RecordedAt     time.Time      `json:"recorded_at" gorm:"not null"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"not null"`
}

func (Record) TableName() string { return "payments" }
