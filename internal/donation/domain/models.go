package domain

import "time"

type Type string

const (
	TypeMonetary Type = "monetary"
	TypeItem     Type = "item"
)

type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
)

// Record is an append-only donation entry. Exactly one of the monetary/item
// field clusters is populated, matching Type.
type Record struct {
	DonationID      string     `json:"donation_id" gorm:"column:donation_id;primaryKey"`
	DonorName       *string    `json:"donor_name,omitempty" gorm:"type:text"`
	Type            Type       `json:"type" gorm:"type:text;not null"`
	Amount          *int64     `json:"amount,omitempty"`
	ItemDescription *string    `json:"item_description,omitempty" gorm:"type:text"`
	EstimatedValue  *int64     `json:"estimated_value,omitempty"`
	Condition       *Condition `json:"condition,omitempty" gorm:"type:text"`
	DonationDate    time.Time  `json:"donation_date" gorm:"not null"`
	RecordedAt      time.Time  `json:"recorded_at" gorm:"not null"`
}

func (Record) TableName() string { return "donations" }
