package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Record(ctx context.Context, input RecordInput) (*Record, error)
	Get(ctx context.Context, donationID string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
}

// RecordInput carries the donor-facing fields. Anonymous donations leave
// DonorName empty. Amount and EstimatedValue are centavos.
type RecordInput struct {
	DonorName       string
	Type            Type
	Amount          *int64
	ItemDescription string
	EstimatedValue  *int64
	Condition       string
	DonationDate    time.Time
}

var (
	ErrInvalidDonationType = errors.New("invalid_donation_type")
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrAmbiguousInput      = errors.New("ambiguous_donation_input")
	ErrMissingDescription  = errors.New("missing_item_description")
	ErrInvalidValue        = errors.New("invalid_estimated_value")
	ErrInvalidCondition    = errors.New("invalid_condition")
	ErrDuplicateID         = errors.New("duplicate_id")
	ErrNotFound            = errors.New("not_found")
)

// ParseCondition validates an item condition discriminant.
func ParseCondition(value string) (Condition, error) {
	switch Condition(value) {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair:
		return Condition(value), nil
	default:
		return "", ErrInvalidCondition
	}
}
