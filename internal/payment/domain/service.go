package domain

import (
	"context"
	"errors"
	"time"

	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
)

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*Record, error)
	UpdateStatus(ctx context.Context, paymentID string, status Status) (*Record, error)
	Get(ctx context.Context, paymentID string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
}

// RecordRequest carries a finalized breakdown plus payment metadata. The
// breakdown is produced by the pricing service at submission time; client
// totals are never trusted.
type RecordRequest struct {
	PayerID        string
	PaymentMethod  Method
	Breakdown      pricingdomain.Breakdown
	ServiceDate    time.Time
	IdempotencyKey string
}

var (
	ErrInvalidPayer            = errors.New("invalid_payer")
	ErrInvalidPaymentMethod    = errors.New("invalid_payment_method")
	ErrInvalidAmount           = errors.New("invalid_amount")
	ErrInvalidStatus           = errors.New("invalid_status")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrDuplicateID             = errors.New("duplicate_id")
	ErrNotFound                = errors.New("not_found")
)

// ParseMethod validates a payment method discriminant.
func ParseMethod(value string) (Method, error) {
	switch Method(value) {
	case MethodCash, MethodCard, MethodBankTransfer, MethodPaypal:
		return Method(value), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// ParseStatus validates a status discriminant.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusCompleted, StatusFailed:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}
