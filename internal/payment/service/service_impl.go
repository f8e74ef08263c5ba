package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/innovationlabs/trackify/internal/clock"
	"github.com/innovationlabs/trackify/internal/observability/metrics"
	paymentdomain "github.com/innovationlabs/trackify/internal/payment/domain"
	"github.com/innovationlabs/trackify/pkg/db"
	"github.com/innovationlabs/trackify/pkg/id"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *id.Generator
	Clock   clock.Clock
	Repo    paymentdomain.Repository
	Metrics *metrics.RecordMetrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *id.Generator
	clock   clock.Clock
	repo    paymentdomain.Repository
	metrics *metrics.RecordMetrics
}

func New(p Params) paymentdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("payment.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Record validates the request and persists one append-only payment record.
// A payment here is a ledger entry, not a processed gateway transaction, so
// the default status is completed.
func (s *Service) Record(ctx context.Context, req paymentdomain.RecordRequest) (*paymentdomain.Record, error) {
	payerID := strings.TrimSpace(req.PayerID)
	if payerID == "" {
		return nil, paymentdomain.ErrInvalidPayer
	}
	if _, err := paymentdomain.ParseMethod(string(req.PaymentMethod)); err != nil {
		return nil, err
	}
	if req.Breakdown.Total < 0 {
		return nil, paymentdomain.ErrInvalidAmount
	}

	idempotencyKey := strings.TrimSpace(req.IdempotencyKey)
	if idempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, s.db, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	details, err := json.Marshal(req.Breakdown)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	serviceDate := req.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = now
	}

	record := &paymentdomain.Record{
		PaymentID:      s.genID.Payment(),
		PayerID:        payerID,
		ServiceKind:    string(req.Breakdown.ServiceKind),
		Description:    req.Breakdown.Description,
		Amount:         req.Breakdown.Total,
		PaymentMethod:  req.PaymentMethod,
		Status:         paymentdomain.StatusCompleted,
		ServiceDate:    serviceDate,
		ServiceDetails: datatypes.JSON(details),
		RecordedAt:     now,
		UpdatedAt:      now,
	}
	if idempotencyKey != "" {
		record.IdempotencyKey = &idempotencyKey
	}

	if err := s.insertWithRetry(ctx, record, idempotencyKey); err != nil {
		return nil, err
	}

	s.metrics.PaymentRecorded(record.ServiceKind)
	s.log.Info("payment recorded",
		zap.String("payment_id", record.PaymentID),
		zap.String("service_kind", record.ServiceKind),
		zap.Int64("amount", record.Amount),
	)
	return record, nil
}

// insertWithRetry retries a duplicate payment_id once with a fresh id. A
// replayed idempotency key instead resolves to the already-stored record.
func (s *Service) insertWithRetry(ctx context.Context, record *paymentdomain.Record, idempotencyKey string) error {
	err := s.repo.Insert(ctx, s.db, record)
	if err == nil {
		return nil
	}
	if !db.IsDuplicateKeyErr(err) {
		return err
	}

	if idempotencyKey != "" {
		existing, findErr := s.repo.FindByIdempotencyKey(ctx, s.db, idempotencyKey)
		if findErr != nil {
			return findErr
		}
		if existing != nil {
			*record = *existing
			return nil
		}
	}

	record.PaymentID = s.genID.Payment()
	err = s.repo.Insert(ctx, s.db, record)
	if err == nil {
		return nil
	}
	if db.IsDuplicateKeyErr(err) {
		return paymentdomain.ErrDuplicateID
	}
	return err
}

func (s *Service) UpdateStatus(ctx context.Context, paymentID string, status paymentdomain.Status) (*paymentdomain.Record, error) {
	if _, err := paymentdomain.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	record, err := s.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if record.Status != paymentdomain.StatusPending || status == paymentdomain.StatusPending {
		return nil, paymentdomain.ErrInvalidStatusTransition
	}

	record.Status = status
	record.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) Get(ctx context.Context, paymentID string) (*paymentdomain.Record, error) {
	record, err := s.repo.FindByID(ctx, s.db, strings.TrimSpace(paymentID))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, paymentdomain.ErrNotFound
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]paymentdomain.Record, error) {
	return s.repo.List(ctx, s.db)
}
