package service

import (
	"context"
	"strings"

	"github.com/innovationlabs/trackify/internal/clock"
	donationdomain "github.com/innovationlabs/trackify/internal/donation/domain"
	"github.com/innovationlabs/trackify/internal/observability/metrics"
	"github.com/innovationlabs/trackify/pkg/db"
	"github.com/innovationlabs/trackify/pkg/id"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *id.Generator
	Clock   clock.Clock
	Repo    donationdomain.Repository
	Metrics *metrics.RecordMetrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *id.Generator
	clock   clock.Clock
	repo    donationdomain.Repository
	metrics *metrics.RecordMetrics
}

func New(p Params) donationdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("donation.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Record validates the type-conditional fields and persists one append-only
// donation record.
func (s *Service) Record(ctx context.Context, input donationdomain.RecordInput) (*donationdomain.Record, error) {
	record, err := s.buildRecord(input)
	if err != nil {
		return nil, err
	}

	if err := s.insertWithRetry(ctx, record); err != nil {
		return nil, err
	}

	s.metrics.DonationRecorded(string(record.Type))
	s.log.Info("donation recorded",
		zap.String("donation_id", record.DonationID),
		zap.String("type", string(record.Type)),
	)
	return record, nil
}

func (s *Service) buildRecord(input donationdomain.RecordInput) (*donationdomain.Record, error) {
	now := s.clock.Now()
	donationDate := input.DonationDate
	if donationDate.IsZero() {
		donationDate = now
	}

	record := &donationdomain.Record{
		DonationID:   s.genID.Donation(),
		Type:         input.Type,
		DonationDate: donationDate,
		RecordedAt:   now,
	}
	if name := strings.TrimSpace(input.DonorName); name != "" {
		record.DonorName = &name
	}

	switch input.Type {
	case donationdomain.TypeMonetary:
		if input.Amount == nil || *input.Amount <= 0 {
			return nil, donationdomain.ErrInvalidAmount
		}
		// Item fields alongside a monetary donation are ambiguous input;
		// reject instead of silently picking one cluster.
		if strings.TrimSpace(input.ItemDescription) != "" || input.EstimatedValue != nil || strings.TrimSpace(input.Condition) != "" {
			return nil, donationdomain.ErrAmbiguousInput
		}
		amount := *input.Amount
		record.Amount = &amount
	case donationdomain.TypeItem:
		description := strings.TrimSpace(input.ItemDescription)
		if description == "" {
			return nil, donationdomain.ErrMissingDescription
		}
		if input.Amount != nil {
			return nil, donationdomain.ErrAmbiguousInput
		}
		record.ItemDescription = &description
		if input.EstimatedValue != nil {
			if *input.EstimatedValue < 0 {
				return nil, donationdomain.ErrInvalidValue
			}
			value := *input.EstimatedValue
			record.EstimatedValue = &value
		}
		if condition := strings.TrimSpace(input.Condition); condition != "" {
			parsed, err := donationdomain.ParseCondition(condition)
			if err != nil {
				return nil, err
			}
			record.Condition = &parsed
		}
	default:
		return nil, donationdomain.ErrInvalidDonationType
	}

	return record, nil
}

// insertWithRetry retries a duplicate donation_id once with a fresh id.
func (s *Service) insertWithRetry(ctx context.Context, record *donationdomain.Record) error {
	err := s.repo.Insert(ctx, s.db, record)
	if err == nil {
		return nil
	}
	if !db.IsDuplicateKeyErr(err) {
		return err
	}

	record.DonationID = s.genID.Donation()
	err = s.repo.Insert(ctx, s.db, record)
	if err == nil {
		return nil
	}
	if db.IsDuplicateKeyErr(err) {
		return donationdomain.ErrDuplicateID
	}
	return err
}

func (s *Service) Get(ctx context.Context, donationID string) (*donationdomain.Record, error) {
	record, err := s.repo.FindByID(ctx, s.db, strings.TrimSpace(donationID))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, donationdomain.ErrNotFound
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]donationdomain.Record, error) {
	return s.repo.List(ctx, s.db)
}
