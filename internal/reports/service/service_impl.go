package service

import (
	"context"

	reportsdomain "github.com/innovationlabs/trackify/internal/reports/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) reportsdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("reports.service"),
	}
}

func (s *Service) Summary(ctx context.Context) (*reportsdomain.Report, error) {
	report := &reportsdomain.Report{}

	// Scan into a flat struct; PaymentsSummary's slice fields would be
	// misread as gorm relations.
	var totals struct {
		Count int64
		Total int64
	}
	err := s.db.WithContext(ctx).Raw(
		`SELECT COUNT(1) AS count, COALESCE(SUM(amount), 0) AS total
		 FROM payments WHERE status = 'completed'`,
	).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	report.Payments.Count = totals.Count
	report.Payments.Total = totals.Total

	err = s.db.WithContext(ctx).Raw(
		`SELECT service_kind, COUNT(1) AS count, COALESCE(SUM(amount), 0) AS total
		 FROM payments WHERE status = 'completed'
		 GROUP BY service_kind ORDER BY service_kind ASC`,
	).Scan(&report.Payments.ByService).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Raw(
		`SELECT payment_method, COUNT(1) AS count, COALESCE(SUM(amount), 0) AS total
		 FROM payments WHERE status = 'completed'
		 GROUP BY payment_method ORDER BY payment_method ASC`,
	).Scan(&report.Payments.ByMethod).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Raw(
		`SELECT COUNT(1) AS count,
		 COALESCE(SUM(CASE WHEN type = 'monetary' THEN amount ELSE 0 END), 0) AS monetary_total,
		 COALESCE(SUM(CASE WHEN type = 'item' THEN 1 ELSE 0 END), 0) AS item_count
		 FROM donations`,
	).Scan(&report.Donations).Error
	if err != nil {
		return nil, err
	}

	return report, nil
}
