package repository

import (
	"context"

	paymentdomain "github.com/innovationlabs/trackify/internal/payment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() paymentdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, p *paymentdomain.Record) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (
			payment_id, payer_id, service_kind, description, amount,
			payment_method, status, service_date, service_details,
			idempotency_key, recorded_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PaymentID,
		p.PayerID,
		p.ServiceKind,
		p.Description,
		p.Amount,
		p.PaymentMethod,
		p.Status,
		p.ServiceDate,
		p.ServiceDetails,
		p.IdempotencyKey,
		p.RecordedAt,
		p.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, paymentID string) (*paymentdomain.Record, error) {
	var p paymentdomain.Record
	err := db.WithContext(ctx).Raw(
		`SELECT payment_id, payer_id, service_kind, description, amount,
		 payment_method, status, service_date, service_details,
		 idempotency_key, recorded_at, updated_at
		 FROM payments WHERE payment_id = ?`,
		paymentID,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.PaymentID == "" {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (*paymentdomain.Record, error) {
	var p paymentdomain.Record
	err := db.WithContext(ctx).Raw(
		`SELECT payment_id, payer_id, service_kind, description, amount,
		 payment_method, status, service_date, service_details,
		 idempotency_key, recorded_at, updated_at
		 FROM payments WHERE idempotency_key = ?`,
		key,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.PaymentID == "" {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, p *paymentdomain.Record) error {
	return db.WithContext(ctx).Exec(
		`UPDATE payments SET status = ?, updated_at = ? WHERE payment_id = ?`,
		p.Status,
		p.UpdatedAt,
		p.PaymentID,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]paymentdomain.Record, error) {
	var items []paymentdomain.Record
	err := db.WithContext(ctx).Raw(
		`SELECT payment_id, payer_id, service_kind, description, amount,
		 payment_method, status, service_date, service_details,
		 idempotency_key, recorded_at, updated_at
		 FROM payments ORDER BY recorded_at DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
