package repository

import (
	"context"

	donationdomain "github.com/innovationlabs/trackify/internal/donation/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() donationdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, d *donationdomain.Record) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO donations (
			donation_id, donor_name, type, amount, item_description,
			estimated_value, condition, donation_date, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.DonationID,
		d.DonorName,
		d.Type,
		d.Amount,
		d.ItemDescription,
		d.EstimatedValue,
		d.Condition,
		d.DonationDate,
		d.RecordedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, donationID string) (*donationdomain.Record, error) {
	var d donationdomain.Record
	err := db.WithContext(ctx).Raw(
		`SELECT donation_id, donor_name, type, amount, item_description,
		 estimated_value, condition, donation_date, recorded_at
		 FROM donations WHERE donation_id = ?`,
		donationID,
	).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.DonationID == "" {
		return nil, nil
	}
	return &d, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]donationdomain.Record, error) {
	var items []donationdomain.Record
	err := db.WithContext(ctx).Raw(
		`SELECT donation_id, donor_name, type, amount, item_description,
		 estimated_value, condition, donation_date, recorded_at
		 FROM donations ORDER BY recorded_at DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
