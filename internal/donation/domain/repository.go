package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *Record) error
	FindByID(ctx context.Context, db *gorm.DB, donationID string) (*Record, error)
	List(ctx context.Context, db *gorm.DB) ([]Record, error)
}
