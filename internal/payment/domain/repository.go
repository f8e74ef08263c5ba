package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *Record) error
	FindByID(ctx context.Context, db *gorm.DB, paymentID string) (*Record, error)
	FindByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (*Record, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, record *Record) error
	List(ctx context.Context, db *gorm.DB) ([]Record, error)
}
