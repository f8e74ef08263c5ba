package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindToolByID(ctx context.Context, db *gorm.DB, id string) (*Tool, error)
	FindComponentByID(ctx context.Context, db *gorm.DB, id string) (*Component, error)
	ListTools(ctx context.Context, db *gorm.DB) ([]Tool, error)
	ListComponents(ctx context.Context, db *gorm.DB) ([]Component, error)
}
