package repository

import (
	"context"

	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() catalogdomain.Repository {
	return &repo{}
}

func (r *repo) FindToolByID(ctx context.Context, db *gorm.DB, id string) (*catalogdomain.Tool, error) {
	var t catalogdomain.Tool
	err := db.WithContext(ctx).Raw(
		`SELECT tool_id, name, description, category, status, location, unit_price, created_at, updated_at
		 FROM tools WHERE tool_id = ?`,
		id,
	).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, nil
	}
	return &t, nil
}

func (r *repo) FindComponentByID(ctx context.Context, db *gorm.DB, id string) (*catalogdomain.Component, error) {
	var c catalogdomain.Component
	err := db.WithContext(ctx).Raw(
		`SELECT component_id, name, description, category, quantity, unit, low_stock_threshold,
		 storage_location, supplier, unit_price, created_at, updated_at
		 FROM components WHERE component_id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) ListTools(ctx context.Context, db *gorm.DB) ([]catalogdomain.Tool, error) {
	var items []catalogdomain.Tool
	err := db.WithContext(ctx).Raw(
		`SELECT tool_id, name, description, category, status, location, unit_price, created_at, updated_at
		 FROM tools ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListComponents(ctx context.Context, db *gorm.DB) ([]catalogdomain.Component, error) {
	var items []catalogdomain.Component
	err := db.WithContext(ctx).Raw(
		`SELECT component_id, name, description, category, quantity, unit, low_stock_threshold,
		 storage_location, supplier, unit_price, created_at, updated_at
		 FROM components ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
