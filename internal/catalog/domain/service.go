package domain

import (
	"context"
	"errors"
)

// Service exposes read-only catalog lookups. Inventory mutation belongs to the
// (out of scope) inventory management surface; this core only reads.
type Service interface {
	GetItem(ctx context.Context, itemID string) (*Item, error)
	ListTools(ctx context.Context) ([]Tool, error)
	ListComponents(ctx context.Context) ([]Component, error)
}

var (
	ErrInvalidItemID = errors.New("invalid_item_id")
	ErrNotFound      = errors.New("not_found")
)
